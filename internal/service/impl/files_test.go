package core

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
	"github.com/aoradev/aora-go/internal/service"
)

func TestGetFilePreview(t *testing.T) {
	t.Run("video uses the view url", func(t *testing.T) {
		s, p := newMockedService(t)
		view := mustParse(t, "https://cloud.example.com/v1/storage/buckets/bucket/files/f1/view")
		p.EXPECT().FileViewURL("bucket", "f1").Return(view)

		u, err := s.GetFilePreview("f1", domain.KindVideo)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if u.String() != view.String() {
			t.Errorf("expected %s, got %s", view, u)
		}
	})

	t.Run("image uses a sized preview", func(t *testing.T) {
		s, p := newMockedService(t)
		preview := mustParse(t, "https://cloud.example.com/v1/storage/buckets/bucket/files/f1/preview")
		p.EXPECT().
			FilePreviewURL("bucket", "f1", platform.PreviewOptions{Width: 2000, Height: 2000, Gravity: "top", Quality: 100}).
			Return(preview)

		u, err := s.GetFilePreview("f1", domain.KindImage)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if u.String() != preview.String() {
			t.Errorf("expected %s, got %s", preview, u)
		}
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		s, _ := newMockedService(t)
		if _, err := s.GetFilePreview("f1", domain.KindUnknown); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("expected %s, got %v", service.ErrInvalidInput, err)
		}
	})

	t.Run("empty resolved url fails", func(t *testing.T) {
		s, p := newMockedService(t)
		p.EXPECT().FileViewURL("bucket", "f1").Return(nil)

		if _, err := s.GetFilePreview("f1", domain.KindVideo); err == nil {
			t.Error("expected an error for an empty url")
		}
	})
}

func TestUploadFile(t *testing.T) {
	s, p := newMockedService(t)
	asset := domain.FileAsset{Name: "t.png", MimeType: "image/png", Size: 3, URI: "/tmp/t.png"}
	preview := mustParse(t, "https://cloud.example.com/v1/storage/buckets/bucket/files/f1/preview")

	p.EXPECT().
		CreateFile(gomock.Any(), "bucket", gomock.Any(), asset).
		Return(domain.StoredFile{ID: "f1"}, nil)
	p.EXPECT().
		FilePreviewURL("bucket", "f1", gomock.Any()).
		Return(preview)

	u, err := s.UploadFile(ctx, asset, domain.KindImage)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if u.String() != preview.String() {
		t.Errorf("expected %s, got %s", preview, u)
	}
}

func TestUploadFileWithoutAsset(t *testing.T) {
	s, _ := newMockedService(t)

	if _, err := s.UploadFile(ctx, domain.FileAsset{}, domain.KindImage); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("expected %s, got %v", service.ErrInvalidInput, err)
	}
}
