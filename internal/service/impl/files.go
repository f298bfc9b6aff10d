package core

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
	"github.com/aoradev/aora-go/internal/service"
)

// Image previews are rendered at a fixed size, cropped from the top.
const (
	previewWidth   = 2000
	previewHeight  = 2000
	previewGravity = "top"
	previewQuality = 100
)

func (s *AppService) UploadFile(ctx context.Context, asset domain.FileAsset, kind domain.FileKind) (*url.URL, error) {
	up, err := s.uploadFile(ctx, asset, kind)
	if err != nil {
		return nil, err
	}
	return up.url, nil
}

func (s *AppService) uploadFile(ctx context.Context, asset domain.FileAsset, kind domain.FileKind) (upload, error) {
	if asset.IsZero() {
		return upload{}, fmt.Errorf("%w: no file provided", service.ErrInvalidInput)
	}

	file, err := s.Platform.CreateFile(ctx, s.Config.StorageID, platform.UniqueID(), asset)
	if err != nil {
		return upload{}, err
	}

	u, err := s.GetFilePreview(file.ID, kind)
	if err != nil {
		return upload{}, err
	}
	return upload{id: file.ID, url: u}, nil
}

func (s *AppService) GetFilePreview(fileID string, kind domain.FileKind) (*url.URL, error) {
	var u *url.URL
	switch kind {
	case domain.KindVideo:
		u = s.Platform.FileViewURL(s.Config.StorageID, fileID)
	case domain.KindImage:
		u = s.Platform.FilePreviewURL(s.Config.StorageID, fileID, platform.PreviewOptions{
			Width:   previewWidth,
			Height:  previewHeight,
			Gravity: previewGravity,
			Quality: previewQuality,
		})
	default:
		return nil, fmt.Errorf("%w: file type %s", service.ErrInvalidInput, kind)
	}

	if u == nil || u.String() == "" {
		return nil, errors.New("platform resolved an empty file url")
	}
	return u, nil
}
