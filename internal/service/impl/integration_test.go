package core

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aoradev/aora-go/internal/config"
	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform/appwrite"
	"github.com/aoradev/aora-go/internal/platform/appwritetest"
	"github.com/aoradev/aora-go/internal/service"
)

// newIntegration wires the facade to a real HTTP client talking to the
// in-memory platform, so every call below crosses the wire.
func newIntegration(t *testing.T) (*AppService, *appwritetest.Server) {
	t.Helper()
	fake := appwritetest.New()
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)

	endpoint, err := url.Parse(server.URL + "/v1")
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.Configuration{
		Endpoint:          endpoint,
		Platform:          "com.example.app",
		ProjectID:         "p1",
		DatabaseID:        "db",
		UserCollectionID:  "users",
		VideoCollectionID: "videos",
		StorageID:         "bucket",
	}
	return New(cfg, appwrite.New(cfg, server.Client())), fake
}

func tempAsset(t *testing.T, name, mimeType, content string) domain.FileAsset {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return domain.FileAsset{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(content)),
		URI:      path,
	}
}

func TestRegistrationEstablishesSession(t *testing.T) {
	s, _ := newIntegration(t)

	user, err := s.CreateUser(ctx, testEmail, testPassword, "sarah")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if user.AccountID == "" || user.Username != "sarah" || user.Email != testEmail {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Avatar == nil || !strings.Contains(user.Avatar.String(), "/avatars/initials") {
		t.Errorf("unexpected avatar %v", user.Avatar)
	}

	// No separate sign in; registration leaves the session in place.
	account, err := s.GetAccount(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if account.ID != user.AccountID {
		t.Errorf("account %s does not match the registered user %s", account.ID, user.AccountID)
	}

	current, err := s.GetCurrentUser(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(user, current); diff != "" {
		t.Error(diff)
	}

	if err = s.SignOut(ctx); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err = s.GetCurrentUser(ctx); !errors.Is(err, service.ErrNoSession) {
		t.Errorf("expected %s after sign out, got %v", service.ErrNoSession, err)
	}
}

func TestGetCurrentUserWithoutSession(t *testing.T) {
	s, _ := newIntegration(t)

	if _, err := s.GetCurrentUser(ctx); !errors.Is(err, service.ErrNoSession) {
		t.Errorf("expected %s, got %v", service.ErrNoSession, err)
	}
}

func TestPostListing(t *testing.T) {
	s, fake := newIntegration(t)

	for i := 1; i <= 9; i++ {
		creator := "alice"
		if i%2 == 0 {
			creator = "bob"
		}
		fake.SeedDocument("videos", map[string]any{
			"title":     fmt.Sprintf("clip %d", i),
			"thumbnail": fmt.Sprintf("https://files.example.com/t%d.png", i),
			"video":     fmt.Sprintf("https://files.example.com/v%d.mp4", i),
			"prompt":    "a prompt",
			"creator":   creator,
		})
	}

	all, err := s.GetAllPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(all) != 9 {
		t.Fatalf("expected 9 posts, got %d", len(all))
	}
	if all[0].Title != "clip 9" || all[8].Title != "clip 1" {
		t.Errorf("posts not newest first: %s ... %s", all[0].Title, all[8].Title)
	}

	latest, err := s.GetLatestPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if diff := cmp.Diff(all[:LatestPostCount], latest); diff != "" {
		t.Error(diff)
	}

	found, err := s.SearchPosts(ctx, "CLIP 3")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(found) != 1 || found[0].Title != "clip 3" {
		t.Errorf("unexpected search result: %+v", found)
	}

	bobs, err := s.GetUserPosts(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(bobs) != 4 {
		t.Fatalf("expected 4 posts for bob, got %d", len(bobs))
	}
	for _, post := range bobs {
		if post.Creator != "bob" {
			t.Errorf("post %s belongs to %s", post.ID, post.Creator)
		}
	}
	if bobs[0].Title != "clip 8" {
		t.Errorf("user posts not newest first, got %s", bobs[0].Title)
	}
}

func TestCreateVideoEndToEnd(t *testing.T) {
	s, fake := newIntegration(t)

	user, err := s.CreateUser(ctx, testEmail, testPassword, "sarah")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	form := domain.VideoForm{
		Title:     "week one",
		Prompt:    "a calm morning",
		UserID:    user.AccountID,
		Thumbnail: tempAsset(t, "thumb.png", "image/png", "png bytes"),
		Video:     tempAsset(t, "clip.mp4", "video/mp4", "mp4 bytes"),
	}

	post, err := s.CreateVideo(ctx, form)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if post.Title != "week one" || post.Creator != user.AccountID {
		t.Errorf("unexpected post: %+v", post)
	}
	if !strings.Contains(post.Thumbnail.String(), "/preview") || !strings.Contains(post.Thumbnail.String(), "width=2000") {
		t.Errorf("unexpected thumbnail url %s", post.Thumbnail)
	}
	if !strings.Contains(post.Video.String(), "/view") {
		t.Errorf("unexpected video url %s", post.Video)
	}
	if fake.FileCount() != 2 {
		t.Errorf("expected 2 stored files, got %d", fake.FileCount())
	}

	all, err := s.GetAllPosts(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(all) == 0 || all[0].ID != post.ID {
		t.Error("new post not listed first")
	}
}

func TestCreateVideoCleansUpOnDocumentFailure(t *testing.T) {
	s, fake := newIntegration(t)

	user, err := s.CreateUser(ctx, testEmail, testPassword, "sarah")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	fake.FailDocumentCreates(1)

	form := domain.VideoForm{
		Title:     "week one",
		Prompt:    "a calm morning",
		UserID:    user.AccountID,
		Thumbnail: tempAsset(t, "thumb.png", "image/png", "png bytes"),
		Video:     tempAsset(t, "clip.mp4", "video/mp4", "mp4 bytes"),
	}

	if _, err = s.CreateVideo(ctx, form); err == nil {
		t.Fatal("expected the document failure to surface")
	}
	if fake.FileCount() != 0 {
		t.Errorf("expected the uploads to be discarded, got %d files", fake.FileCount())
	}
}
