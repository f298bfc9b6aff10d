package core

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
	"github.com/aoradev/aora-go/internal/service"
	"github.com/aoradev/aora-go/internal/validate"
)

// LatestPostCount caps GetLatestPosts; the home screen shows at most seven.
const LatestPostCount = 7

func (s *AppService) GetAllPosts(ctx context.Context) ([]domain.Post, error) {
	return s.listPosts(ctx, platform.OrderDesc("$createdAt"))
}

func (s *AppService) GetLatestPosts(ctx context.Context) ([]domain.Post, error) {
	return s.listPosts(ctx, platform.OrderDesc("$createdAt"), platform.Limit(LatestPostCount))
}

func (s *AppService) SearchPosts(ctx context.Context, query string) ([]domain.Post, error) {
	return s.listPosts(ctx, platform.Search("title", query))
}

func (s *AppService) GetUserPosts(ctx context.Context, accountID string) ([]domain.Post, error) {
	return s.listPosts(ctx, platform.Equal("creator", accountID), platform.OrderDesc("$createdAt"))
}

func (s *AppService) listPosts(ctx context.Context, queries ...string) (posts []domain.Post, err error) {
	docs, err := s.Platform.ListDocuments(ctx, s.Config.DatabaseID, s.Config.VideoCollectionID, queries)
	if err != nil {
		return nil, err
	}

	posts = make([]domain.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, docToPost(doc))
	}
	return posts, nil
}

func (s *AppService) CreateVideo(ctx context.Context, form domain.VideoForm) (domain.Post, error) {
	if err := validate.VideoForm(form.Title, form.Prompt, form.UserID); err != nil {
		return domain.Post{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	// Both uploads must finish before the document referencing them can be
	// created; either failure aborts the whole operation.
	var thumbnail, video upload
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		thumbnail, err = s.uploadFile(gctx, form.Thumbnail, domain.KindImage)
		return
	})
	g.Go(func() (err error) {
		video, err = s.uploadFile(gctx, form.Video, domain.KindVideo)
		return
	})
	if err := g.Wait(); err != nil {
		return domain.Post{}, err
	}

	doc, err := s.Platform.CreateDocument(ctx, s.Config.DatabaseID, s.Config.VideoCollectionID, platform.UniqueID(), map[string]any{
		"title":     form.Title,
		"thumbnail": thumbnail.url.String(),
		"video":     video.url.String(),
		"prompt":    form.Prompt,
		"creator":   form.UserID,
	})
	if err != nil {
		s.discardFiles(ctx, thumbnail.id, video.id)
		return domain.Post{}, err
	}

	return docToPost(doc), nil
}

// discardFiles deletes uploads whose post was never created, so they do not
// linger as orphans in the bucket. Best effort; the original error is what
// the caller sees.
func (s *AppService) discardFiles(ctx context.Context, ids ...string) {
	for _, id := range ids {
		if err := s.Platform.DeleteFile(ctx, s.Config.StorageID, id); err != nil {
			log.Error().Err(err).Str("file", id).Msg("failed to delete orphaned upload")
		}
	}
}

type upload struct {
	id  string
	url *url.URL
}
