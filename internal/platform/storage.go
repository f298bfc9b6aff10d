package platform

import (
	"context"
	"net/url"

	"github.com/aoradev/aora-go/internal/domain"
)

// PreviewOptions select the transformation applied by a file preview URL.
type PreviewOptions struct {
	Width   int
	Height  int
	Gravity string
	Quality int
}

type Storage interface {
	// CreateFile uploads the asset's content under the given bucket and id.
	CreateFile(ctx context.Context, bucketID, fileID string, asset domain.FileAsset) (domain.StoredFile, error)
	DeleteFile(ctx context.Context, bucketID, fileID string) error
	// FileViewURL builds the URL that serves the stored file unmodified.
	FileViewURL(bucketID, fileID string) *url.URL
	// FilePreviewURL builds the URL of a transformed rendition of a stored
	// image. Both builders are purely local; no request is issued.
	FilePreviewURL(bucketID, fileID string, opts PreviewOptions) *url.URL
}
