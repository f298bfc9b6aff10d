package appwrite

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
)

type filePayload struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

func (c *Client) CreateFile(ctx context.Context, bucketID, fileID string, asset domain.FileAsset) (domain.StoredFile, error) {
	var out filePayload
	u := c.url("storage", "buckets", bucketID, "files")
	err := c.upload(ctx, u, map[string]string{"fileId": fileID}, asset, &out)
	if err != nil {
		return domain.StoredFile{}, err
	}
	return domain.StoredFile{
		ID:       out.ID,
		Name:     out.Name,
		MimeType: out.MimeType,
		Size:     out.Size,
	}, nil
}

func (c *Client) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	return c.call(ctx, http.MethodDelete, c.url("storage", "buckets", bucketID, "files", fileID), nil, nil)
}

func (c *Client) FileViewURL(bucketID, fileID string) *url.URL {
	u := c.url("storage", "buckets", bucketID, "files", fileID, "view")
	values := u.Query()
	values.Set("project", c.project)
	u.RawQuery = values.Encode()
	return u
}

func (c *Client) FilePreviewURL(bucketID, fileID string, opts platform.PreviewOptions) *url.URL {
	u := c.url("storage", "buckets", bucketID, "files", fileID, "preview")
	values := u.Query()
	values.Set("width", strconv.Itoa(opts.Width))
	values.Set("height", strconv.Itoa(opts.Height))
	values.Set("gravity", opts.Gravity)
	values.Set("quality", strconv.Itoa(opts.Quality))
	values.Set("project", c.project)
	u.RawQuery = values.Encode()
	return u
}
