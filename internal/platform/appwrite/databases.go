package appwrite

import (
	"context"
	"net/http"
	"time"

	"github.com/aoradev/aora-go/internal/platform"
)

func (c *Client) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]any) (platform.Document, error) {
	body := map[string]any{
		"documentId": documentID,
		"data":       data,
	}

	var raw map[string]any
	u := c.url("databases", databaseID, "collections", collectionID, "documents")
	if err := c.call(ctx, http.MethodPost, u, body, &raw); err != nil {
		return platform.Document{}, err
	}
	return parseDocument(raw), nil
}

func (c *Client) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) ([]platform.Document, error) {
	u := c.url("databases", databaseID, "collections", collectionID, "documents")
	values := u.Query()
	for _, q := range queries {
		values.Add("queries[]", q)
	}
	u.RawQuery = values.Encode()

	var out struct {
		Total     int              `json:"total"`
		Documents []map[string]any `json:"documents"`
	}
	if err := c.call(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}

	docs := make([]platform.Document, 0, len(out.Documents))
	for _, raw := range out.Documents {
		docs = append(docs, parseDocument(raw))
	}
	return docs, nil
}

func parseDocument(raw map[string]any) platform.Document {
	doc := platform.Document{Data: raw}
	doc.ID, _ = raw["$id"].(string)
	if s, ok := raw["$createdAt"].(string); ok {
		doc.CreatedAt, _ = time.Parse(time.RFC3339, s)
	}
	return doc
}
