package platform

import (
	"context"
	"time"
)

// Document is the platform's schema-flexible record envelope. Every document
// carries at least an id and a creation timestamp; the application attributes
// stay in Data under their declared names.
type Document struct {
	ID        string
	CreatedAt time.Time
	Data      map[string]any
}

// String returns the attribute named key if it is a string, or "".
func (d Document) String(key string) string {
	s, _ := d.Data[key].(string)
	return s
}

type Databases interface {
	CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]any) (Document, error)
	// ListDocuments returns the documents of a collection matching the
	// given queries, built with Equal, OrderDesc, Limit and Search.
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) ([]Document, error)
}
