package domain

import (
	"net/url"
	"time"
)

// Post is a video post document. Thumbnail and Video are URLs produced by a
// successful upload; Creator is the author's account id.
type Post struct {
	ID        string
	CreatedAt time.Time
	Title     string
	Thumbnail *url.URL
	Video     *url.URL
	Prompt    string
	Creator   string
}

// VideoForm is the caller-supplied input for creating a post.
type VideoForm struct {
	Title     string
	Prompt    string
	UserID    string
	Thumbnail FileAsset
	Video     FileAsset
}
