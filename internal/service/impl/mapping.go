package core

import (
	"net/url"

	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform"
)

func docToUser(doc platform.Document) domain.User {
	avatar, _ := url.Parse(doc.String("avatar"))
	return domain.User{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		AccountID: doc.String("accountId"),
		Email:     doc.String("email"),
		Username:  doc.String("username"),
		Avatar:    avatar,
	}
}

func docToPost(doc platform.Document) domain.Post {
	thumbnail, _ := url.Parse(doc.String("thumbnail"))
	video, _ := url.Parse(doc.String("video"))
	return domain.Post{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		Title:     doc.String("title"),
		Thumbnail: thumbnail,
		Video:     video,
		Prompt:    doc.String("prompt"),
		Creator:   doc.String("creator"),
	}
}
