package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/aoradev/aora-go/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid")
	// ErrNotFound marks a legitimately absent resource, as opposed to a
	// failed lookup; callers tell the two apart with errors.Is.
	ErrNotFound = errors.New("not found")
	// ErrNoSession is returned by session-dependent operations when no
	// session is active on this client.
	ErrNoSession = errors.New("no active session")
)

// Service is the data-access surface consumed by the mobile application. All
// calls go out to the remote platform; nothing is cached or retried here.
type Service interface {
	// CreateUser registers an account, signs in, and creates the matching
	// user document with an initials avatar. Any failing step aborts the
	// whole operation.
	CreateUser(ctx context.Context, email, password, username string) (domain.User, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	// GetAccount returns the account of the ambient session.
	GetAccount(ctx context.Context) (domain.Account, error)
	// GetCurrentUser resolves the ambient session to its user document.
	// ErrNoSession and ErrNotFound distinguish the two absence cases from
	// platform failures.
	GetCurrentUser(ctx context.Context) (domain.User, error)
	// SignOut closes the current session.
	SignOut(ctx context.Context) error

	// GetAllPosts returns every post, newest first.
	GetAllPosts(ctx context.Context) ([]domain.Post, error)
	// GetLatestPosts returns at most the seven newest posts.
	GetLatestPosts(ctx context.Context) ([]domain.Post, error)
	// SearchPosts returns the posts whose title matches query; the match
	// semantics are the platform search index's.
	SearchPosts(ctx context.Context, query string) ([]domain.Post, error)
	// GetUserPosts returns the posts created by the given account, newest
	// first.
	GetUserPosts(ctx context.Context, accountID string) ([]domain.Post, error)
	// CreateVideo uploads the form's thumbnail and video concurrently and,
	// once both are stored, creates the post document referencing them.
	CreateVideo(ctx context.Context, form domain.VideoForm) (domain.Post, error)

	// UploadFile stores the asset and returns the URL it will be rendered
	// from, per GetFilePreview.
	UploadFile(ctx context.Context, asset domain.FileAsset, kind domain.FileKind) (*url.URL, error)
	// GetFilePreview returns the view URL of a stored video, or a sized,
	// top-cropped preview URL for an image.
	GetFilePreview(fileID string, kind domain.FileKind) (*url.URL, error)
}
