package platform

import (
	"context"

	"github.com/aoradev/aora-go/internal/domain"
)

// CurrentSession addresses the session of the calling device without knowing
// its id.
const CurrentSession = "current"

type Accounts interface {
	// CreateAccount registers a new identity on the platform. It does not
	// establish a session.
	CreateAccount(ctx context.Context, id, email, password, name string) (domain.Account, error)
	// GetAccount returns the account of the ambient session.
	GetAccount(ctx context.Context) (domain.Account, error)
	// CreateEmailSession signs in with email and password. The returned
	// session becomes the ambient one for subsequent calls on this client.
	CreateEmailSession(ctx context.Context, email, password string) (domain.Session, error)
	// DeleteSession closes the session with the given id; CurrentSession
	// closes the ambient one.
	DeleteSession(ctx context.Context, id string) error
}
