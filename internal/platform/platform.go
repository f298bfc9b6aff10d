// The platform package defines the surface of the remote backend-as-a-service
// this layer talks to. The real implementation lives in platform/appwrite;
// tests substitute mocks or the in-memory fake.
package platform

import "errors"

var (
	// ErrNotFound is returned when the platform reports the requested
	// resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when a call requires a session and none
	// is active, or the credentials are wrong.
	ErrUnauthorized = errors.New("unauthorized")
)

type Platform interface {
	Accounts
	Databases
	Storage
	Avatars
}
