package domain

import (
	"net/url"
	"time"
)

// Account is the platform-managed identity. It is created during registration
// and referenced by a User document through AccountID.
type Account struct {
	ID    string
	Email string
	Name  string
}

// Session represents the platform credential for one authenticated device.
// At most one session is current on a client at a time.
type Session struct {
	ID        string
	AccountID string
	ExpiresAt time.Time
}

// User is the document kept in the user collection, one per account.
type User struct {
	ID        string
	CreatedAt time.Time
	AccountID string
	Email     string
	Username  string
	Avatar    *url.URL
}
