package platform

import "net/url"

type Avatars interface {
	// InitialsURL builds the URL of an avatar image generated from the
	// initials of name. Deterministic; no file is uploaded.
	InitialsURL(name string) *url.URL
}
