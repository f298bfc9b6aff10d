package platform

import (
	"strings"

	"github.com/google/uuid"
)

// UniqueID mints a platform-unique id for a new document or file. The
// platform accepts up to 36 characters from [a-z0-9._-]; a dashless uuid
// fits comfortably.
func UniqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
