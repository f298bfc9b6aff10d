// The assets package reads picked files from the device's filesystem before
// they are uploaded. Asset URIs are either plain paths or file:// URLs.
package assets

import (
	"errors"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotExist = errors.New("asset does not exist")
	ErrInternal = errors.New("internal storage error")
)

// Open returns the content of the asset at uri. The caller closes it.
func Open(uri string) (io.ReadCloser, error) {
	path := uri
	if strings.HasPrefix(uri, "file://") {
		u, err := url.Parse(uri)
		if err != nil {
			log.Error().Err(err).Msg("malformed asset uri " + uri)
			return nil, ErrInternal
		}
		path = u.Path
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotExist
		}
		log.Error().Err(err).Msg("failed to open asset at path " + path)
		return nil, ErrInternal
	}
	return f, nil
}
