// The domain package holds the records this layer exchanges with the remote
// platform. The platform owns and persists them; here they only shape requests
// and responses.
package domain

import "fmt"

// FileKind discriminates how an uploaded file should be rendered back: videos
// get a plain view URL, images get a sized preview URL.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindImage
	KindVideo
)

func (k FileKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	}
	return "unknown"
}

// ParseFileKind maps the wire strings used by the mobile client onto the
// closed set of kinds. Anything else is a caller error.
func ParseFileKind(s string) (FileKind, error) {
	switch s {
	case "image":
		return KindImage, nil
	case "video":
		return KindVideo, nil
	}
	return KindUnknown, fmt.Errorf("invalid file type %q", s)
}
