package domain

// FileAsset describes a file picked on the device, before upload. URI is the
// local source the content is read from.
type FileAsset struct {
	Name     string
	MimeType string
	Size     int64
	URI      string
}

// IsZero reports whether no file was supplied at all.
func (a FileAsset) IsZero() bool {
	return a == FileAsset{}
}

// StoredFile is the platform's record of an uploaded binary object. Callers
// never see it directly; only the URL derived from its id is returned.
type StoredFile struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
}
