package assets

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, []byte("content"), 0o600); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		uri  string
		err  error
	}{
		{"plain path", path, nil},
		{"file url", "file://" + path, nil},
		{"missing file", filepath.Join(t.TempDir(), "nope.png"), ErrNotExist},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Open(c.uri)
			if !errors.Is(err, c.err) {
				t.Fatalf("expected error %v, got %v", c.err, err)
			}
			if err != nil {
				return
			}
			defer f.Close()

			content, err := io.ReadAll(f)
			if err != nil {
				t.Fatal(err)
			}
			if string(content) != "content" {
				t.Errorf("unexpected content %q", content)
			}
		})
	}
}
