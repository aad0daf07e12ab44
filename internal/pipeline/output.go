package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles writes the assembled files into the package directory. Content
// is compared first so unchanged output never touches the file system; watch
// mode depends on that to avoid retriggering itself.
func WriteFiles(dir string, files []File) (written int, err error) {
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if existing, readErr := os.ReadFile(path); readErr == nil && string(existing) == string(f.Content) {
			continue
		}
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}
