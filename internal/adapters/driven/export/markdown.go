package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteMarkdown writes a generated document to path, creating parent
// directories as needed. An empty path defaults to README.md in the
// current directory.
func WriteMarkdown(path, content string) (string, error) {
	if path == "" {
		path = "README.md"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
