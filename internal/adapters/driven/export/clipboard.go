package export

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard places a generated document on the system clipboard.
func CopyToClipboard(content string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this platform")
	}

	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
