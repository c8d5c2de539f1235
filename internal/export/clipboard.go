package export

import (
	"fmt"

	"github.com/atotto/clipboard"

	"codeberg.org/snonux/derdiedas/internal/extract"
)

// CopyToClipboard puts the tab-separated form of entries on the system
// clipboard, ready for pasting into a spreadsheet or Anki import.
func CopyToClipboard(entries []extract.Entry) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard available on this system")
	}
	if err := clipboard.WriteAll(TSV(entries)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
