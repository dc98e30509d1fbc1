package app

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("clipboard not supported on this system")

func statusText(lines []string) string {
	return strings.Join(lines, " | ")
}

// copyStatus puts the overlay status on the system clipboard.
func copyStatus(lines []string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(statusText(lines))
}
