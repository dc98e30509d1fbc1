package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Version is reported in the startup log line.
const Version = "0.0.1"

// NewLogger builds the application logger. An unknown level is reported as
// an error and the logger falls back to info.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "garden",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		return logger, fmt.Errorf("parse log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
