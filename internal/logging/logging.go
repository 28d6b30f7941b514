package logging

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

func NewHandler(name string) slog.Handler {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          name,
		Level:           log.InfoLevel,
	})
}

// New builds the service logger. One prefix per subsystem keeps the
// api/audit/store lines tellable apart in a shared stream.
func New(name string) *slog.Logger {
	return slog.New(NewHandler(name))
}
