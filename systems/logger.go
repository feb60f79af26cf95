package systems

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bloomrun",
})

// Logger returns the simulation logger.
func Logger() *log.Logger {
	return logger
}

// SetLogger replaces the simulation logger.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}
