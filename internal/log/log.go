// Package log configures the application logger. The TUI owns the terminal,
// so log output goes to a file under the XDG state directory, or nowhere.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

const (
	appName  = "reel"
	fileName = "reel.log"
)

// Options controls logger setup.
type Options struct {
	Enabled bool
	Level   string
	JSON    bool
	Path    string // overrides the XDG location when set
}

var (
	logger = newDiscard()
	file   *os.File
)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup points the logger at its file. With logging disabled every entry is
// discarded.
func Setup(opts Options) error {
	if !opts.Enabled {
		logger.SetOutput(io.Discard)
		return nil
	}

	path := opts.Path
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join(appName, fileName))
		if err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	Close()
	file = f
	logger.SetOutput(f)

	if opts.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return nil
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return logger.WithField("component", component)
}

// Close releases the log file, if any.
func Close() {
	if file != nil {
		_ = file.Close()
		file = nil
		logger.SetOutput(io.Discard)
	}
}
