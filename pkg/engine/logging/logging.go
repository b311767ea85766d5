// Package logging configures the process-wide golog logger.
//
// Components take their own child logger with golog.Child("[name]") after
// Setup has run, so they inherit the configured outputs and level.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kataras/golog"
)

// TimeFormat is the timestamp layout of every log line.
const TimeFormat = "2006-01-02 15:04:05"

// DefaultFile is where a copy of the log is written unless told otherwise.
const DefaultFile = "debug.log"

var levels = []string{"debug", "info", "warn", "error", "fatal", "disable"}

// Options controls Setup.
type Options struct {
	// Level is one of debug, info, warn, error, fatal or disable.
	Level string
	// File receives a copy of every line. It is truncated on start.
	// Empty means stdout only.
	File string
}

// ValidLevel reports whether name is a level golog understands.
func ValidLevel(name string) bool {
	name = strings.ToLower(name)
	for _, l := range levels {
		if l == name {
			return true
		}
	}
	return false
}

// Setup points the default logger at stdout (and File, if set) and applies
// the level. The returned closer releases the log file.
func Setup(opts Options) (io.Closer, error) {
	level := opts.Level
	if level == "" {
		level = "info"
	}
	if !ValidLevel(level) {
		return nil, fmt.Errorf("unknown log level %q", opts.Level)
	}

	golog.SetTimeFormat(TimeFormat)
	golog.SetOutput(os.Stdout)
	golog.SetLevel(strings.ToLower(level))

	if opts.File == "" {
		return nopCloser{}, nil
	}

	f, err := os.Create(opts.File)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	golog.AddOutput(f)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
