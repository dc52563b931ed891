// Package logging builds the charmbracelet loggers used across shaderrefl.
// Settings come from SHADERREFL_* environment variables; library packages
// take a *log.Logger and fall back to Or(nil), which discards everything.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Environment variables read by OptionsFromEnv.
const (
	EnvLevel  = "SHADERREFL_LOG_LEVEL"
	EnvPrefix = "SHADERREFL_LOG_PREFIX"
	EnvToFile = "SHADERREFL_LOG_TO_FILE"
)

// DefaultPrefix tags every line when no prefix is configured.
const DefaultPrefix = "shaderrefl"

// Options selects level, prefix and destination of a logger.
type Options struct {
	Level  log.Level
	Prefix string
	// ToFile writes to a timestamped file in Dir instead of stderr.
	ToFile bool
	Dir    string
}

// OptionsFromEnv reads the SHADERREFL_LOG_* variables. An unknown level
// keeps info.
func OptionsFromEnv() Options {
	opts := Options{Level: log.InfoLevel, Prefix: os.Getenv(EnvPrefix)}
	if lvl, err := log.ParseLevel(os.Getenv(EnvLevel)); err == nil {
		opts.Level = lvl
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	opts.ToFile = os.Getenv(EnvToFile) == "1"
	return opts
}

// LoggerCloser is a logger that owns its output.
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
	// Path is the log file, empty when logging to a stream.
	Path string
}

// Close closes the log file, if any.
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// NewWithWriter returns a logger writing to w. w is closed by Close unless
// it is one of the standard streams.
func NewWithWriter(w io.Writer, opts Options) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           opts.Level,
		Prefix:          opts.Prefix,
	})

	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != io.Writer(os.Stderr) && w != io.Writer(os.Stdout) {
		closer = c
	}
	return &LoggerCloser{Logger: lg, closer: closer}
}

// New returns a logger for opts. When the log file cannot be created the
// logger falls back to stderr and says so.
func New(opts Options) *LoggerCloser {
	if !opts.ToFile {
		return NewWithWriter(os.Stderr, opts)
	}

	path := filepath.Join(opts.Dir, fmt.Sprintf("shaderrefl-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		lg := NewWithWriter(os.Stderr, opts)
		lg.Warn("log file unavailable, using stderr", "path", path, "err", err)
		return lg
	}
	lg := NewWithWriter(f, opts)
	lg.Path = path
	return lg
}

// Or returns lg, or a logger writing to io.Discard when lg is nil.
func Or(lg *log.Logger) *log.Logger {
	if lg != nil {
		return lg
	}
	return log.New(io.Discard)
}
