package log

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"

	"shaderrefl/internal/logging"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	logger      *logging.LoggerCloser
)

// Setup installs the process logger once and returns it. The same
// charmbracelet logger backs the slog default, so library packages handed
// the returned logger and code calling slog share one output. A log file,
// when SHADERREFL_LOG_TO_FILE asks for one, is created in dir.
func Setup(debug bool, dir string) *charmlog.Logger {
	initOnce.Do(func() {
		opts := logging.OptionsFromEnv()
		opts.Dir = dir
		if debug {
			opts.Level = charmlog.DebugLevel
		}
		logger = logging.New(opts)
		logger.SetReportCaller(debug)
		slog.SetDefault(slog.New(logger.Logger))
		initialized.Store(true)
	})
	return logger.Logger
}

// Logger returns the process logger, or a discarding one before Setup.
func Logger() *charmlog.Logger {
	if !Initialized() {
		return logging.Or(nil)
	}
	return logger.Logger
}

func Initialized() bool {
	return initialized.Load()
}

// Close flushes and closes the log file, if any.
func Close() error {
	if !Initialized() {
		return nil
	}
	return logger.Close()
}

func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error(fmt.Sprintf("Panic in %s", name),
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if cleanup != nil {
			cleanup()
		}
	}
}
