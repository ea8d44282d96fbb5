package ownref

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/ownref/internal/viewcheck"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once

	derivedCheck = false
)

// Logger returns the logger for the ownref package.
// It uses a no-op logger by default. Use SetLogger to configure.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the logger for the ownref package.
// Must be called before any ownref operations for logging to take effect.
func SetLogger(l *zap.Logger) {
	logger = l
}

// SetDerivedCheck toggles a debug diagnostic: when enabled, every Map
// whose projection returns a view outside the storage of its input view
// logs a warning through the package logger. Projections into storage
// that outlives every owner are legal and still reported, so the check
// warns and never panics, and it never alters what Map returns.
func SetDerivedCheck(enabled bool) {
	derivedCheck = enabled
}

func reportUnderived(from, to any) {
	if viewcheck.Derived(from, to) {
		return
	}
	Logger().Warn("projected view does not alias its input view",
		zap.String("from", fmt.Sprintf("%T", from)),
		zap.String("to", fmt.Sprintf("%T", to)),
	)
}
