package structlayout

import (
	"go.uber.org/zap"

	"github.com/alignlab/structlayout/internal/calc"
)

// Logger returns the library's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	return calc.Logger()
}

// SetLogger configures logging for layout computations.
// This must be called before any Compute calls.
func SetLogger(l *zap.Logger) {
	calc.SetLogger(l)
}
