package logger

import "go.uber.org/zap"

// L is the process-wide logger. It defaults to a no-op logger so packages can
// log before Init runs (and so tests stay quiet).
var L = zap.NewNop()

// Init replaces the global logger with a production zap logger.
func Init() (*zap.Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	L = l
	return l, nil
}
