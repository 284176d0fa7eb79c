package logger

import (
	"context"
	"os"
)

type noopLogger struct{}

func (n *noopLogger) Log(context.Context, LogEntry)  {}
func (n *noopLogger) Shutdown(context.Context) error { return nil }

// exit is swapped out in tests so Fatal can be exercised.
var exit = os.Exit
