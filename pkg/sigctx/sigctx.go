package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals stop the application.
var Signals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// NotifyContext returns a context which is done once one of [Signals]
// arrives or the returned stop function is called.
func NotifyContext() (context.Context, context.CancelFunc) {
	return NotifyContextFrom(context.Background())
}

func NotifyContextFrom(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, Signals...)
}
