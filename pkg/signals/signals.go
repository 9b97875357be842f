package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
)

// Context returns a context that is canceled when the process receives
// SIGINT or SIGTERM.
func Context() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		glog.V(1).Infof("received signal %s; canceling", sig)
		cancel()
	}()
	return ctx
}
