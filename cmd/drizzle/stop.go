package main

import "context"

// stopOnDone calls stop once ctx is cancelled. The returned release ends the
// watch without calling stop and waits for the watcher to exit; callers defer
// it around a blocking run.
func stopOnDone(ctx context.Context, stop func()) (release func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}
