// Package shutdown relays the platform's termination signals.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
)

// Notify relays termination signals to ch.
func Notify(ch chan<- os.Signal) {
	signal.Notify(ch, signals...)
}

// Watch calls fn once when a termination signal arrives. The returned stop
// function detaches the watcher without calling fn.
func Watch(fn func(os.Signal)) (stop func()) {
	ch := make(chan os.Signal, 1)
	Notify(ch)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		select {
		case sig := <-ch:
			fn(sig)
		case <-done:
		}
	}()

	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
		})
	}
}
