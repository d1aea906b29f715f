// Package interrupt runs registered shutdown handlers exactly once, on SIGINT,
// SIGTERM or an explicit Request, latest registered first.
package interrupt

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"fixint.lol/log"
)

var (
	mx       sync.Mutex
	handlers []func()
	once     sync.Once
	done     = make(chan struct{})
	signals  = make(chan os.Signal, 1)
	listen   sync.Once
)

// AddHandler registers fn to run on shutdown. Handlers added after shutdown has
// begun never run.
func AddHandler(fn func()) {
	mx.Lock()
	defer mx.Unlock()
	handlers = append(handlers, fn)
}

// Listener starts watching for SIGINT and SIGTERM.
func Listener() {
	listen.Do(func() {
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-signals:
				log.I.Ln("received", sig)
				Request()
			case <-done:
			}
		}()
	})
}

// Request runs the handlers if they have not run yet.
func Request() {
	once.Do(func() {
		mx.Lock()
		hs := handlers
		handlers = nil
		mx.Unlock()
		for i := len(hs) - 1; i >= 0; i-- {
			hs[i]()
		}
		close(done)
	})
}

// Done is closed after the handlers have run.
func Done() <-chan struct{} { return done }

// Wait blocks until the handlers have run.
func Wait() { <-done }
