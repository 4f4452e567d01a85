package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/logger"
)

// Closer collects named close functions and runs them in reverse
// registration order on shutdown.

type namedCloser struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu      sync.Mutex
	closers []namedCloser
	log     *logger.Logger
)

// SetLogger installs the logger used to report close progress.
func SetLogger(l *logger.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// AddNamed registers a close function under a human-readable name.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	closers = append(closers, namedCloser{name: name, fn: fn})
}

// CloseAll runs every registered closer, last registered first, and
// joins their errors. Registered closers are cleared afterwards.
func CloseAll(ctx context.Context) error {
	mu.Lock()
	toClose := closers
	closers = nil
	l := log
	mu.Unlock()

	var errs []error
	for i := len(toClose) - 1; i >= 0; i-- {
		c := toClose[i]
		if l != nil {
			l.Info(ctx, "closing", logger.String("component", c.name))
		}
		if err := c.fn(ctx); err != nil {
			if l != nil {
				l.Error(ctx, "close failed",
					logger.String("component", c.name),
					logger.ErrorF(err),
				)
			}
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
