package tracker

import (
	"context"
)

// Pending is the result of a queued mutation. It resolves once the writer has
// committed or rejected the change.
type Pending struct {
	done chan struct{}
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func resolved(err error) *Pending {
	p := newPending()
	p.resolve(err)
	return p
}

func (p *Pending) resolve(err error) {
	p.err = err
	close(p.done)
}

// Done is closed when the mutation has been applied or rejected.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the mutation resolves or ctx ends. A cancelled wait does
// not cancel the mutation itself.
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the mutation's error. It is only meaningful after Done is closed.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}
