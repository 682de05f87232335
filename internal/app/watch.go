package app

import (
	"context"

	"github.com/five82/platter/internal/state"
)

// readySource is satisfied by *state.Store.
type readySource interface {
	Ready() <-chan struct{}
}

var _ readySource = (*state.Store)(nil)

// watchReady calls notify once the initial fetch settles. It returns early
// without calling notify if ctx ends first.
func watchReady(ctx context.Context, src readySource, notify func()) bool {
	select {
	case <-src.Ready():
		notify()
		return true
	case <-ctx.Done():
		return false
	}
}
