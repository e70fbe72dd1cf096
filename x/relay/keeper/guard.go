package keeper

import (
	"sync/atomic"

	"github.com/acurast/hyperdrive-relay/x/relay/types"
)

// reentrancyGuard rejects nested entry into the receive path for the
// duration of the outermost call.
type reentrancyGuard struct {
	locked atomic.Bool
}

func (g *reentrancyGuard) enter() error {
	if !g.locked.CompareAndSwap(false, true) {
		return types.ErrReentrantCall
	}
	return nil
}

func (g *reentrancyGuard) exit() {
	g.locked.Store(false)
}
