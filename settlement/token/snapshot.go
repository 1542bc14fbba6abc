package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type assetState struct {
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

// Snapshot captures the balances and allowances of every registered asset.
// The settlement engine takes one at the start of a mutating operation and
// restores it when the operation aborts, which is what makes each public
// operation atomic.
type Snapshot struct {
	states map[*Asset]assetState
}

func (r *Registry) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	states := make(map[*Asset]assetState, len(r.assets))
	for _, a := range r.assets {
		states[a] = a.snapshot()
	}
	return &Snapshot{states: states}
}

func (s *Snapshot) Restore() {
	for a, state := range s.states {
		a.restore(state)
	}
}

func (a *Asset) snapshot() assetState {
	a.mu.Lock()
	defer a.mu.Unlock()

	balances := make(map[common.Address]*big.Int, len(a.balances))
	for acc, b := range a.balances {
		balances[acc] = new(big.Int).Set(b)
	}
	allowances := make(map[common.Address]map[common.Address]*big.Int, len(a.allowances))
	for owner, spenders := range a.allowances {
		copied := make(map[common.Address]*big.Int, len(spenders))
		for spender, al := range spenders {
			copied[spender] = new(big.Int).Set(al)
		}
		allowances[owner] = copied
	}
	return assetState{balances: balances, allowances: allowances}
}

func (a *Asset) restore(state assetState) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.balances = state.balances
	a.allowances = state.allowances
}
