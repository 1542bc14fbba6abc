package token

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Registry holds the assets known on one domain, keyed by address.
type Registry struct {
	mu     sync.RWMutex
	assets map[common.Address]*Asset
}

func NewRegistry() *Registry {
	return &Registry{assets: make(map[common.Address]*Asset)}
}

func (r *Registry) Register(a *Asset) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.assets[a.Address()] = a
}

func (r *Registry) Asset(address common.Address) (*Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.assets[address]
	if !ok {
		return nil, fmt.Errorf("no asset registered at %s", address.Hex())
	}
	return a, nil
}

func (r *Registry) BySymbol(symbol string) (*Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assets {
		if a.Symbol() == symbol {
			return a, nil
		}
	}
	return nil, fmt.Errorf("no asset registered for symbol %s", symbol)
}
