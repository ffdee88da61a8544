package backend

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/valensas/xfer"
)

// Constructor builds a client that is not connected yet. variant is only meaningful to FTPS.
type Constructor func(variant xfer.Variant) xfer.Client

var mmu sync.RWMutex
var m map[xfer.ConnectionType]Constructor

// Register a new client constructor in backend map
func Register(t xfer.ConnectionType, c Constructor) {
	mmu.Lock()
	m[t] = c
	mmu.Unlock()
}

// Unregister unregisters a client constructor from backend map
func Unregister(t xfer.ConnectionType) {
	mmu.Lock()
	delete(m, t)
	mmu.Unlock()
}

// UnregisterAll unregisters all client constructors from backend map
func UnregisterAll() {
	// mainly for tests
	mmu.Lock()
	m = make(map[xfer.ConnectionType]Constructor)
	mmu.Unlock()
}

// Backend returns the client constructor registered for t, or nil
func Backend(t xfer.ConnectionType) Constructor {
	mmu.RLock()
	defer mmu.RUnlock()
	return m[t]
}

// RegisteredBackends returns the registered connection types in order
func RegisteredBackends() []xfer.ConnectionType {
	var f []xfer.ConnectionType
	mmu.RLock()
	for k := range m {
		f = append(f, k)
	}
	mmu.RUnlock()
	slices.Sort(f)
	return f
}

// NewClient returns a new, unconnected client for t. No I/O is done. The only failure is a type nobody
// registered, reported as xfer.ErrConfiguration.
func NewClient(t xfer.ConnectionType, v xfer.Variant) (xfer.Client, error) {
	c := Backend(t)
	if c == nil {
		return nil, xfer.NewConfigurationError(fmt.Errorf("no client registered for connection type %s", t))
	}
	return c(v), nil
}

// Connect builds the client model asks for and drives it with xfer.AuthAndConnect. The client is returned whenever
// one could be built, even if it didn't connect; check result.Connected.
func Connect(ctx context.Context, model xfer.ConnectionModel) (xfer.Client, xfer.ConnectionResult, error) {
	client, err := NewClient(model.ConnectionType, model.Variant)
	if err != nil {
		return nil, xfer.ConnectionResult{}, err
	}

	result, err := xfer.AuthAndConnect(ctx, client, model)
	if err != nil {
		return client, xfer.ConnectionResult{}, err
	}
	return client, result, nil
}

func init() {
	m = make(map[xfer.ConnectionType]Constructor)
}
