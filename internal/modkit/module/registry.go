package module

import "sync"

// process-global registry used to cross-wire ports during bootstrap in main
var (
	regMu sync.RWMutex
	sets  = map[string]any{}
)

// Register stores a port set under a module name
func Register(name string, ports any) {
	regMu.Lock()
	sets[name] = ports
	regMu.Unlock()
}

// PortsAs fetches and type-asserts the port set registered under name
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, ok := sets[name]
	regMu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset clears the registry between tests
func Reset() {
	regMu.Lock()
	sets = map[string]any{}
	regMu.Unlock()
}
