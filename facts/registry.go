package facts

// Registry is an ordered, append-only list of provider factories. Its order
// is the order facts are merged in.
//
// Registry does no locking: it is filled in by a single goroutine before any
// Store reads it.
type Registry struct {
	factories []Factory
}

// NewRegistry returns a Registry holding factories, in order.
func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{}
	for _, f := range factories {
		r.Register(f)
	}
	return r
}

// Register appends f. It always returns true, so it can be used to register
// a provider from a package-level var declaration.
func (r *Registry) Register(f Factory) bool {
	if f == nil {
		panic("facts: nil provider factory")
	}
	r.factories = append(r.factories, f)
	return true
}

// Factories returns the registered factories in registration order.
func (r *Registry) Factories() []Factory {
	res := make([]Factory, len(r.factories))
	copy(res, r.factories)
	return res
}

// Len returns the number of registered factories.
func (r *Registry) Len() int { return len(r.factories) }

// Reset removes every factory.
func (r *Registry) Reset() { r.factories = nil }
