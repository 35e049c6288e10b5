package facts

import (
	"context"
	"fmt"
	"sync"
)

// GatherFunc does the work of a provider created by NewProvider.
type GatherFunc func(ctx context.Context) (Facts, error)

// NewProvider returns a Provider named name that calls fn at most once.
//
// A non-nil error from fn makes Query return false; any facts returned
// alongside the error are discarded. A nil error with no facts is also a
// failure, reported as ErrNoResults.
func NewProvider(name string, fn GatherFunc) Provider {
	if name == "" {
		panic("facts: provider name required")
	}
	if fn == nil {
		panic(fmt.Sprintf("facts: provider %q has no gather func", name))
	}
	return &funcProvider{name: name, fn: fn}
}

type funcProvider struct {
	name string
	fn   GatherFunc

	once    sync.Once
	ok      bool
	results Facts
	err     error
}

func (p *funcProvider) Name() string { return p.name }

func (p *funcProvider) Query(ctx context.Context) bool {
	p.once.Do(func() {
		res, err := p.fn(ctx)
		if err != nil {
			p.err = err
			return
		}
		if len(res) == 0 {
			p.err = ErrNoResults
			return
		}
		p.results = res
		p.ok = true
	})
	return p.ok
}

func (p *funcProvider) Results() Facts { return p.results }

func (p *funcProvider) Err() error { return p.err }

// Static returns a Factory for a provider that always reports facts. It is
// mostly useful in tests and for facts known at startup.
func Static(name string, facts ...Fact) Factory {
	return func() Provider {
		return NewProvider(name, func(ctx context.Context) (Facts, error) {
			return append(Facts(nil), facts...), nil
		})
	}
}
