package facts

import (
	"context"
	"sync"

	"github.com/jeffrom/hostfacts/stdio"
)

// Store runs a Registry's providers the first time it is asked for facts and
// serves every later request from that single result. It is safe for
// concurrent use; callers that arrive while the first run is in progress wait
// for it rather than starting another.
type Store struct {
	reg  *Registry
	opts Options
	o    *stdio.StdIO

	once sync.Once
	agg  *Aggregation
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithWorkers bounds how many providers are queried at once.
func WithWorkers(n int) StoreOption {
	return func(s *Store) { s.opts.Workers = n }
}

// WithStdIO sets where provider failures and debug output are logged, taking
// precedence over any StdIO on the caller's context.
func WithStdIO(o *stdio.StdIO) StoreOption {
	return func(s *Store) { s.o = o }
}

func NewStore(reg *Registry, opts ...StoreOption) *Store {
	if reg == nil {
		reg = NewRegistry()
	}
	s := &Store{reg: reg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) aggregation(ctx context.Context) *Aggregation {
	s.once.Do(func() {
		// the result is shared by every caller, so one caller's cancellation
		// must not reach the providers.
		ctx = context.WithoutCancel(ctx)
		if s.o != nil {
			ctx = stdio.SetContext(ctx, s.o)
		}
		s.agg = &Aggregation{Facts: Facts{}}
		s.agg = Aggregate(ctx, s.reg.Factories(), s.opts)
	})
	return s.agg
}

// GetAll returns every fact, in provider registration order. The returned
// slice is shared between callers and must not be modified.
func (s *Store) GetAll(ctx context.Context) Facts {
	return s.aggregation(ctx).Facts
}

// GetByName returns the values of every fact named name, or false if there
// are none.
func (s *Store) GetByName(ctx context.Context, name string) ([]string, bool) {
	return s.GetAll(ctx).Values(name)
}

// Outcomes reports how each provider fared, in registration order.
func (s *Store) Outcomes(ctx context.Context) []Outcome {
	return s.aggregation(ctx).Outcomes
}
