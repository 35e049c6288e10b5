package facts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"golang.org/x/sync/errgroup"

	"github.com/jeffrom/hostfacts/stdio"
)

// logicalCPUs is overridden in tests.
var logicalCPUs = cpu.CountsWithContext

// Options control a single aggregation run.
type Options struct {
	// Workers is the maximum number of providers queried at once. Zero means
	// one per logical CPU.
	Workers int
}

// Outcome describes how one provider fared during aggregation.
type Outcome struct {
	Provider string        `json:"provider"`
	OK       bool          `json:"ok"`
	Facts    int           `json:"facts"`
	Duration time.Duration `json:"duration"`
	Panicked bool          `json:"panicked,omitempty"`
	Err      error         `json:"-"`
}

// Aggregation is the merged result of running every provider once.
type Aggregation struct {
	Facts    Facts
	Outcomes []Outcome
}

// Aggregate builds one provider per factory, queries them all concurrently,
// and merges their results in factory order.
//
// Failed or panicking providers are logged and contribute nothing, as do
// providers that report success without any facts. A factory or Results call
// that panics is treated the same way. Aggregate never cancels a provider and
// imposes no deadline: a provider that never returns blocks Aggregate
// forever.
func Aggregate(ctx context.Context, factories []Factory, opts Options) *Aggregation {
	o := stdio.Get(ctx).AppendScope("facts")

	providers := make([]Provider, len(factories))
	outcomes := make([]Outcome, len(factories))
	for i, f := range factories {
		p, err := build(f)
		if err != nil {
			outcomes[i] = Outcome{
				Provider: fmt.Sprintf("factory %d", i),
				Panicked: errors.Is(err, ErrPanic),
				Err:      err,
			}
			continue
		}
		providers[i] = p
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers(ctx)
	}
	o.Debugf("querying %d provider(s) with %d worker(s)", len(providers), workers)

	// each task writes only outcomes[i]; the merge below reads them after Wait.
	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range providers {
		if p == nil {
			continue
		}
		i, p := i, p
		g.Go(func() error {
			outcomes[i] = query(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	agg := &Aggregation{Facts: Facts{}, Outcomes: outcomes}
	for i, p := range providers {
		out := &agg.Outcomes[i]
		if p != nil && out.OK {
			res, err := results(p)
			switch {
			case err != nil:
				out.OK = false
				out.Panicked = true
				out.Err = err
			case len(res) == 0:
				out.OK = false
				out.Err = ErrNoResults
			default:
				out.Facts = len(res)
				agg.Facts = append(agg.Facts, res...)
			}
		}
		logOutcome(o, *out)
	}
	return agg
}

func build(f Factory) (p Provider, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: factory: %v", ErrPanic, r)
		}
	}()
	p = f()
	if p == nil {
		return nil, ErrNilProvider
	}
	return p, nil
}

func results(p Provider) (res Facts, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: results: %v", ErrPanic, r)
		}
	}()
	return p.Results(), nil
}

func query(ctx context.Context, p Provider) (out Outcome) {
	out.Provider = p.Name()
	start := time.Now()
	defer func() {
		out.Duration = time.Since(start)
		if r := recover(); r != nil {
			out.OK = false
			out.Panicked = true
			out.Err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	out.OK = p.Query(ctx)
	if !out.OK {
		if e, ok := p.(errorer); ok {
			out.Err = e.Err()
		}
	}
	return out
}

func logOutcome(o stdio.StdIO, out Outcome) {
	switch {
	case out.OK:
		o.Debugf("%s: %d fact(s) in %s", out.Provider, out.Facts, out.Duration)
	case out.Err != nil:
		o.Warningf("%s: %v", out.Provider, out.Err)
	default:
		o.Warningf("%s: query failed", out.Provider)
	}
}

func defaultWorkers(ctx context.Context) int {
	n, err := logicalCPUs(ctx, true)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
