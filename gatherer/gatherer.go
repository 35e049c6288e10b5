// Package gatherer wires every known fact provider into a registry according
// to configuration, and serves the aggregated facts to the command line.
package gatherer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/jeffrom/hostfacts/config"
	"github.com/jeffrom/hostfacts/facts"
	"github.com/jeffrom/hostfacts/facts/diskfacts"
	"github.com/jeffrom/hostfacts/facts/hostfacts"
	"github.com/jeffrom/hostfacts/facts/loadfacts"
	"github.com/jeffrom/hostfacts/facts/memfacts"
	"github.com/jeffrom/hostfacts/facts/netfacts"
	"github.com/jeffrom/hostfacts/facts/pkgfacts"
	"github.com/jeffrom/hostfacts/facts/sysfacts"
	"github.com/jeffrom/hostfacts/hostfs"
)

type Gatherer struct {
	cfg   config.Config
	names []string
	store *facts.Store
}

// New validates cfg and registers the providers it selects. No provider runs
// until facts are first requested.
func New(cfg config.Config) (*Gatherer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	creators, err := providerCreators(cfg)
	if err != nil {
		return nil, err
	}

	reg := facts.NewRegistry()
	var names []string
	for _, c := range creators {
		if !selected(c.name, cfg.Providers, cfg.Exclude) {
			continue
		}
		reg.Register(c.factory)
		names = append(names, c.name)
	}

	return &Gatherer{
		cfg:   cfg,
		names: names,
		store: facts.NewStore(reg, facts.WithWorkers(cfg.Workers)),
	}, nil
}

// ProviderNames returns the selected providers in registration order.
func (g *Gatherer) ProviderNames() []string {
	return append([]string(nil), g.names...)
}

func (g *Gatherer) Facts(ctx context.Context) facts.Facts {
	return g.store.GetAll(ctx)
}

func (g *Gatherer) Get(ctx context.Context, name string) ([]string, bool) {
	return g.store.GetByName(ctx, name)
}

func (g *Gatherer) Outcomes(ctx context.Context) []facts.Outcome {
	return g.store.Outcomes(ctx)
}

// Available returns the name of every provider hostfacts knows about,
// selected or not.
func Available() []string {
	cfg := config.Default()
	cfg.ExternalIP.Enabled = true
	creators, err := providerCreators(cfg)
	if err != nil {
		panic(err)
	}
	names := make([]string, len(creators))
	for i, c := range creators {
		names[i] = c.name
	}
	return names
}

type creator struct {
	name    string
	factory facts.Factory
}

// providerCreators lists every provider in the order their facts are
// reported.
func providerCreators(cfg config.Config) ([]creator, error) {
	hfs := hostfs.New(cfg.HostRoot)
	live := cfg.HostRoot == "" || filepath.Clean(cfg.HostRoot) == "/"

	factories := []facts.Factory{
		hostfacts.Host,
		hostfacts.OSRelease(hfs),
		loadfacts.Load,
		loadfacts.Processes,
		memfacts.Memory,
		memfacts.Swap,
		diskfacts.Disks(cfg.Mountpoints),
		hostfacts.Users,
		netfacts.Interfaces,
	}
	if cfg.ExternalIP.Enabled {
		lookup, err := netfacts.NewHTTPLookup(cfg.ExternalIP.URL, time.Duration(cfg.ExternalIP.Timeout))
		if err != nil {
			return nil, err
		}
		factories = append(factories, netfacts.External(lookup))
	}
	factories = append(factories,
		pkgfacts.Updates(hfs, live),
		pkgfacts.Reboot(hfs),
		sysfacts.Hardware,
	)

	res := make([]creator, len(factories))
	for i, f := range factories {
		res[i] = creator{name: f().Name(), factory: f}
	}
	return res, nil
}

func selected(name string, include, exclude []string) bool {
	if len(include) > 0 && !matchAny(include, name) {
		return false
	}
	return !matchAny(exclude, name)
}

func matchAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		ok, err := doublestar.Match(pat, name)
		if err != nil {
			panic(fmt.Sprintf("gatherer: unvalidated glob %q: %v", pat, err))
		}
		if ok {
			return true
		}
	}
	return false
}
