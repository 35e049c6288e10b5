// Package facts collects information about the local machine from many
// independent providers, runs them concurrently, and merges what they find
// into one ordered, cached result.
package facts

import "context"

// Fact is a single named, human-readable piece of information.
type Fact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Facts is an ordered list of facts. Several facts may share a name.
type Facts []Fact

// Append returns fs with a fact added to the end.
func (fs Facts) Append(name, value string) Facts {
	return append(fs, Fact{Name: name, Value: value})
}

// Values returns the value of every fact named name, in order, and whether
// there were any.
func (fs Facts) Values(name string) ([]string, bool) {
	var res []string
	for _, f := range fs {
		if f.Name == name {
			res = append(res, f.Value)
		}
	}
	return res, len(res) > 0
}

// Names returns the distinct fact names in the order they first appear.
func (fs Facts) Names() []string {
	seen := make(map[string]bool, len(fs))
	var res []string
	for _, f := range fs {
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		res = append(res, f.Name)
	}
	return res
}

// Provider gathers facts from a single source.
type Provider interface {
	// Name identifies the provider in logs and provider selection.
	Name() string

	// Query does the provider's work. It may block. Only the first call does
	// anything; later calls return the first call's outcome.
	Query(ctx context.Context) bool

	// Results returns the facts found by Query. It is only valid after Query
	// has returned.
	Results() Facts
}

// Factory creates a new, unqueried Provider. Factories must not do I/O.
type Factory func() Provider

// errorer is implemented by providers that can explain a failed Query.
type errorer interface {
	Err() error
}
