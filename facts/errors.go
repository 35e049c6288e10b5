package facts

import "errors"

var (
	// ErrNoResults is reported for a provider that succeeded without finding
	// anything.
	ErrNoResults = errors.New("facts: provider returned no results")

	// ErrPanic wraps a panic recovered from a provider or its factory.
	ErrPanic = errors.New("facts: provider panicked")

	ErrNilProvider = errors.New("facts: factory returned a nil provider")
)
