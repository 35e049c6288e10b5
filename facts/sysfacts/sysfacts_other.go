//go:build !linux

package sysfacts

import (
	"context"
	"errors"

	"github.com/jeffrom/hostfacts/facts"
)

var ErrUnsupported = errors.New("sysfacts: hardware facts are only available on linux")

func Hardware() facts.Provider {
	return facts.NewProvider("hardware", func(ctx context.Context) (facts.Facts, error) {
		return nil, ErrUnsupported
	})
}
