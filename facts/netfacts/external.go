package netfacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"golang.org/x/net/http2"

	"github.com/jeffrom/hostfacts/facts"
)

var ErrLookupFailed = errors.New("netfacts: external ip lookup failed")

// Lookup finds the host's address as seen from outside its network.
type Lookup interface {
	Lookup(ctx context.Context) (string, error)
}

// External returns a factory for a provider reporting the result of lookup.
func External(lookup Lookup) facts.Factory {
	return func() facts.Provider {
		return facts.NewProvider("external-ip", func(ctx context.Context) (facts.Facts, error) {
			ip, err := lookup.Lookup(ctx)
			if err != nil {
				return nil, err
			}
			if ip == "" {
				return nil, fmt.Errorf("%w: empty response", ErrLookupFailed)
			}
			return facts.Facts{}.Append("external IP", ip), nil
		})
	}
}

// HTTPLookup asks a plain-text "what is my ip" service, such as
// api.ipify.org, for the address.
type HTTPLookup struct {
	URL    string
	Client *http.Client
}

// NewHTTPLookup returns an HTTPLookup whose client negotiates HTTP/2 and
// gives up after timeout.
func NewHTTPLookup(url string, timeout time.Duration) (*HTTPLookup, error) {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSHandshakeTimeout: timeout,
		MaxIdleConns:        1,
	}
	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, fmt.Errorf("netfacts: configure http2: %w", err)
	}
	return &HTTPLookup{
		URL:    url,
		Client: &http.Client{Transport: tr, Timeout: timeout},
	}, nil
}

func (l *HTTPLookup) Lookup(ctx context.Context) (string, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s returned %s", ErrLookupFailed, l.URL, resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	s := strings.TrimSpace(string(b))
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return "", fmt.Errorf("%w: unexpected response %q", ErrLookupFailed, s)
	}
	return addr.String(), nil
}
