// Package config loads hostfacts configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/ghodss/yaml"
)

var (
	ErrUnknownFormat = errors.New("config: unknown output format")
	ErrInvalid       = errors.New("config: invalid configuration")
)

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "yaml", "template"}

// Config is the full hostfacts configuration. Zero values mean "use the
// default" wherever that makes sense.
type Config struct {
	// Workers bounds concurrent provider queries. Zero means one per logical
	// CPU.
	Workers int `json:"workers,omitempty"`

	// Providers are globs selecting which providers run. Empty selects all.
	Providers []string `json:"providers,omitempty"`
	// Exclude are globs of providers to skip, applied after Providers.
	Exclude []string `json:"exclude,omitempty"`

	// Mountpoints are globs of mountpoints the disks provider reports on.
	Mountpoints []string `json:"mountpoints,omitempty"`

	// HostRoot is where the host's filesystem is mounted.
	HostRoot string `json:"host_root,omitempty"`

	ExternalIP ExternalIP `json:"external_ip,omitempty"`

	Format   string `json:"format,omitempty"`
	Template string `json:"template,omitempty"`
	NoColor  bool   `json:"no_color,omitempty"`
}

// ExternalIP configures the remote public address lookup.
type ExternalIP struct {
	Enabled bool     `json:"enabled,omitempty"`
	URL     string   `json:"url,omitempty"`
	Timeout Duration `json:"timeout,omitempty"`
}

// Duration is a time.Duration that reads from YAML as a string like "5s".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Duration(d).String())), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

const DefaultExternalIPURL = "https://api.ipify.org"

func Default() Config {
	return Config{
		Mountpoints: []string{"/"},
		HostRoot:    "/",
		ExternalIP: ExternalIP{
			URL:     DefaultExternalIPURL,
			Timeout: Duration(5 * time.Second),
		},
		Format: "text",
	}
}

// DefaultPaths returns the config files read when none are given, in the
// order they are merged.
func DefaultPaths() []string {
	paths := []string{"/etc/hostfacts/config.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "hostfacts", "config.yaml"))
	}
	return paths
}

// Load returns Default() with each file in paths merged over it, in order.
// Missing files are skipped when optional is true. The result is not
// validated, since command line flags usually still apply on top of it.
func Load(paths []string, optional bool) (Config, error) {
	cfg := Default()
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			if optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", p, err)
		}
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative (%d)", ErrInvalid, c.Workers)
	}
	if !validFormat(c.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.Format == "template" && c.Template == "" {
		return fmt.Errorf("%w: template format requires a template", ErrInvalid)
	}
	for _, globs := range [][]string{c.Providers, c.Exclude, c.Mountpoints} {
		for _, pat := range globs {
			if !doublestar.ValidatePattern(pat) {
				return fmt.Errorf("%w: bad glob %q", ErrInvalid, pat)
			}
		}
	}
	return nil
}

func validFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
