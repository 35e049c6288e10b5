package gatherer

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/jeffrom/hostfacts/config"
	"github.com/jeffrom/hostfacts/facts"
	"github.com/jeffrom/hostfacts/testenv"
)

func TestAvailable(t *testing.T) {
	expected := []string{
		"host", "os-release", "load", "processes", "memory", "swap", "disks",
		"users", "interfaces", "external-ip", "updates", "reboot", "hardware",
	}
	if got := Available(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected:\n%s\ngot:\n%s", spew.Sdump(expected), spew.Sdump(got))
	}
}

func TestSelect(t *testing.T) {
	tcs := []struct {
		name      string
		providers []string
		exclude   []string
		expect    []string
	}{
		{
			name:      "include",
			providers: []string{"reboot", "os-*"},
			expect:    []string{"os-release", "reboot"},
		},
		{
			name:    "exclude",
			exclude: []string{"*"},
		},
		{
			name:      "include and exclude",
			providers: []string{"*s"},
			exclude:   []string{"disks", "users"},
			expect:    []string{"processes", "interfaces", "updates"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Providers = tc.providers
			cfg.Exclude = tc.exclude
			g, err := New(cfg)
			if err != nil {
				t.Fatal(err)
			}
			if got := g.ProviderNames(); !reflect.DeepEqual(got, tc.expect) {
				t.Errorf("expected %q, got %q", tc.expect, got)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Format = "xml"
	if _, err := New(cfg); !errors.Is(err, config.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestGatherHostRoot(t *testing.T) {
	ctx := context.Background()
	tmpdir := testenv.TempFixtureDir(t, testenv.Path("testdata", "hosts", "ubuntu"))
	defer testenv.RemoveOnSuccess(t, tmpdir)

	cfg := config.Default()
	cfg.HostRoot = tmpdir
	cfg.Providers = []string{"reboot", "updates", "os-release"}
	g, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	expected := facts.Facts{
		{Name: "operating system", Value: "Ubuntu 22.04.3 LTS"},
		{Name: "os id", Value: "ubuntu"},
		{Name: "os version", Value: "22.04"},
		{Name: "updates available", Value: "12"},
		{Name: "security updates", Value: "3"},
		{Name: "reboot required", Value: "yes"},
		{Name: "reboot required by", Value: "linux-image-5.15.0-91-generic"},
		{Name: "reboot required by", Value: "libc6"},
	}
	if got := g.Facts(ctx); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected:\n%s\ngot:\n%s", spew.Sdump(expected), spew.Sdump(got))
	}

	vals, ok := g.Get(ctx, "reboot required by")
	if !ok || len(vals) != 2 {
		t.Errorf("expected 2 reboot packages, got %q (%v)", vals, ok)
	}
	if _, ok := g.Get(ctx, "hostname"); ok {
		t.Error("expected hostname to be missing when host provider is not selected")
	}

	outs := g.Outcomes(ctx)
	if len(outs) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outs))
	}
	for _, out := range outs {
		if !out.OK {
			t.Errorf("expected %s to succeed: %v", out.Provider, out.Err)
		}
	}
}

func TestGatherEmptyHostRoot(t *testing.T) {
	ctx := context.Background()
	tmpdir := testenv.TempFixtureDir(t, testenv.Path("testdata", "hosts", "empty"))
	defer testenv.RemoveOnSuccess(t, tmpdir)

	cfg := config.Default()
	cfg.HostRoot = tmpdir
	cfg.Providers = []string{"os-release", "updates", "reboot"}
	g, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	expected := facts.Facts{{Name: "reboot required", Value: "no"}}
	if got := g.Facts(ctx); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected:\n%s\ngot:\n%s", spew.Sdump(expected), spew.Sdump(got))
	}
	for _, out := range g.Outcomes(ctx) {
		if out.Provider != "reboot" && out.OK {
			t.Errorf("expected %s to fail on an empty host", out.Provider)
		}
	}
}
