package hostfacts

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/shirou/gopsutil/v4/host"

	"github.com/jeffrom/hostfacts/facts"
	"github.com/jeffrom/hostfacts/hostfs"
	"github.com/jeffrom/hostfacts/testenv"
)

func TestHost(t *testing.T) {
	defer func(orig func(context.Context) (*host.InfoStat, error)) { hostInfo = orig }(hostInfo)
	ctx := context.Background()

	hostInfo = func(ctx context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{
			Hostname:             "box",
			Platform:             "ubuntu",
			PlatformFamily:       "debian",
			PlatformVersion:      "22.04",
			KernelVersion:        "5.15.0-91-generic",
			KernelArch:           "x86_64",
			VirtualizationSystem: "kvm",
			VirtualizationRole:   "guest",
			Uptime:               26*3600 + 3*60,
			BootTime:             1700000000,
		}, nil
	}
	p := Host()
	if !p.Query(ctx) {
		t.Fatal("expected host query to succeed")
	}
	res := p.Results()
	expectValue(t, res, "hostname", "box")
	expectValue(t, res, "platform", "ubuntu 22.04 (debian)")
	expectValue(t, res, "kernel", "5.15.0-91-generic x86_64")
	expectValue(t, res, "virtualization", "kvm")
	expectValue(t, res, "uptime", "1 day, 2:03")
	if _, ok := res.Values("boot time"); !ok {
		t.Error("expected boot time")
	}

	hostInfo = func(ctx context.Context) (*host.InfoStat, error) { return nil, errors.New("nope") }
	if Host().Query(ctx) {
		t.Error("expected host query to fail")
	}
}

func TestUsers(t *testing.T) {
	defer func(orig func(context.Context) ([]host.UserStat, error)) { hostUsers = orig }(hostUsers)
	ctx := context.Background()

	hostUsers = func(ctx context.Context) ([]host.UserStat, error) {
		return []host.UserStat{
			{User: "alice", Terminal: "pts/0", Host: "10.0.0.1"},
			{User: "bob", Terminal: "tty1"},
		}, nil
	}
	p := Users()
	if !p.Query(ctx) {
		t.Fatal("expected users query to succeed")
	}
	expected := facts.Facts{
		{Name: "users logged in", Value: "2"},
		{Name: "logged in user", Value: "alice on pts/0 from 10.0.0.1"},
		{Name: "logged in user", Value: "bob on tty1"},
	}
	if !reflect.DeepEqual(p.Results(), expected) {
		t.Errorf("expected:\n%s\ngot:\n%s", spew.Sdump(expected), spew.Sdump(p.Results()))
	}

	hostUsers = func(ctx context.Context) ([]host.UserStat, error) { return nil, nil }
	p = Users()
	if !p.Query(ctx) {
		t.Fatal("expected users query with nobody logged in to succeed")
	}
	expectValue(t, p.Results(), "users logged in", "0")
}

func TestOSRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("os-release", func(t *testing.T) {
		tmpdir := testenv.TempFixtureDir(t, testenv.Path("testdata", "hosts", "ubuntu"))
		defer testenv.RemoveOnSuccess(t, tmpdir)

		p := OSRelease(hostfs.New(tmpdir))()
		if !p.Query(ctx) {
			t.Fatal("expected os-release query to succeed")
		}
		expected := facts.Facts{
			{Name: "operating system", Value: "Ubuntu 22.04.3 LTS"},
			{Name: "os id", Value: "ubuntu"},
			{Name: "os version", Value: "22.04"},
		}
		if !reflect.DeepEqual(p.Results(), expected) {
			t.Errorf("expected:\n%s\ngot:\n%s", spew.Sdump(expected), spew.Sdump(p.Results()))
		}
	})

	t.Run("lsb-release fallback", func(t *testing.T) {
		tmpdir := testenv.TempFixtureDir(t, testenv.Path("testdata", "hosts", "lsb"))
		defer testenv.RemoveOnSuccess(t, tmpdir)

		p := OSRelease(hostfs.New(tmpdir))()
		if !p.Query(ctx) {
			t.Fatal("expected lsb-release query to succeed")
		}
		expectValue(t, p.Results(), "operating system", "Ubuntu 20.04.6 LTS")
	})

	t.Run("missing", func(t *testing.T) {
		tmpdir := testenv.TempFixtureDir(t, testenv.Path("testdata", "hosts", "empty"))
		defer testenv.RemoveOnSuccess(t, tmpdir)

		p := OSRelease(hostfs.New(tmpdir))()
		if p.Query(ctx) {
			t.Fatal("expected query to fail without a release file")
		}
	})
}

func TestParseRelease(t *testing.T) {
	in := `# comment
NAME='Some Linux'
VERSION_ID=1.2
CODENAME=bear
PRETTY_NAME="$NAME ${VERSION_ID} (${CODENAME})"
EMPTY=
`
	vals, err := parseRelease(strings.NewReader(in), "test")
	if err != nil {
		t.Fatal("parseRelease failed:", err)
	}
	expected := map[string]string{
		"NAME":        "Some Linux",
		"VERSION_ID":  "1.2",
		"CODENAME":    "bear",
		"PRETTY_NAME": "Some Linux 1.2 (bear)",
		"EMPTY":       "",
	}
	if !reflect.DeepEqual(vals, expected) {
		t.Errorf("expected %v, got %v", expected, vals)
	}
}

func expectValue(t testing.TB, fs facts.Facts, name, expected string) {
	t.Helper()
	vals, ok := fs.Values(name)
	if !ok {
		t.Errorf("expected a %q fact", name)
		return
	}
	if vals[0] != expected {
		t.Errorf("%s: expected %q, got %q", name, expected, vals[0])
	}
}
