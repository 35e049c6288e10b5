package hostfs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jeffrom/hostfacts/testenv"
)

func TestFS(t *testing.T) {
	tmpdir := testenv.TempDir(t, "hostfs")
	defer testenv.RemoveOnSuccess(t, tmpdir)

	testenv.Mkdirs(t, 0755, filepath.Join(tmpdir, "etc"), filepath.Join(tmpdir, "var", "run"))
	testenv.WriteFile(t, filepath.Join(tmpdir, "etc", "os-release"), "ID=debian\n")
	testenv.WriteFile(t, filepath.Join(tmpdir, "etc", "lsb-release"), "DISTRIB_ID=Debian\n")

	hfs := New(tmpdir)

	b, err := hfs.ReadFile("/etc/os-release")
	if err != nil {
		t.Fatal("ReadFile failed:", err)
	}
	if string(b) != "ID=debian\n" {
		t.Errorf("unexpected contents: %q", b)
	}

	if !hfs.Exists("/etc/os-release") {
		t.Error("expected /etc/os-release to exist")
	}
	if hfs.Exists("/var/run/reboot-required") {
		t.Error("expected /var/run/reboot-required not to exist")
	}

	matches, err := hfs.Glob("/etc/*-release")
	if err != nil {
		t.Fatal("Glob failed:", err)
	}
	expected := []string{"etc/lsb-release", "etc/os-release"}
	if !reflect.DeepEqual(matches, expected) {
		t.Errorf("expected %v, got %v", expected, matches)
	}

	if p := hfs.Join("etc", "os-release"); p != filepath.Join(tmpdir, "etc", "os-release") {
		t.Errorf("unexpected Join result: %q", p)
	}

	if _, err := hfs.Stat("/"); err != nil {
		t.Errorf("expected root to stat, got %v", err)
	}
	if _, err := os.Stat(hfs.Join()); err != nil {
		t.Errorf("expected Join() to be the root, got %v", err)
	}
}
