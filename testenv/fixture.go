package testenv

import (
	"os"
	"testing"

	"github.com/otiai10/copy"
)

// TempFixtureDir copies fixtureDir, usually a fake host root under testdata/,
// into a new temp dir and returns the temp dir.
func TempFixtureDir(t testing.TB, fixtureDir string) string {
	t.Helper()
	if info, err := os.Stat(fixtureDir); err != nil {
		panic(err)
	} else if !info.IsDir() {
		panic(fixtureDir + " is not a directory")
	}
	tmpDir := TempDir(t, "fixture")
	die(copy.Copy(fixtureDir, tmpDir, copy.Options{
		OnDirExists: func(src, dest string) copy.DirExistsAction { return copy.Replace },
	}))
	return tmpDir
}
