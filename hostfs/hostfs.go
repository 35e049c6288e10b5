// Package hostfs is a read-only fs rooted at the host's filesystem root,
// which may be somewhere other than "/" when running inside a container with
// the host mounted in. It supports stat, reads, and globbing.
package hostfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FS is what file-based providers read the host through.
type FS interface {
	fs.StatFS
	fs.GlobFS
	fs.ReadFileFS
	Exists(name string) bool
	Join(paths ...string) string
}

type dirFS struct {
	dirFS fs.FS
	root  string
}

// New returns an FS rooted at root. An empty root means "/".
func New(root string) FS {
	if root == "" {
		root = "/"
	}
	root = filepath.Clean(root)
	return dirFS{
		dirFS: os.DirFS(root),
		root:  root,
	}
}

// clean turns absolute host paths like /etc/os-release into names relative
// to the root, as io/fs expects.
func (hfs dirFS) clean(name string) string {
	name = strings.TrimPrefix(filepath.ToSlash(name), "/")
	if name == "" {
		return "."
	}
	return name
}

func (hfs dirFS) Open(name string) (fs.File, error) { return hfs.dirFS.Open(hfs.clean(name)) }

func (hfs dirFS) Stat(name string) (fs.FileInfo, error) {
	return fs.Stat(hfs.dirFS, hfs.clean(name))
}

func (hfs dirFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(hfs.dirFS, hfs.clean(name))
}

func (hfs dirFS) Glob(pattern string) ([]string, error) {
	return doublestar.Glob(hfs.dirFS, hfs.clean(pattern))
}

func (hfs dirFS) Exists(name string) bool {
	_, err := hfs.Stat(name)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

func (hfs dirFS) Join(paths ...string) string {
	return filepath.Join(append([]string{hfs.root}, paths...)...)
}
