package hostfacts

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"

	"github.com/jeffrom/hostfacts/facts"
	"github.com/jeffrom/hostfacts/hostfs"
)

var ErrNoRelease = errors.New("hostfacts: no os release file found")

var releasePaths = []string{"/etc/os-release", "/usr/lib/os-release"}

// OSRelease returns a factory for a provider that reads the os-release file
// of the host mounted at hfs.
func OSRelease(hfs hostfs.FS) facts.Factory {
	return func() facts.Provider {
		return facts.NewProvider("os-release", func(ctx context.Context) (facts.Facts, error) {
			return gatherOSRelease(hfs)
		})
	}
}

func gatherOSRelease(hfs hostfs.FS) (facts.Facts, error) {
	vals, err := readRelease(hfs)
	if err != nil {
		return nil, err
	}

	var res facts.Facts
	name := vals["PRETTY_NAME"]
	if name == "" {
		name = vals["NAME"]
		if v := vals["VERSION"]; v != "" && name != "" {
			name += " " + v
		}
	}
	if name == "" {
		name = vals["DISTRIB_DESCRIPTION"]
	}
	if name != "" {
		res = res.Append("operating system", name)
	}
	if id := vals["ID"]; id != "" {
		res = res.Append("os id", id)
	}
	if v := vals["VERSION_ID"]; v != "" {
		res = res.Append("os version", v)
	}
	return res, nil
}

// readRelease parses the first os-release file found, falling back to any
// /etc/*-release file.
func readRelease(hfs hostfs.FS) (map[string]string, error) {
	candidates := append([]string(nil), releasePaths...)
	if matches, err := hfs.Glob("/etc/*-release"); err == nil {
		candidates = append(candidates, matches...)
	}

	for _, p := range candidates {
		b, err := hfs.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("hostfacts: %s: %w", p, err)
		}
		vals, err := parseRelease(bytes.NewReader(b), p)
		if err != nil {
			return nil, err
		}
		return vals, nil
	}
	return nil, ErrNoRelease
}

// parseRelease reads shell-style VAR=value assignments, the format of
// os-release and lsb-release. Earlier assignments can be referenced by later
// ones.
func parseRelease(r io.Reader, name string) (map[string]string, error) {
	f, err := syntax.NewParser().Parse(r, name)
	if err != nil {
		return nil, fmt.Errorf("hostfacts: parse %s: %w", name, err)
	}

	vals := make(map[string]string)
	var env []string
	for _, stmt := range f.Stmts {
		call, ok := stmt.Cmd.(*syntax.CallExpr)
		if !ok || len(call.Args) > 0 {
			continue
		}
		for _, as := range call.Assigns {
			if as.Name == nil {
				continue
			}
			val := ""
			if as.Value != nil {
				cfg := &expand.Config{Env: expand.ListEnviron(env...)}
				val, err = expand.Literal(cfg, as.Value)
				if err != nil {
					return nil, fmt.Errorf("hostfacts: %s: %s: %w", name, as.Name.Value, err)
				}
			}
			vals[as.Name.Value] = val
			env = append(env, as.Name.Value+"="+val)
		}
	}
	return vals, nil
}
