// Package pkgfacts reports package update and reboot status on Debian-like
// hosts.
package pkgfacts

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/jeffrom/hostfacts/executil"
	"github.com/jeffrom/hostfacts/facts"
	"github.com/jeffrom/hostfacts/hostfs"
)

const (
	updatesAvailablePath = "/var/lib/update-notifier/updates-available"
	aptCheckPath         = "/usr/lib/update-notifier/apt-check"
	rebootRequiredPath   = "/var/run/reboot-required"
	rebootPkgsPath       = "/var/run/reboot-required.pkgs"
)

var ErrNoUpdateInfo = errors.New("pkgfacts: no package update information")

var (
	updatesRe  = regexp.MustCompile(`^(\d+) (?:updates?|packages?) can be (?:applied|updated)`)
	securityRe = regexp.MustCompile(`^(\d+)(?: of these)? updates? (?:are|is)(?: an?)?(?: standard)? security updates?`)
)

// Updates returns a factory for a provider reporting pending package updates.
// It reads update-notifier's cached summary and falls back to running
// apt-check when the host root is the running system.
func Updates(hfs hostfs.FS, live bool) facts.Factory {
	return func() facts.Provider {
		return facts.NewProvider("updates", func(ctx context.Context) (facts.Facts, error) {
			return gatherUpdates(ctx, hfs, live)
		})
	}
}

// Reboot returns a factory for a provider reporting whether the host needs a
// reboot, and which packages asked for it.
func Reboot(hfs hostfs.FS) facts.Factory {
	return func() facts.Provider {
		return facts.NewProvider("reboot", func(ctx context.Context) (facts.Facts, error) {
			return gatherReboot(hfs)
		})
	}
}

func gatherUpdates(ctx context.Context, hfs hostfs.FS, live bool) (facts.Facts, error) {
	b, err := hfs.ReadFile(updatesAvailablePath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("pkgfacts: %s: %w", updatesAvailablePath, err)
	}
	if err != nil {
		if !live || !hfs.Exists(aptCheckPath) {
			return nil, ErrNoUpdateInfo
		}
		b, err = executil.Output(ctx, aptCheckPath, "--human-readable")
		if err != nil {
			return nil, fmt.Errorf("pkgfacts: %w", err)
		}
	}
	return parseUpdates(b)
}

func parseUpdates(b []byte) (facts.Facts, error) {
	var updates, security string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if m := updatesRe.FindStringSubmatch(line); m != nil {
			updates = m[1]
		} else if m := securityRe.FindStringSubmatch(line); m != nil {
			security = m[1]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if updates == "" {
		if len(bytes.TrimSpace(b)) == 0 {
			// update-notifier writes an empty file when everything is current.
			updates = "0"
		} else {
			return nil, ErrNoUpdateInfo
		}
	}
	if security == "" {
		security = "0"
	}
	return facts.Facts{}.
		Append("updates available", updates).
		Append("security updates", security), nil
}

func gatherReboot(hfs hostfs.FS) (facts.Facts, error) {
	if !hfs.Exists(rebootRequiredPath) {
		return facts.Facts{}.Append("reboot required", "no"), nil
	}
	res := facts.Facts{}.Append("reboot required", "yes")

	b, err := hfs.ReadFile(rebootPkgsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return nil, fmt.Errorf("pkgfacts: %s: %w", rebootPkgsPath, err)
	}
	seen := make(map[string]bool)
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		pkg := strings.TrimSpace(sc.Text())
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		res = res.Append("reboot required by", pkg)
	}
	return res, sc.Err()
}
