// Package diskfacts reports filesystem usage for selected mountpoints.
package diskfacts

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/shirou/gopsutil/v4/disk"

	"github.com/jeffrom/hostfacts/facts"
)

var (
	diskPartitions = disk.PartitionsWithContext
	diskUsage      = disk.UsageWithContext
)

// Disks returns a factory for a provider reporting usage of every mountpoint
// matching one of patterns, in partition table order.
func Disks(patterns []string) facts.Factory {
	patterns = append([]string(nil), patterns...)
	return func() facts.Provider {
		return facts.NewProvider("disks", func(ctx context.Context) (facts.Facts, error) {
			return gatherDisks(ctx, patterns)
		})
	}
}

func gatherDisks(ctx context.Context, patterns []string) (facts.Facts, error) {
	mounts, err := selectMountpoints(ctx, patterns)
	if err != nil {
		return nil, err
	}

	var res facts.Facts
	var firstErr error
	for _, mp := range mounts {
		u, err := diskUsage(ctx, mp)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("diskfacts: usage of %s: %w", mp, err)
			}
			continue
		}
		if u.Total == 0 {
			continue
		}
		res = res.Append("usage of "+mp, fmt.Sprintf("%s of %s", facts.Percent(u.UsedPercent), facts.Bytes(u.Total)))
	}
	if len(res) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return res, nil
}

// selectMountpoints matches patterns against mounted partitions. Patterns
// without glob metacharacters are always included, so "/" works even where
// the partition table can't be read.
func selectMountpoints(ctx context.Context, patterns []string) ([]string, error) {
	parts, err := diskPartitions(ctx, false)
	if err != nil && !allLiteral(patterns) {
		return nil, fmt.Errorf("diskfacts: partitions: %w", err)
	}

	seen := make(map[string]bool)
	var res []string
	add := func(mp string) {
		if !seen[mp] {
			seen[mp] = true
			res = append(res, mp)
		}
	}
	for _, pat := range patterns {
		if isLiteral(pat) {
			add(pat)
		}
	}
	for _, part := range parts {
		for _, pat := range patterns {
			if ok, _ := doublestar.Match(pat, part.Mountpoint); ok {
				add(part.Mountpoint)
				break
			}
		}
	}
	return res, nil
}

func isLiteral(pat string) bool { return !strings.ContainsAny(pat, "*?[{\\") }

func allLiteral(patterns []string) bool {
	for _, pat := range patterns {
		if !isLiteral(pat) {
			return false
		}
	}
	return true
}
