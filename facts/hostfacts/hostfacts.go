// Package hostfacts reports facts about the host itself: its name, kernel,
// uptime, logged in users and operating system release.
package hostfacts

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/jeffrom/hostfacts/facts"
)

const timeLayout = "2006-01-02 15:04:05"

var (
	hostInfo  = host.InfoWithContext
	hostUsers = host.UsersWithContext
)

func Host() facts.Provider { return facts.NewProvider("host", gatherHost) }

func Users() facts.Provider { return facts.NewProvider("users", gatherUsers) }

func gatherHost(ctx context.Context) (facts.Facts, error) {
	info, err := hostInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("hostfacts: host info: %w", err)
	}

	var res facts.Facts
	if info.Hostname != "" {
		res = res.Append("hostname", info.Hostname)
	}
	if info.Platform != "" {
		platform := info.Platform
		if info.PlatformVersion != "" {
			platform += " " + info.PlatformVersion
		}
		if info.PlatformFamily != "" && info.PlatformFamily != info.Platform {
			platform += " (" + info.PlatformFamily + ")"
		}
		res = res.Append("platform", platform)
	}
	if info.KernelVersion != "" {
		kernel := info.KernelVersion
		if info.KernelArch != "" {
			kernel += " " + info.KernelArch
		}
		res = res.Append("kernel", kernel)
	}
	if info.VirtualizationSystem != "" && info.VirtualizationRole == "guest" {
		res = res.Append("virtualization", info.VirtualizationSystem)
	}
	if info.Uptime > 0 {
		res = res.Append("uptime", facts.Duration(time.Duration(info.Uptime)*time.Second))
	}
	if info.BootTime > 0 {
		res = res.Append("boot time", time.Unix(int64(info.BootTime), 0).Format(timeLayout))
	}
	return res, nil
}

func gatherUsers(ctx context.Context) (facts.Facts, error) {
	users, err := hostUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("hostfacts: users: %w", err)
	}

	res := facts.Facts{}.Append("users logged in", strconv.Itoa(len(users)))
	for _, u := range users {
		desc := u.User
		if u.Terminal != "" {
			desc += " on " + u.Terminal
		}
		if u.Host != "" {
			desc += " from " + u.Host
		}
		if u.Started > 0 {
			desc += " since " + time.Unix(int64(u.Started), 0).Format(timeLayout)
		}
		res = res.Append("logged in user", desc)
	}
	return res, nil
}
