// Package loadfacts reports system load and process counts.
package loadfacts

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shirou/gopsutil/v4/load"

	"github.com/jeffrom/hostfacts/facts"
)

var (
	loadAvg  = load.AvgWithContext
	loadMisc = load.MiscWithContext
)

func Load() facts.Provider { return facts.NewProvider("load", gatherLoad) }

func Processes() facts.Provider { return facts.NewProvider("processes", gatherProcesses) }

func gatherLoad(ctx context.Context) (facts.Facts, error) {
	avg, err := loadAvg(ctx)
	if err != nil {
		return nil, fmt.Errorf("loadfacts: load average: %w", err)
	}
	return facts.Facts{}.
		Append("load average", fmt.Sprintf("%.2f, %.2f, %.2f", avg.Load1, avg.Load5, avg.Load15)), nil
}

func gatherProcesses(ctx context.Context) (facts.Facts, error) {
	misc, err := loadMisc(ctx)
	if err != nil {
		return nil, fmt.Errorf("loadfacts: process counts: %w", err)
	}
	return facts.Facts{}.
		Append("processes", strconv.FormatInt(int64(misc.ProcsTotal), 10)).
		Append("processes running", strconv.FormatInt(int64(misc.ProcsRunning), 10)).
		Append("processes blocked", strconv.FormatInt(int64(misc.ProcsBlocked), 10)), nil
}
