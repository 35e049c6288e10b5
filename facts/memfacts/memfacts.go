// Package memfacts reports memory and swap usage.
package memfacts

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/jeffrom/hostfacts/facts"
)

var (
	virtualMemory = mem.VirtualMemoryWithContext
	swapMemory    = mem.SwapMemoryWithContext
)

func Memory() facts.Provider { return facts.NewProvider("memory", gatherMemory) }

func Swap() facts.Provider { return facts.NewProvider("swap", gatherSwap) }

func gatherMemory(ctx context.Context) (facts.Facts, error) {
	vm, err := virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("memfacts: virtual memory: %w", err)
	}
	return facts.Facts{}.
		Append("memory usage", facts.Percent(vm.UsedPercent)).
		Append("memory total", facts.Bytes(vm.Total)), nil
}

func gatherSwap(ctx context.Context) (facts.Facts, error) {
	sm, err := swapMemory(ctx)
	if err != nil {
		return nil, fmt.Errorf("memfacts: swap: %w", err)
	}
	if sm.Total == 0 {
		return facts.Facts{}.Append("swap usage", "0% (no swap)"), nil
	}
	return facts.Facts{}.
		Append("swap usage", fmt.Sprintf("%s of %s", facts.Percent(sm.UsedPercent), facts.Bytes(sm.Total))), nil
}
