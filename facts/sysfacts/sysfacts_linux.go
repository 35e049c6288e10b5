package sysfacts

import (
	"context"

	"github.com/zcalusic/sysinfo"

	"github.com/jeffrom/hostfacts/facts"
)

var getSysInfo = func() sysinfo.SysInfo {
	var si sysinfo.SysInfo
	si.GetSysInfo()
	return si
}

func Hardware() facts.Provider { return facts.NewProvider("hardware", gatherHardware) }

type entry struct {
	name   string
	v      interface{}
	fields []field
}

func gatherHardware(ctx context.Context) (facts.Facts, error) {
	si := getSysInfo()

	entries := []entry{
		{"product", si.Product, []field{f("vendor"), f("name"), f("version")}},
		{"board", si.Board, []field{f("vendor"), f("name"), f("version")}},
		{"bios", si.BIOS, []field{f("vendor"), f("version"), ff("date", "(%v)")}},
		{"hypervisor", si.Node, []field{f("hypervisor")}},
		{"timezone", si.Node, []field{f("timezone")}},
		{"cpu", si.CPU, []field{f("model"), ff("speed", "@ %v MHz")}},
		{"cpu cores", si.CPU, []field{ff("cpus", "%v socket(s),"), ff("cores", "%v core(s),"), ff("threads", "%v thread(s)")}},
		{"memory modules", si.Memory, []field{ff("size", "%v MB"), f("type"), ff("speed", "@ %v MT/s")}},
	}
	for _, dev := range si.Storage {
		entries = append(entries, entry{"storage device", dev, []field{ff("name", "%v:"), f("vendor"), f("model"), ff("size", "(%v GB)")}})
	}
	for _, dev := range si.Network {
		entries = append(entries, entry{"network device", dev, []field{ff("name", "%v:"), f("driver"), ff("speed", "%v Mb/s")}})
	}

	var res facts.Facts
	for _, e := range entries {
		val, err := describe(e.v, e.fields...)
		if err != nil {
			return nil, err
		}
		if val == "" {
			continue
		}
		res = res.Append(e.name, val)
	}
	return res, nil
}
