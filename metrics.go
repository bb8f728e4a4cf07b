package arena

// ArenaMetrics is a snapshot of chain-wide usage.
type ArenaMetrics struct {
	Used        int     // bytes consumed by allocations, alignment padding included
	Reserved    int     // total chunk capacity in bytes
	Regions     int     // regions in the chain
	Utilization float64 // Used / Reserved, 0 when the chain is empty
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	used, reserved := a.Report()
	m := ArenaMetrics{
		Used:     used,
		Reserved: reserved,
		Regions:  len(a.regions),
	}
	if reserved > 0 {
		m.Utilization = float64(used) / float64(reserved)
	}
	return m
}
