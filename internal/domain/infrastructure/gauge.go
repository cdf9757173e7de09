package infrastructure

// Gauge is the live occupancy of a facility: current occupants against the
// maximum capacity. Values are read at query time, never cached.
type Gauge struct {
	Current uint
	Max     uint
}

// FreeRatio returns the available share of capacity in [0, 1]. A zero or
// overfull gauge yields 0.
func (g Gauge) FreeRatio() float64 {
	if g.Max == 0 || g.Current >= g.Max {
		return 0
	}
	return float64(g.Max-g.Current) / float64(g.Max)
}

// FreePercent returns the available share rounded to the nearest whole
// percent.
func (g Gauge) FreePercent() int {
	return int(g.FreeRatio()*100 + 0.5)
}
