// Package telemetry computes and records per-frame statistics for a run.
package telemetry

import (
	"github.com/pthm-cable/waterflow/sim"
)

// FrameStats holds aggregated channel statistics for one emitted frame.
type FrameStats struct {
	Frame int `csv:"frame"`

	MinVal uint8 `csv:"min"`
	MaxVal uint8 `csv:"max"`

	MeanR float64 `csv:"mean_r"`
	MeanG float64 `csv:"mean_g"`
	MeanB float64 `csv:"mean_b"`

	// Total channel sum; bounded by 255 * pixels * 3.
	ChannelSum int64 `csv:"channel_sum"`
}

// Collect computes statistics for a frame.
func Collect(f *sim.Frame) FrameStats {
	stats := FrameStats{
		Frame:  f.Index,
		MinVal: 255,
	}
	var sums [3]int64
	for i, v := range f.Pix {
		if v < stats.MinVal {
			stats.MinVal = v
		}
		if v > stats.MaxVal {
			stats.MaxVal = v
		}
		sums[i%3] += int64(v)
	}

	pixels := float64(f.Size * f.Size)
	stats.MeanR = float64(sums[0]) / pixels
	stats.MeanG = float64(sums[1]) / pixels
	stats.MeanB = float64(sums[2]) / pixels
	stats.ChannelSum = sums[0] + sums[1] + sums[2]
	return stats
}
