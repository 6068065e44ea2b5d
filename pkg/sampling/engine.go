// Package sampling turns pairs of raw counter readings into normalized
// utilization percentages.
package sampling

import (
	"github.com/azuqua/spork/pkg/resources"
)

// Compute derives normalized stats for kind from a pair of counter readings.
// It is a pure function over explicit state: the caller owns the baseline
// and passes it in, nil meaning no baseline exists yet for this target.
//
// The first poll for a target has nothing to diff against and reports 0 CPU
// alongside the live memory gauge. A non-positive wall delta or a negative
// CPU delta is clamped to 0 as well; CPU counters are monotonic by OS
// contract, so either indicates clock trouble rather than a condition the
// caller could act on.
func Compute(previous *resources.RawSample, current resources.RawSample, cores int, kind resources.StatType) resources.Stats {
	stats := resources.Stats{
		Kind:   kind,
		Cores:  cores,
		Memory: current.MemoryBytes,
		Polled: current.WallTime,
	}
	if previous == nil {
		return stats
	}

	elapsedWall := current.WallTime.Sub(previous.WallTime)
	elapsedCPU := current.CPUTime - previous.CPUTime
	if elapsedWall <= 0 || elapsedCPU < 0 {
		return stats
	}

	stats.Duration = elapsedWall
	stats.CPU = float64(elapsedCPU) / float64(elapsedWall) * 100.0 / float64(cores)
	return stats
}
