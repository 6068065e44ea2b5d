package sampling

import (
	"testing"
	"time"

	"github.com/azuqua/spork/pkg/resources"
	"github.com/shoenig/test/must"
)

var epoch = time.Date(2023, 11, 1, 12, 0, 0, 0, time.UTC)

func sample(wall time.Time, cpu time.Duration, memory uint64) resources.RawSample {
	return resources.RawSample{
		CPUTime:     cpu,
		WallTime:    wall,
		MemoryBytes: memory,
	}
}

func Test_Compute_firstPoll(t *testing.T) {
	current := sample(epoch, 250*time.Millisecond, 2048)

	stats := Compute(nil, current, 1, resources.Process)
	must.Eq(t, 0.0, stats.CPU)
	must.Eq(t, 2048, stats.Memory)
	must.Eq(t, epoch, stats.Polled)
	must.Eq(t, time.Duration(0), stats.Duration)
	must.Eq(t, resources.Process, stats.Kind)
	must.Eq(t, 1, stats.Cores)
}

func Test_Compute_fullyBusy(t *testing.T) {
	previous := sample(epoch, 0, 1024)
	current := sample(epoch.Add(1*time.Second), 1*time.Second, 1024)

	stats := Compute(&previous, current, 1, resources.Thread)
	must.Eq(t, 100.0, stats.CPU)
	must.Eq(t, 1*time.Second, stats.Duration)
}

func Test_Compute_halfBusy(t *testing.T) {
	previous := sample(epoch, 2*time.Second, 1024)
	current := sample(epoch.Add(1*time.Second), 2500*time.Millisecond, 1024)

	stats := Compute(&previous, current, 1, resources.Process)
	must.Eq(t, 50.0, stats.CPU)
}

func Test_Compute_normalizedAcrossCores(t *testing.T) {
	previous := sample(epoch, 0, 1024)
	current := sample(epoch.Add(1*time.Second), 1*time.Second, 1024)

	stats := Compute(&previous, current, 4, resources.Process)
	must.Eq(t, 25.0, stats.CPU)
	must.Eq(t, 4, stats.Cores)
}

func Test_Compute_uncappedMultiCore(t *testing.T) {
	// two saturated cores normalized against one read as a sum, not 100
	previous := sample(epoch, 0, 1024)
	current := sample(epoch.Add(1*time.Second), 2*time.Second, 1024)

	stats := Compute(&previous, current, 1, resources.Process)
	must.Eq(t, 200.0, stats.CPU)
}

func Test_Compute_zeroElapsedWall(t *testing.T) {
	previous := sample(epoch, 0, 1024)
	current := sample(epoch, 1*time.Second, 4096)

	stats := Compute(&previous, current, 1, resources.Process)
	must.Eq(t, 0.0, stats.CPU)
	must.Eq(t, time.Duration(0), stats.Duration)
	must.Eq(t, 4096, stats.Memory)
}

func Test_Compute_backwardWallClock(t *testing.T) {
	previous := sample(epoch.Add(1*time.Second), 0, 1024)
	current := sample(epoch, 1*time.Second, 1024)

	stats := Compute(&previous, current, 1, resources.Process)
	must.Eq(t, 0.0, stats.CPU)
}

func Test_Compute_backwardCPUCounter(t *testing.T) {
	previous := sample(epoch, 2*time.Second, 1024)
	current := sample(epoch.Add(1*time.Second), 1*time.Second, 1024)

	stats := Compute(&previous, current, 1, resources.Process)
	must.Eq(t, 0.0, stats.CPU)
}

func Test_Compute_memoryIsGauge(t *testing.T) {
	// memory reflects only the current reading, never a delta
	previous := sample(epoch, 0, 1<<30)
	current := sample(epoch.Add(1*time.Second), 100*time.Millisecond, 4096)

	stats := Compute(&previous, current, 1, resources.Children)
	must.Eq(t, 4096, stats.Memory)
	must.Eq(t, resources.Children, stats.Kind)
}

func Test_Compute_idleInterval(t *testing.T) {
	previous := sample(epoch, 3*time.Second, 1024)
	current := sample(epoch.Add(2*time.Second), 3*time.Second, 1024)

	stats := Compute(&previous, current, 8, resources.Process)
	must.Eq(t, 0.0, stats.CPU)
	must.Eq(t, 2*time.Second, stats.Duration)
}
