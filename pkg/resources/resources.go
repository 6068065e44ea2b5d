package resources

import (
	"time"
)

// Platform identifies the operating system family the process is running on.
// It is detected once per client and never changes for the life of the run.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux
	PlatformDarwin
	PlatformBSD
	PlatformWindows
)

func (p Platform) String() string {
	switch p {
	case PlatformLinux:
		return "linux"
	case PlatformDarwin:
		return "darwin"
	case PlatformBSD:
		return "bsd"
	case PlatformWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// StatType selects whose usage a poll accounts for.
type StatType int

const (
	// Process reads usage aggregated across the entire calling process.
	Process StatType = iota

	// Thread reads usage for the calling OS thread only. Goroutines migrate
	// between threads, so pin with runtime.LockOSThread when the reading
	// must describe the calling goroutine's work.
	Thread

	// Children reads aggregate usage of children spawned by the caller,
	// excluding the caller itself.
	Children
)

func (s StatType) String() string {
	switch s {
	case Process:
		return "process"
	case Thread:
		return "thread"
	case Children:
		return "children"
	default:
		return "invalid"
	}
}

// HardwareInfo describes the host's CPU characteristics. Captured once at
// client construction and treated as static for the run.
type HardwareInfo struct {
	// NumCores is the number of logical CPU cores, at least 1.
	NumCores int

	// ClockSpeedHz is the nominal CPU clock speed. 0 means unknown; clock
	// speed is best effort and never fails detection on its own.
	ClockSpeedHz uint64
}

// RawSample is one instantaneous counter reading for a target. Samples are
// only meaningful in pairs: a single reading carries no rate information.
type RawSample struct {
	// CPUTime is the cumulative user+system CPU time of the target, a
	// monotonically non-decreasing counter.
	CPUTime time.Duration

	// WallTime is when the reading was taken.
	WallTime time.Time

	// MemoryBytes is the resident memory of the target at the instant of
	// the reading.
	MemoryBytes uint64
}

// Stats is the result of one poll.
type Stats struct {
	// CPU is the average CPU load percentage since the previous poll of the
	// same target, normalized across Cores. The value is not capped: a
	// process keeping two cores busy normalized against one core reads 200.
	// The first poll for a target has no baseline and reads 0.
	CPU float64

	// Memory is the target's resident memory in bytes at poll time. It is a
	// gauge, not a rate.
	Memory uint64

	// Cores is the number of CPU cores the percentage was normalized over.
	Cores int

	// Kind is the target this poll accounted for.
	Kind StatType

	// Polled is when this sample was taken.
	Polled time.Time

	// Duration is the wall-clock interval the CPU percentage was measured
	// over. 0 on the first poll for a target.
	Duration time.Duration

	// Uptime is how long the client had existed at poll time.
	Uptime time.Duration
}
