package spork

import (
	"fmt"
	"sync"
	"time"

	"github.com/azuqua/spork/pkg/counter"
	"github.com/azuqua/spork/pkg/resources"
	"github.com/azuqua/spork/pkg/sampling"
	"github.com/hashicorp/go-hclog"
	"oss.indeed.com/go/libtime"
)

// Aliases so callers only need this package for everyday use.
type (
	Stats     = resources.Stats
	StatType  = resources.StatType
	Platform  = resources.Platform
	Error     = resources.Error
	ErrorKind = resources.ErrorKind
)

const (
	Process  = resources.Process
	Thread   = resources.Thread
	Children = resources.Children
)

// baselineKey identifies one stream of samples. Baselines must never be
// diffed across different normalizations, so state is keyed by the
// (target, core count) pair rather than the target alone.
type baselineKey struct {
	kind  resources.StatType
	cores int
}

// Client polls CPU and memory usage for the calling process, thread, or
// children. The platform is detected once at construction; each poll reads
// fresh counters and diffs them against the previous poll of the same
// target. The only mutable state is the per-target baseline map, confined
// to the instance, so independent clients never interfere.
type Client struct {
	logger hclog.Logger
	clock  libtime.Clock
	reader counter.Reader

	platform resources.Platform
	hardware resources.HardwareInfo
	started  time.Time

	lock      sync.Mutex
	baselines map[baselineKey]resources.RawSample
	history   map[resources.StatType]resources.Stats
}

// New detects the host platform and returns a client ready to poll. It
// fails with PlatformUnavailable when the host cannot be classified and
// ReadFailure when the core count cannot be determined.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		logger:    hclog.NewNullLogger(),
		clock:     libtime.SystemClock(),
		baselines: make(map[baselineKey]resources.RawSample),
		history:   make(map[resources.StatType]resources.Stats),
	}
	for _, opt := range opts {
		opt(c)
	}

	platform, hardware, err := resources.Detect()
	if err != nil {
		return nil, err
	}
	c.platform = platform
	c.hardware = hardware

	if c.reader == nil {
		reader, err := counter.NewReader()
		if err != nil {
			return nil, err
		}
		c.reader = reader
	}

	c.started = c.clock.Now()
	c.logger.Debug("detected platform",
		"platform", c.platform,
		"cores", c.hardware.NumCores,
		"clock_hz", c.hardware.ClockSpeedHz,
	)
	return c, nil
}

// Platform returns the detected operating system family.
func (c *Client) Platform() Platform {
	return c.platform
}

// NumCores returns the number of logical CPU cores.
func (c *Client) NumCores() int {
	return c.hardware.NumCores
}

// ClockSpeed returns the nominal CPU clock speed in Hz, 0 when unknown.
func (c *Client) ClockSpeed() uint64 {
	return c.hardware.ClockSpeedHz
}

// Supports reports whether this platform can account for kind. A poll of an
// unsupported kind fails with Unimplemented.
func (c *Client) Supports(kind StatType) bool {
	return c.reader.Supported().Contains(kind)
}

// Stats polls CPU and memory usage for kind, normalized across all cores.
func (c *Client) Stats(kind StatType) (Stats, error) {
	return c.StatsWithCPUs(kind, c.hardware.NumCores)
}

// StatsWithCPUs polls CPU and memory usage for kind, normalized across the
// given number of cores. The count must be between 1 and NumCores.
func (c *Client) StatsWithCPUs(kind StatType, cores int) (Stats, error) {
	if cores < 1 || cores > c.hardware.NumCores {
		return Stats{}, resources.NewError(
			resources.InvalidCoreCount,
			fmt.Sprintf("stats across %d of %d cores", cores, c.hardware.NumCores),
		)
	}

	cpuTime, memory, err := c.reader.Read(kind)
	if err != nil {
		return Stats{}, err
	}

	current := resources.RawSample{
		CPUTime:     cpuTime,
		WallTime:    c.clock.Now(),
		MemoryBytes: memory,
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	key := baselineKey{kind: kind, cores: cores}
	var previous *resources.RawSample
	if baseline, exists := c.baselines[key]; exists {
		previous = &baseline
	}

	stats := sampling.Compute(previous, current, cores, kind)
	stats.Uptime = current.WallTime.Sub(c.started)

	c.baselines[key] = current
	c.history[kind] = stats

	c.logger.Debug("polled stats",
		"kind", kind,
		"cores", cores,
		"cpu", stats.CPU,
		"memory", stats.Memory,
	)
	return stats, nil
}

// ReadHistory returns the most recently polled stats for kind, false when
// kind has not been polled yet.
func (c *Client) ReadHistory(kind StatType) (Stats, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	stats, exists := c.history[kind]
	return stats, exists
}

// DropHistory forgets all baselines and the last polled stats for kind, and
// returns the dropped stats if there were any. The next poll for kind
// behaves like a first poll. Worth calling when a client outlives
// short-lived threads that polled Thread stats through it.
func (c *Client) DropHistory(kind StatType) (Stats, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	stats, exists := c.history[kind]
	delete(c.history, kind)
	for key := range c.baselines {
		if key.kind == kind {
			delete(c.baselines, key)
		}
	}
	return stats, exists
}
