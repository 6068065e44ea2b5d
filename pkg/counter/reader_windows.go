//go:build windows

package counter

import (
	"errors"
	"os"
	"time"

	"github.com/azuqua/spork/pkg/resources"
	"github.com/hashicorp/go-set"
	"github.com/shirou/gopsutil/v4/process"
)

// NewReader returns the reader used on Windows, backed by the win32 process
// APIs via gopsutil. There is no per-thread accounting surface there, so
// Thread polls report Unimplemented.
func NewReader() (Reader, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, resources.WrapError(resources.ReadFailure, "open process", err)
	}
	return &windowsReader{proc: proc}, nil
}

type windowsReader struct {
	proc *process.Process
}

func (r *windowsReader) Supported() *set.Set[resources.StatType] {
	return set.From([]resources.StatType{
		resources.Process,
		resources.Children,
	})
}

func (r *windowsReader) Read(kind resources.StatType) (time.Duration, uint64, error) {
	switch kind {
	case resources.Process:
		return readProcess(r.proc)
	case resources.Children:
		return r.readChildren()
	default:
		return 0, 0, resources.NewError(resources.Unimplemented, "read "+kind.String())
	}
}

func readProcess(p *process.Process) (time.Duration, uint64, error) {
	times, err := p.Times()
	if err != nil {
		return 0, 0, resources.WrapError(resources.ReadFailure, "process times", err)
	}

	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, resources.WrapError(resources.ReadFailure, "process memory", err)
	}

	cpu := secondsDuration(times.User + times.System)
	return cpu, mem.RSS, nil
}

func (r *windowsReader) readChildren() (time.Duration, uint64, error) {
	children, err := r.proc.Children()
	if err != nil {
		// nothing spawned yet is a zero reading, not a failure
		if errors.Is(err, process.ErrorNoChildren) {
			return 0, 0, nil
		}
		return 0, 0, resources.WrapError(resources.ReadFailure, "list children", err)
	}

	var cpu time.Duration
	var mem uint64
	for _, child := range children {
		c, m, err := readProcess(child)
		if err != nil {
			// a child may exit between listing and reading
			continue
		}
		cpu += c
		mem += m
	}
	return cpu, mem, nil
}

func secondsDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
