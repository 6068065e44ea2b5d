//go:build darwin

package counter

import (
	"time"

	"github.com/azuqua/spork/pkg/resources"
	"github.com/hashicorp/go-set"
	"golang.org/x/sys/unix"
)

// NewReader returns the getrusage-backed reader used on macOS. Thread-level
// accounting needs Mach task_info calls that cgo-free Go cannot issue, so
// Thread polls report Unimplemented.
func NewReader() (Reader, error) {
	return &darwinReader{}, nil
}

type darwinReader struct{}

func (r *darwinReader) Supported() *set.Set[resources.StatType] {
	return set.From([]resources.StatType{
		resources.Process,
		resources.Children,
	})
}

func (r *darwinReader) Read(kind resources.StatType) (time.Duration, uint64, error) {
	var who int
	switch kind {
	case resources.Process:
		who = unix.RUSAGE_SELF
	case resources.Children:
		who = unix.RUSAGE_CHILDREN
	default:
		return 0, 0, resources.NewError(resources.Unimplemented, "read "+kind.String())
	}

	var ru unix.Rusage
	if err := unix.Getrusage(who, &ru); err != nil {
		return 0, 0, resources.WrapError(resources.ReadFailure, "getrusage "+kind.String(), err)
	}

	cpu := timevalDuration(ru.Utime) + timevalDuration(ru.Stime)

	// ru_maxrss is bytes on darwin, unlike the BSDs it descends from.
	return cpu, uint64(ru.Maxrss), nil
}
