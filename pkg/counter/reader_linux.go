//go:build linux

package counter

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/azuqua/spork/pkg/resources"
	"github.com/hashicorp/go-set"
	"golang.org/x/sys/unix"
)

// NewReader returns the getrusage-backed reader used on Linux. All three
// targets are supported.
func NewReader() (Reader, error) {
	return &linuxReader{
		pageSize: uint64(os.Getpagesize()),
	}, nil
}

type linuxReader struct {
	pageSize uint64
}

func (r *linuxReader) Supported() *set.Set[resources.StatType] {
	return set.From([]resources.StatType{
		resources.Process,
		resources.Thread,
		resources.Children,
	})
}

func (r *linuxReader) Read(kind resources.StatType) (time.Duration, uint64, error) {
	var who int
	switch kind {
	case resources.Process:
		who = unix.RUSAGE_SELF
	case resources.Thread:
		who = unix.RUSAGE_THREAD
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

	// The kernel accounts resident memory per process, not per thread.
	// Process polls report the live RSS out of /proc; thread and children
	// polls fall back to the peak RSS from getrusage, which Linux reports
	// in kilobytes.
	if kind == resources.Process {
		if rss, err := r.residentBytes(); err == nil {
			return cpu, rss, nil
		}
	}
	return cpu, uint64(ru.Maxrss) * 1024, nil
}

// residentBytes reads the resident page count of the calling process from
// /proc/self/statm.
func (r *linuxReader) residentBytes() (uint64, error) {
	b, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(string(b))
	if len(fields) < 2 {
		return 0, errors.New("malformed statm content")
	}

	pages, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, err
	}
	return pages * r.pageSize, nil
}
