// Package counter reads raw CPU-time and memory counters for the calling
// process, the calling thread, and the caller's children.
//
// One Reader implementation exists per supported operating system, selected
// at build time. On an operating system without an implementation the
// package still compiles and every read reports Unimplemented, so calling
// code can be written once and stay portable. Building with
// -tags spork_strict removes that fallback, turning an unsupported target
// into a compile-time failure instead.
package counter

import (
	"time"

	"github.com/azuqua/spork/pkg/resources"
	"github.com/hashicorp/go-set"
)

// Reader reads the cumulative CPU time and resident memory of a target at
// the current instant. Readings are normalized at this boundary: CPU time is
// reported in nanoseconds and memory in bytes regardless of the platform's
// native units, so nothing downstream is platform-aware.
type Reader interface {
	// Read returns the cumulative CPU time and resident memory for kind.
	// A platform lacking an accounting facility for kind returns an
	// Unimplemented error; it never substitutes another target's data.
	Read(kind resources.StatType) (time.Duration, uint64, error)

	// Supported reports the targets this platform can account for.
	Supported() *set.Set[resources.StatType]
}
