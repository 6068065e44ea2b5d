//go:build !linux && !darwin && !windows && !spork_strict

package counter

import (
	"time"

	"github.com/azuqua/spork/pkg/resources"
	"github.com/hashicorp/go-set"
)

// NewReader returns the fallback reader used on platforms without a counter
// implementation. Every read reports Unimplemented.
func NewReader() (Reader, error) {
	return stubReader{}, nil
}

type stubReader struct{}

func (stubReader) Supported() *set.Set[resources.StatType] {
	return set.New[resources.StatType](0)
}

func (stubReader) Read(kind resources.StatType) (time.Duration, uint64, error) {
	return 0, 0, resources.NewError(resources.Unimplemented, "read "+kind.String())
}
