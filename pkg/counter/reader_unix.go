//go:build linux || darwin

package counter

import (
	"time"

	"golang.org/x/sys/unix"
)

func timevalDuration(tv unix.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
