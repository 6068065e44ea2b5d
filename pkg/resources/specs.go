package resources

import (
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
)

// Detect classifies the host platform and captures its hardware
// characteristics. Called once per client.
//
// Core count is required: if neither the OS nor the runtime can report one
// the detection fails with ReadFailure. Clock speed is best effort and
// degrades to 0 when unavailable.
func Detect() (Platform, HardwareInfo, error) {
	platform, err := detectPlatform()
	if err != nil {
		return PlatformUnknown, HardwareInfo{}, err
	}

	cores, err := cpu.Counts(true)
	if err != nil || cores < 1 {
		cores = runtime.NumCPU()
	}
	if cores < 1 {
		return platform, HardwareInfo{}, NewError(ReadFailure, "detect core count")
	}

	hw := HardwareInfo{
		NumCores:     cores,
		ClockSpeedHz: clockSpeed(),
	}
	return platform, hw, nil
}

func detectPlatform() (Platform, error) {
	if platform := classifyGOOS(runtime.GOOS); platform != PlatformUnknown {
		return platform, nil
	}

	// GOOS covers every first-class port; asking the OS directly only
	// matters for exotic builds.
	info, err := host.Info()
	if err != nil {
		return PlatformUnknown, WrapError(PlatformUnavailable, "detect platform", err)
	}
	return classifyFamily(info.OS, info.PlatformFamily), nil
}

func classifyGOOS(goos string) Platform {
	switch goos {
	case "linux", "android":
		return PlatformLinux
	case "darwin", "ios":
		return PlatformDarwin
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return PlatformBSD
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

func classifyFamily(os, family string) Platform {
	for _, name := range []string{os, family} {
		name = strings.ToLower(name)
		switch {
		case strings.Contains(name, "linux"):
			return PlatformLinux
		case strings.Contains(name, "darwin"):
			return PlatformDarwin
		case strings.Contains(name, "bsd"):
			return PlatformBSD
		case strings.Contains(name, "windows"):
			return PlatformWindows
		}
	}
	return PlatformUnknown
}

// clockSpeed reads the nominal CPU clock speed in Hz, taking the fastest
// core on heterogeneous machines. 0 when the speed cannot be determined.
func clockSpeed() uint64 {
	infos, err := cpu.Info()
	if err != nil {
		return 0
	}

	mhz := 0.0
	for _, info := range infos {
		if info.Mhz > mhz {
			mhz = info.Mhz
		}
	}
	return uint64(mhz * 1_000_000)
}
