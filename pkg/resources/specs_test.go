package resources

import (
	"testing"

	"github.com/shoenig/test/must"
)

func Test_Detect(t *testing.T) {
	platform, hw, err := Detect()
	must.NoError(t, err)
	must.NotEq(t, PlatformUnknown, platform)
	must.Positive(t, hw.NumCores)
}

func Test_Detect_stable(t *testing.T) {
	platform1, hw1, err1 := Detect()
	must.NoError(t, err1)

	platform2, hw2, err2 := Detect()
	must.NoError(t, err2)

	must.Eq(t, platform1, platform2)
	must.Eq(t, hw1.NumCores, hw2.NumCores)
}

func Test_classifyGOOS(t *testing.T) {
	cases := []struct {
		goos string
		exp  Platform
	}{
		{"linux", PlatformLinux},
		{"android", PlatformLinux},
		{"darwin", PlatformDarwin},
		{"ios", PlatformDarwin},
		{"freebsd", PlatformBSD},
		{"openbsd", PlatformBSD},
		{"netbsd", PlatformBSD},
		{"dragonfly", PlatformBSD},
		{"windows", PlatformWindows},
		{"plan9", PlatformUnknown},
		{"js", PlatformUnknown},
		{"", PlatformUnknown},
	}
	for _, tc := range cases {
		must.Eq(t, tc.exp, classifyGOOS(tc.goos))
	}
}

func Test_classifyFamily(t *testing.T) {
	cases := []struct {
		os     string
		family string
		exp    Platform
	}{
		{"linux", "debian", PlatformLinux},
		{"darwin", "Standalone Workstation", PlatformDarwin},
		{"freebsd", "", PlatformBSD},
		{"windows", "Server", PlatformWindows},
		{"solaris", "solaris", PlatformUnknown},
		{"", "", PlatformUnknown},
	}
	for _, tc := range cases {
		must.Eq(t, tc.exp, classifyFamily(tc.os, tc.family))
	}
}

func Test_Platform_String(t *testing.T) {
	must.Eq(t, "linux", PlatformLinux.String())
	must.Eq(t, "darwin", PlatformDarwin.String())
	must.Eq(t, "bsd", PlatformBSD.String())
	must.Eq(t, "windows", PlatformWindows.String())
	must.Eq(t, "unknown", PlatformUnknown.String())
}

func Test_StatType_String(t *testing.T) {
	must.Eq(t, "process", Process.String())
	must.Eq(t, "thread", Thread.String())
	must.Eq(t, "children", Children.String())
	must.Eq(t, "invalid", StatType(99).String())
}
