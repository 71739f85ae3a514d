//go:build windows

package effect

import "golang.org/x/sys/windows"

func Detect() Platform {
	v := windows.RtlGetVersion()
	return windowsPlatform(v.MajorVersion, v.BuildNumber)
}
