//go:build unix && !darwin

package effect

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func Detect() Platform {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Platform{Name: runtime.GOOS}
	}
	return Platform{Name: runtime.GOOS, Version: unix.ByteSliceToString(u.Release[:])}
}
