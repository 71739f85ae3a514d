//go:build darwin

package effect

import "golang.org/x/sys/unix"

func Detect() Platform {
	v, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return Platform{Name: "macos"}
	}
	return Platform{Name: "macos", Version: v}
}
