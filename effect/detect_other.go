//go:build !unix && !windows

package effect

import "runtime"

func Detect() Platform {
	return Platform{Name: runtime.GOOS}
}
