//go:build !linux && !darwin && !windows

package shortcut

import (
	"errors"

	"keyhook/keys"
)

func New(combo keys.Set) (Shortcut, error) {
	return nil, errors.New("system shortcuts are not supported on this platform")
}
