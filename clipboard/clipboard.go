// Package clipboard wraps the system clipboard for the "copy last action"
// commands.
package clipboard

import cb "github.com/atotto/clipboard"

func Read() (string, error) {
	return cb.ReadAll()
}

func Copy(text string) error {
	return cb.WriteAll(text)
}

// Unsupported reports whether no clipboard utility is available (on Linux
// this means none of xclip, xsel or wl-clipboard is installed).
func Unsupported() bool {
	return cb.Unsupported
}
