//go:build !darwin

package tray

func Init() <-chan struct{}      { return make(chan struct{}) }
func updateEnabled(bool)         {}
func updateWarning(bool)         {}
func updateTooltip(string)       {}
func updateCopyLastTitle(string) {}
func addUpdateMenuItem(string)   {}
func refreshKeybinds()           {}
