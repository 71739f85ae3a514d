//go:build !gui

package main

func initGUI() {
	panic("keyhook: built without GUI support (rebuild with -tags gui)")
}

func guiSetEnabled(bool) {}
