//go:build !linux

package main

import (
	"runtime"

	"golang.design/x/hotkey/mainthread"
)

// Cocoa and Win32 hotkeys must be registered from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	mainthread.Init(run)
}
