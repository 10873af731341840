//go:build windows

package rexshim

import "golang.org/x/sys/windows"

func loadSharedObject(file string) (uintptr, error) {
	handle, err := windows.LoadLibrary(file)
	return uintptr(handle), err
}

func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeSharedObject(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}
