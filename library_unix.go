//go:build darwin || freebsd || linux

package rexshim

import "github.com/ebitengine/purego"

// loadSharedObject opens file with RTLD_LOCAL: the original library exports the same REX names as
// the shim, a global open would let them interpose on the shim's own exports for later lookups.
// RTLD_LAZY defers binding of the vendor library's own imports until they are called.
func loadSharedObject(file string) (uintptr, error) {
	return purego.Dlopen(file, purego.RTLD_LAZY|purego.RTLD_LOCAL)
}

// resolveSymbol searches only the library behind handle and its dependencies, never the shim.
func resolveSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeSharedObject(handle uintptr) error {
	return purego.Dlclose(handle)
}
