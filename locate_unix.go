//go:build darwin || freebsd || linux

package rexshim

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

// dlInfo mirrors Dl_info of dlfcn.h, identical on darwin, glibc and freebsd.
type dlInfo struct {
	fname *byte
	fbase uintptr
	sname *byte
	saddr uintptr
}

var (
	dladdr     func(addr uintptr, info *dlInfo) int32
	dladdrOnce = sync.OnceValue(func() error {
		p, err := purego.Dlsym(purego.RTLD_DEFAULT, "dladdr")
		if err != nil {
			return fmt.Errorf("resolve dladdr: %w", err)
		}
		purego.RegisterFunc(&dladdr, p)
		return nil
	})
)

// Locate returns the canonical path of the original library beside the binary containing this package.
func Locate() (string, error) {
	self, err := SelfPath()
	if err != nil {
		return "", err
	}
	return Sibling(filepath.Dir(self))
}

// SelfPath asks the dynamic linker which file backs the code of this package.
//
// Inside the shim this is the shim library itself, not the host executable.
func SelfPath() (string, error) {
	if err := dladdrOnce(); err != nil {
		return "", err
	}
	var info dlInfo
	addr := reflect.ValueOf(SelfPath).Pointer()
	if dladdr(addr, &info) == 0 || info.fname == nil {
		return "", fmt.Errorf("dladdr: no object contains %#x", addr)
	}
	return unix.BytePtrToString(info.fname), nil
}

// Sibling returns the canonical path of OriginalName inside dir.
func Sibling(dir string) (string, error) {
	p, err := filepath.EvalSymlinks(filepath.Join(dir, OriginalName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w in %s: %w", ErrNotFound, dir, err)
		}
		return "", err
	}
	return filepath.Abs(p)
}
