package rexshim

import (
	"errors"
	"fmt"
	"sync"
)

// OriginalName is the file name of the renamed vendor library beside the shim.
const OriginalName = "Rex Shared Library-original"

var (
	// ErrNotFound occurs when the original library is not beside the shim.
	ErrNotFound = errors.New("original library not found")
	// ErrLoad occurs when the dynamic linker refuses to load a library.
	ErrLoad = errors.New("load library")
	// ErrMissingSymbol occurs when a library does not export a required symbol.
	ErrMissingSymbol = errors.New("missing symbol")
	// ErrClosed occurs when using a closed Library.
	ErrClosed = errors.New("library closed")
)

type (
	// Module is anything exporting C symbols by name.
	Module interface {
		Lookup(name string) (uintptr, error) //address of an exported symbol, error wraps ErrMissingSymbol
	}
	// Library is a dynamic library loaded into the process.
	//
	// Library can be shared between goroutines, Lookup is safe for concurrent use.
	Library struct {
		path   string
		handle uintptr
		mu     sync.RWMutex
	}
)

// Open loads the dynamic library at path.
//
// The path is handed to the platform loader as is, a bare file name goes through the platform search order.
func Open(path string) (*Library, error) {
	h, err := loadSharedObject(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrLoad, path, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("%w %s: nil handle", ErrLoad, path)
	}
	return &Library{path: path, handle: h}, nil
}

// Path the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Handle is the raw platform handle, zero after Close.
func (l *Library) Handle() uintptr {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handle
}

func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.handle == 0 {
		return 0, ErrClosed
	}
	p, err := resolveSymbol(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %w", ErrMissingSymbol, name, err)
	}
	if p == 0 {
		return 0, fmt.Errorf("%w %s", ErrMissingSymbol, name)
	}
	return p, nil
}

// Close unloads the library. Symbols resolved from it must not be called afterward.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.handle == 0 {
		return ErrClosed
	}
	err := closeSharedObject(l.handle)
	l.handle = 0
	return err
}

// OpenOriginal locates and opens the original library. It is the Opener of the process-wide Shim.
func OpenOriginal() (Module, error) {
	p, err := Locate()
	if err != nil {
		return nil, err
	}
	return Open(p)
}
