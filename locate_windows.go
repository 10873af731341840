//go:build windows

package rexshim

// Locate returns OriginalName as is, the DLL search order starting at the host directory finds it.
func Locate() (string, error) {
	return OriginalName, nil
}
