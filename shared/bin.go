// Command shared is the REX Shared Library interposer, built as a C shared library:
//
//	go build -buildmode=c-shared -o "Rex Shared Library" ./shared
//
// Every export forwards to the original library found by [rexshim.Locate].
package main

//go:generate go run ../generate -o exports.go

func main() {}
