/*
Package rexshim is an interposer for the REX Shared Library based on [purego].

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. The shim exports the same 14 C functions as the REX Shared Library, see package shared.
 2. On first call the real library, renamed as [OriginalName], is located and loaded once per process.
 3. All 14 symbols are resolved at once into a [Table] of typed Go functions, or the process terminates.
 4. Every exported function forwards its arguments to the resolved symbol and returns the result untouched.

# Deployment

Build the shim as a C shared library:

	go build -buildmode=c-shared -o "Rex Shared Library" ./shared

Rename the vendor library to [OriginalName] and place it beside the shim.
On darwin and linux the shim finds its sibling through the path of its own binary, so the host
working directory does not matter. On windows the sibling is loaded by name through the standard
DLL search order.

# Notes

 1. Pointers are relayed as raw addresses, the shim never reads, copies or keeps them.
 2. Info buffers are opaque sized byte ranges, their layout belongs to the vendor SDK.
 3. The original library is never unloaded.

# Tools

The probe tool checks a deployment:

	go install github.com/ZenLiuCN/rexshim/probe@latest
	probe check "Rex Shared Library-original"

The trampolines inside package shared are generated by the generate tool from [Signatures].

[purego]: https://github.com/ebitengine/purego
*/
package rexshim
