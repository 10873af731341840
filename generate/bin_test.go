package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZenLiuCN/fn"
	"github.com/ZenLiuCN/rexshim"
	"github.com/stretchr/testify/require"
)

var std = unit{Package: "main", Import: defaultImport, Signatures: rexshim.Signatures}

var broken = []rexshim.Signature{{Name: "REXBroken", Params: []rexshim.Param{{Name: "x", Kind: rexshim.Kind(9)}}}}

func run(args ...string) (string, error) {
	b := new(bytes.Buffer)
	app := newApp()
	app.Writer = b
	app.ErrWriter = b
	err := app.Run(append([]string{"generate"}, args...))
	return b.String(), err
}

func TestRenderUpToDate(t *testing.T) {
	b := new(bytes.Buffer)
	fn.Panic(render(b, std))
	require.Equal(t, string(fn.Panic1(os.ReadFile("../shared/exports.go"))), b.String(),
		"shared/exports.go is stale, run go generate ./shared")
}

func TestRender(t *testing.T) {
	b := new(bytes.Buffer)
	fn.Panic(render(b, std))
	src := b.String()
	for _, s := range rexshim.Signatures {
		require.Contains(t, src, "//export "+s.Name+"\nfunc "+s.Name+"(")
	}
	require.Contains(t, src, "func REXUninitializeDLL(handle unsafe.Pointer) {\n\trexshim.Functions().UninitializeDLL(uintptr(handle))\n}")
	require.Contains(t, src, "func REXInitializeDLL() int32 {\n\treturn rexshim.Functions().InitializeDLL()\n}")
	require.Equal(t, len(rexshim.Signatures), strings.Count(src, "rexshim.Functions()."))
}

func TestRenderUnsupportedKind(t *testing.T) {
	err := render(new(bytes.Buffer), unit{Package: "main", Import: defaultImport, Signatures: broken})
	require.ErrorContains(t, err, "unsupported kind Kind(9) of REXBroken")
}

func TestPackageAndImportFlags(t *testing.T) {
	out, err := run("-p", "foo", "--import", "example.com/vendor/shim")
	require.NoError(t, err)
	require.Contains(t, out, "\npackage foo\n")
	require.Contains(t, out, "\trexshim \"example.com/vendor/shim\"\n")
	require.NotContains(t, out, defaultImport)

	out, err = run()
	require.NoError(t, err)
	require.Contains(t, out, "\npackage main\n")
	require.Contains(t, out, "\t\""+defaultImport+"\"\n")
}

func TestOutputFlag(t *testing.T) {
	o := filepath.Join(t.TempDir(), "exports.go")
	_, err := run("-o", o, "-p", "shim")
	require.NoError(t, err)
	src := string(fn.Panic1(os.ReadFile(o)))
	require.True(t, strings.HasPrefix(src, "// Code generated by generate. DO NOT EDIT.\n\npackage shim\n"))
}

func TestWriteFailureKeepsFile(t *testing.T) {
	o := filepath.Join(t.TempDir(), "exports.go")
	fn.Panic(os.WriteFile(o, []byte("package main\n"), 0o644))
	err := write(o, unit{Package: "main", Import: defaultImport, Signatures: broken})
	require.Error(t, err)
	require.Equal(t, "package main\n", string(fn.Panic1(os.ReadFile(o))))
}
