package rexshim

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeModule map[string]uintptr

func (f fakeModule) Lookup(name string) (uintptr, error) {
	if p, ok := f[name]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w %s", ErrMissingSymbol, name)
}

// dummyModule exports every name except the given ones at fake addresses which are never called.
func dummyModule(except ...string) fakeModule {
	m := make(fakeModule)
	for i, n := range Names() {
		m[n] = uintptr(0x1000 + i*0x10)
	}
	for _, n := range except {
		delete(m, n)
	}
	return m
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 14)
	seen := make(map[string]bool)
	for _, n := range names {
		require.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
	require.Len(t, new(Table).fields(), len(names))
	for n := range new(Table).fields() {
		require.True(t, seen[n], "unexpected field for %s", n)
	}
}

func TestSignaturesMatchTable(t *testing.T) {
	typ := reflect.TypeOf(Table{})
	for _, s := range Signatures {
		f, ok := typ.FieldByName(s.Field())
		require.True(t, ok, "no field for %s", s.Name)
		ft := f.Type
		require.Equal(t, reflect.Func, ft.Kind())
		require.Equal(t, len(s.Params), ft.NumIn(), s.Name)
		for i, p := range s.Params {
			switch p.Kind {
			case KindPointer:
				require.Equal(t, reflect.Uintptr, ft.In(i).Kind(), "%s %s", s.Name, p.Name)
			case KindInt32:
				require.Equal(t, reflect.Int32, ft.In(i).Kind(), "%s %s", s.Name, p.Name)
			}
		}
		if s.Void {
			require.Equal(t, 0, ft.NumOut(), s.Name)
		} else {
			require.Equal(t, 1, ft.NumOut(), s.Name)
			require.Equal(t, reflect.Int32, ft.Out(0).Kind(), s.Name)
		}
	}
}

func TestSignatureC(t *testing.T) {
	c := make(map[string]string)
	for _, s := range Signatures {
		c[s.Name] = s.C()
	}
	require.Equal(t, "int32_t REXInitializeDLL(void)", c["REXInitializeDLL"])
	require.Equal(t, "void REXUninitializeDLL(void* handle)", c["REXUninitializeDLL"])
	require.Equal(t, "int32_t REXCreate(void* handle, void* buffer, int32_t size, void* callbackFn, void* userData)", c["REXCreate"])
}

func TestResolve(t *testing.T) {
	m := dummyModule()
	tab, err := Resolve(m)
	require.NoError(t, err)
	v := reflect.ValueOf(tab).Elem()
	for _, s := range Signatures {
		require.False(t, v.FieldByName(s.Field()).IsNil(), "%s not bound", s.Name)
		require.Equal(t, m[s.Name], tab.Address(s.Name))
	}
	require.Equal(t, map[string]uintptr(m), tab.Addresses())
	require.Zero(t, tab.Address("REXUnknown"))
}

func TestResolveMissing(t *testing.T) {
	tab, err := Resolve(dummyModule("REXRenderSlice", "REXStopPreview"))
	require.Nil(t, tab)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingSymbol))
	require.Contains(t, err.Error(), "REXRenderSlice")
	require.Contains(t, err.Error(), "REXStopPreview")
	require.NotContains(t, err.Error(), "REXCreate")
}

func TestResolveZeroAddress(t *testing.T) {
	m := dummyModule()
	m["REXDelete"] = 0
	tab, err := Resolve(m)
	require.Nil(t, tab)
	require.ErrorIs(t, err, ErrMissingSymbol)
}
