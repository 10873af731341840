package rexshim

import (
	"fmt"

	"github.com/ebitengine/purego"
	"github.com/hashicorp/go-multierror"
)

type (
	// Kind of C argument, every argument of the REX API is either an untyped pointer or a 32-bit signed integer.
	Kind int
	// Param is one C argument.
	Param struct {
		Name string
		Kind Kind
	}
	// Signature of one exported C function. Functions return int32 unless Void.
	Signature struct {
		Name   string
		Params []Param
		Void   bool
	}
)

const (
	KindPointer Kind = iota //void*
	KindInt32               //int32_t
)

func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "void*"
	case KindInt32:
		return "int32_t"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is the name of the Table field bound to this signature.
func (s Signature) Field() string {
	return s.Name[len(prefix):]
}

// C renders the signature as a C prototype.
func (s Signature) C() string {
	r := "int32_t"
	if s.Void {
		r = "void"
	}
	args := "void"
	for i, p := range s.Params {
		if i == 0 {
			args = ""
		} else {
			args += ", "
		}
		args += p.Kind.String() + " " + p.Name
	}
	return fmt.Sprintf("%s %s(%s)", r, s.Name, args)
}

const prefix = "REX"

func ptr(name string) Param { return Param{Name: name, Kind: KindPointer} }
func i32(name string) Param { return Param{Name: name, Kind: KindInt32} }

// Signatures of the original library exports, checked by hand against the vendor SDK headers.
var Signatures = []Signature{
	{Name: "REXCreate", Params: []Param{ptr("handle"), ptr("buffer"), i32("size"), ptr("callbackFn"), ptr("userData")}},
	{Name: "REXDelete", Params: []Param{ptr("handle")}},
	{Name: "REXGetCreatorInfo", Params: []Param{ptr("handle"), i32("creatorInfoSize"), ptr("info")}},
	{Name: "REXGetInfo", Params: []Param{ptr("handle"), i32("infoSize"), ptr("info")}},
	{Name: "REXGetInfoFromBuffer", Params: []Param{i32("bufferSize"), ptr("buffer"), i32("infoSize"), ptr("info")}},
	{Name: "REXGetSliceInfo", Params: []Param{ptr("handle"), i32("sliceIndex"), i32("sliceInfoSize"), ptr("info")}},
	{Name: "REXInitializeDLL"},
	{Name: "REXRenderPreviewBatch", Params: []Param{ptr("handle"), i32("framesToRender"), ptr("outputBuffers")}},
	{Name: "REXRenderSlice", Params: []Param{ptr("handle"), i32("index"), i32("frameLength"), ptr("output")}},
	{Name: "REXSetOutputSampleRate", Params: []Param{ptr("handle"), i32("sampleRate")}},
	{Name: "REXSetPreviewTempo", Params: []Param{ptr("handle"), i32("tempo")}},
	{Name: "REXStartPreview", Params: []Param{ptr("handle")}},
	{Name: "REXStopPreview", Params: []Param{ptr("handle")}},
	{Name: "REXUninitializeDLL", Params: []Param{ptr("handle")}, Void: true},
}

// Names of the original library exports in declaration order.
func Names() []string {
	n := make([]string, len(Signatures))
	for i, s := range Signatures {
		n[i] = s.Name
	}
	return n
}

// Table holds the resolved exports of the original library as Go functions.
//
// A Table is immutable once returned by Resolve and safe for concurrent use.
type Table struct {
	Create              func(handle, buffer uintptr, size int32, callbackFn, userData uintptr) int32
	Delete              func(handle uintptr) int32
	GetCreatorInfo      func(handle uintptr, creatorInfoSize int32, info uintptr) int32
	GetInfo             func(handle uintptr, infoSize int32, info uintptr) int32
	GetInfoFromBuffer   func(bufferSize int32, buffer uintptr, infoSize int32, info uintptr) int32
	GetSliceInfo        func(handle uintptr, sliceIndex, sliceInfoSize int32, info uintptr) int32
	InitializeDLL       func() int32
	RenderPreviewBatch  func(handle uintptr, framesToRender int32, outputBuffers uintptr) int32
	RenderSlice         func(handle uintptr, index, frameLength int32, output uintptr) int32
	SetOutputSampleRate func(handle uintptr, sampleRate int32) int32
	SetPreviewTempo     func(handle uintptr, tempo int32) int32
	StartPreview        func(handle uintptr) int32
	StopPreview         func(handle uintptr) int32
	UninitializeDLL     func(handle uintptr)
	addrs               map[string]uintptr
}

// fields maps each export to the Table field bound to it.
func (t *Table) fields() map[string]any {
	return map[string]any{
		"REXCreate":              &t.Create,
		"REXDelete":              &t.Delete,
		"REXGetCreatorInfo":      &t.GetCreatorInfo,
		"REXGetInfo":             &t.GetInfo,
		"REXGetInfoFromBuffer":   &t.GetInfoFromBuffer,
		"REXGetSliceInfo":        &t.GetSliceInfo,
		"REXInitializeDLL":       &t.InitializeDLL,
		"REXRenderPreviewBatch":  &t.RenderPreviewBatch,
		"REXRenderSlice":         &t.RenderSlice,
		"REXSetOutputSampleRate": &t.SetOutputSampleRate,
		"REXSetPreviewTempo":     &t.SetPreviewTempo,
		"REXStartPreview":        &t.StartPreview,
		"REXStopPreview":         &t.StopPreview,
		"REXUninitializeDLL":     &t.UninitializeDLL,
	}
}

// Address of a resolved export, zero for unknown names.
func (t *Table) Address(name string) uintptr {
	return t.addrs[name]
}

// Addresses of all resolved exports by name. The result is a copy.
func (t *Table) Addresses() map[string]uintptr {
	m := make(map[string]uintptr, len(t.addrs))
	for k, v := range t.addrs {
		m[k] = v
	}
	return m
}

// Resolve looks up every export of the original library in m.
//
// Either every export resolves and the returned Table is fully bound,
// or the error lists every missing export and no Table is returned.
func Resolve(m Module) (*Table, error) {
	addrs := make(map[string]uintptr, len(Signatures))
	var errs *multierror.Error
	for _, s := range Signatures {
		p, err := m.Lookup(s.Name)
		if err == nil && p == 0 {
			err = fmt.Errorf("%w %s", ErrMissingSymbol, s.Name)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		addrs[s.Name] = p
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	t := &Table{addrs: addrs}
	for name, f := range t.fields() {
		purego.RegisterFunc(f, addrs[name])
	}
	return t, nil
}
