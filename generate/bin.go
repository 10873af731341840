package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/ZenLiuCN/rexshim"
	"github.com/urfave/cli/v2"
)

const defaultImport = "github.com/ZenLiuCN/rexshim"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Usage = "trampoline generator"
	app.Name = "Generate"
	app.Description = "render the exported REX trampolines of the shim from the signature catalogue"
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file or stdout when empty"},
		&cli.StringFlag{Name: "package", Aliases: []string{"p"}, Value: "main", Usage: "package name of the generated file"},
		&cli.StringFlag{Name: "import", Value: defaultImport, Usage: "import path of the rexshim package"},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	app.Action = generate
	return app
}

// unit is the data of one generated file.
type unit struct {
	Package    string
	Import     string
	Signatures []rexshim.Signature
}

// Alias reports whether the import needs the rexshim name spelled out.
func (u unit) Alias() bool {
	return path.Base(u.Import) != "rexshim"
}

func generate(ctx *cli.Context) error {
	u := unit{Package: ctx.String("package"), Import: ctx.String("import"), Signatures: rexshim.Signatures}
	o := ctx.String("output")
	if o == "" {
		return render(ctx.App.Writer, u)
	}
	if ctx.Bool("debug") {
		log.Printf("generate %d trampolines of package %s into %s", len(u.Signatures), u.Package, o)
	}
	return write(o, u)
}

var exports = template.Must(template.New("exports").Funcs(template.FuncMap{
	"params": params,
	"args":   args,
}).Parse(`// Code generated by generate. DO NOT EDIT.

package {{.Package}}

import "C"

import (
	"unsafe"

	{{if .Alias}}rexshim {{end}}"{{.Import}}"
)
{{range .Signatures}}
//export {{.Name}}
func {{.Name}}({{params .}}){{if not .Void}} int32{{end}} {
	{{if not .Void}}return {{end}}rexshim.Functions().{{.Field}}({{args .}})
}
{{end}}`))

func params(s rexshim.Signature) string {
	p := make([]string, len(s.Params))
	for i, v := range s.Params {
		switch v.Kind {
		case rexshim.KindPointer:
			p[i] = v.Name + " unsafe.Pointer"
		case rexshim.KindInt32:
			p[i] = v.Name + " int32"
		default:
			panic(fmt.Sprintf("unsupported kind %s of %s", v.Kind, s.Name))
		}
	}
	return strings.Join(p, ", ")
}

func args(s rexshim.Signature) string {
	a := make([]string, len(s.Params))
	for i, v := range s.Params {
		if v.Kind == rexshim.KindPointer {
			a[i] = "uintptr(" + v.Name + ")"
		} else {
			a[i] = v.Name
		}
	}
	return strings.Join(a, ", ")
}

// source renders and formats u.
func source(u unit) ([]byte, error) {
	b := new(bytes.Buffer)
	if err := exports.Execute(b, u); err != nil {
		return nil, err
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func render(w io.Writer, u unit) error {
	src, err := source(u)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// write replaces file only once the whole source is rendered, a failure leaves file untouched.
func write(file string, u unit) error {
	src, err := source(u)
	if err != nil {
		return err
	}
	return os.WriteFile(file, src, 0o644)
}
