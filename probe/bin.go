package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZenLiuCN/fn"
	"github.com/ZenLiuCN/rexshim"
	"github.com/davecgh/go-spew/spew"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Usage = "REX shim deployment probe"
	app.Name = "Probe"
	app.Description = "inspect where the shim looks for the original library and whether it exports the REX API"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}},
	}
	app.Before = func(ctx *cli.Context) error {
		lv := level.AllowWarn()
		if ctx.Bool("debug") {
			lv = level.AllowDebug()
		}
		rexshim.SetLogger(level.NewFilter(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr)), lv))
		return nil
	}
	app.Commands = []*cli.Command{
		{Name: "locate",
			Action: locate,
			Usage:  "display the original library path the shim resolves beside a directory, default the probe directory",
			Args:   true,
		},
		{Name: "check",
			Action: check,
			Usage:  "load libraries and resolve every REX export",
			Args:   true,
		},
		{Name: "symbols",
			Action: symbols,
			Usage:  "display the forwarded REX exports",
		},
	}
	return app
}

func locate(ctx *cli.Context) (err error) {
	if runtime.GOOS == "windows" {
		var p string
		if p, err = rexshim.Locate(); err != nil {
			return
		}
		fmt.Fprintln(ctx.App.Writer, p)
		return
	}
	dir := ctx.Args().First()
	if dir == "" {
		var self string
		if self, err = os.Executable(); err != nil {
			return
		}
		dir = filepath.Dir(self)
	}
	var p string
	if p, err = rexshim.Sibling(dir); err != nil {
		return
	}
	fmt.Fprintln(ctx.App.Writer, p)
	return
}

func check(ctx *cli.Context) error {
	files := ctx.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("missing library list")
	}
	var errs *multierror.Error
	for _, f := range files {
		if err := checkOne(ctx.App.Writer, f, ctx.Bool("debug")); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", f, err))
		}
	}
	return errs.ErrorOrNil()
}

func checkOne(w io.Writer, file string, debug bool) error {
	lib, err := rexshim.Open(file)
	if err != nil {
		return err
	}
	defer fn.IgnoreClose(lib)
	fmt.Fprintf(w, "%s\n", lib.Path())
	t, err := rexshim.NewShim(func() (rexshim.Module, error) { return lib, nil }).Init()
	if err != nil {
		for _, name := range rexshim.Names() {
			if p, e := lib.Lookup(name); e != nil {
				fmt.Fprintf(w, "\t%-24s missing\n", name)
			} else {
				fmt.Fprintf(w, "\t%-24s %#x\n", name, p)
			}
		}
		return err
	}
	for _, name := range rexshim.Names() {
		fmt.Fprintf(w, "\t%-24s %#x\n", name, t.Address(name))
	}
	if debug {
		sp := spew.NewDefaultConfig()
		sp.SortKeys = true
		sp.Fdump(w, t.Addresses())
	}
	return nil
}

func symbols(ctx *cli.Context) error {
	for _, s := range rexshim.Signatures {
		fmt.Fprintf(ctx.App.Writer, "%s;\n", s.C())
	}
	return nil
}
