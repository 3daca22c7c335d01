// Package main provides the CLI entrypoint for maskgen.
//
// maskgen is a Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find the record types a
//     YAML manifest pins for mask generation
//   - Plans one mask shape per record type, pulling nested record
//     dependencies in automatically
//   - Generates the mask shape, parser, and applier functions each
//     record needs for masked merging
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/titanous/fieldmask/internal/analyze"
	"github.com/titanous/fieldmask/internal/gen"
	"github.com/titanous/fieldmask/internal/manifest"
	"github.com/titanous/fieldmask/internal/plan"
)

const usage = `maskgen generates field-mask shapes and appliers for Go record types.

Usage:
  maskgen gen   [-manifest maskgen.yaml] [-debug]   generate mask files
  maskgen check [-manifest maskgen.yaml] [-debug]   plan only, report diagnostics
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd := os.Args[1]

	flags := flag.NewFlagSet(cmd, flag.ExitOnError)
	manifestPath := flags.String("manifest", "maskgen.yaml", "path to the generation manifest")
	debug := flags.Bool("debug", false, "dump the resolved plan")

	switch cmd {
	case "gen", "check":
		_ = flags.Parse(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(cmd, *manifestPath, *debug); err != nil {
		fmt.Fprintln(os.Stderr, "maskgen:", err)
		os.Exit(1)
	}
}

func run(cmd, manifestPath string, debug bool) error {
	m, err := manifest.LoadFile(manifestPath)
	if err != nil {
		return err
	}

	if len(m.Packages) == 0 {
		return fmt.Errorf("manifest %s lists no packages", manifestPath)
	}

	graph, err := analyze.NewAnalyzer().LoadPackages(m.Packages...)
	if err != nil {
		return err
	}

	p, err := plan.NewResolver(graph, m).Resolve()
	if err != nil {
		return err
	}

	if debug {
		fmt.Fprint(os.Stderr, spew.Sdump(p.Types))
	}

	for _, w := range p.Diagnostics.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w.String())
	}

	if p.Diagnostics.HasErrors() {
		for _, e := range p.Diagnostics.Errors {
			fmt.Fprintln(os.Stderr, "error:", e.String())
		}

		return fmt.Errorf("%d error(s) in %s", len(p.Diagnostics.Errors), manifestPath)
	}

	if cmd == "check" {
		fmt.Printf("ok: %d mask type(s) planned from %s\n", len(p.Types), manifestPath)
		return nil
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = m.Output.Dir

	files, err := gen.NewGenerator(cfg).Generate(p)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		fmt.Println("wrote", filepath.Join(f.Dir, f.Filename))
	}

	return nil
}
