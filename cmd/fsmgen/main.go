// fsmgen turns a declarative chart document into typed Go state and event
// declarations, or into DOT/Mermaid diagrams.
//
// Usage:
//
//	fsmgen -chart door.yaml -pkg door -out door_fsm.go
//	fsmgen -chart door.yaml -emit dot
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Zoreno/fsm/chart"
	"github.com/Zoreno/fsm/internal/gen"
)

func main() {
	var (
		chartPath = flag.String("chart", "", "path to the chart YAML document (required)")
		pkg       = flag.String("pkg", "", "package name for generated Go source (required for -emit go)")
		out       = flag.String("out", "", "output file (default stdout)")
		emit      = flag.String("emit", "go", "output kind: go, dot, or mermaid")
	)
	flag.Parse()

	if *chartPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	c, err := chart.Load(*chartPath)
	if err != nil {
		fatalf("load chart: %v", err)
	}

	var output []byte
	switch *emit {
	case "go":
		if *pkg == "" {
			fatalf("-pkg is required for -emit go")
		}
		output, err = gen.Generate(c, *pkg)
		if err != nil {
			fatalf("generate: %v", err)
		}
	case "dot":
		output = []byte(c.DOT(""))
	case "mermaid":
		output = []byte(c.Mermaid())
	default:
		fatalf("unknown -emit kind %q", *emit)
	}

	if *out == "" {
		os.Stdout.Write(output)
		return
	}
	if err := os.WriteFile(*out, output, 0o644); err != nil {
		fatalf("write %s: %v", *out, err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fsmgen: "+format+"\n", args...)
	os.Exit(1)
}
