// Command capgen generates the capacity family of staticvec.Vector and the matching scenario
// dispatch table.
//
// Usage (from the module root, normally through go:generate):
//
//	go run ./cmd/capgen -caps 1-16,20,24,32 -root capacity_gen.go -dispatch internal/scenario/dispatch_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

const defaultCaps = "1-16,20,24,32,48,64,96,128,256,512,1024"

var rootTmpl = template.Must(template.New("root").Parse(`// Code generated by capgen; DO NOT EDIT.

package staticvec

import "github.com/comalice/staticvec/internal/cell"

// Storage is the set of inline cell blocks a Vector can be instantiated with.
// The block length is the vector's capacity.
type Storage[T any] interface {
	{{range $i, $n := .}}{{if $i}} | {{end}}~[{{$n}}]cell.Cell[T]{{end}}
}
{{range .}}
// Cap{{.}} is inline storage for at most {{.}} element{{if ne . 1}}s{{end}}.
type Cap{{.}}[T any] [{{.}}]cell.Cell[T]
{{end}}
var capacities = [...]int{ {{range $i, $n := .}}{{if $i}}, {{end}}{{$n}}{{end}} }
`))

var dispatchTmpl = template.Must(template.New("dispatch").Parse(`// Code generated by capgen; DO NOT EDIT.

package scenario

import (
	"fmt"

	"github.com/comalice/staticvec"
)

func (r *Runner) dispatch(sc *Scenario) (*Result, error) {
	switch sc.Capacity {
{{range .}}	case {{.}}:
		return run[staticvec.Cap{{.}}[int]](r, sc)
{{end}}	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCapacity, sc.Capacity)
	}
}
`))

func parseCaps(spec string) ([]int, error) {
	seen := map[int]bool{}
	var caps []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi := part, part
		if i := strings.IndexByte(part, '-'); i >= 0 {
			lo, hi = part[:i], part[i+1:]
		}
		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("capacity %q: %w", part, err)
		}
		to, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("capacity %q: %w", part, err)
		}
		if from < 1 || to < from {
			return nil, fmt.Errorf("capacity %q: invalid range", part)
		}
		for n := from; n <= to; n++ {
			if !seen[n] {
				seen[n] = true
				caps = append(caps, n)
			}
		}
	}
	if len(caps) == 0 {
		return nil, fmt.Errorf("no capacities in %q", spec)
	}
	sort.Ints(caps)
	return caps, nil
}

func render(tmpl *template.Template, caps []int, path string) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, caps); err != nil {
		return fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func main() {
	capsFlag := flag.String("caps", defaultCaps, "comma separated capacities or ranges (a-b)")
	rootOut := flag.String("root", "capacity_gen.go", "output path for the capacity family")
	dispatchOut := flag.String("dispatch", "", "output path for the scenario dispatch table (skipped if empty)")
	flag.Parse()

	caps, err := parseCaps(*capsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "capgen: %v\n", err)
		os.Exit(2)
	}

	if err := render(rootTmpl, caps, *rootOut); err != nil {
		fmt.Fprintf(os.Stderr, "capgen: %v\n", err)
		os.Exit(1)
	}
	if *dispatchOut != "" {
		if err := render(dispatchTmpl, caps, *dispatchOut); err != nil {
			fmt.Fprintf(os.Stderr, "capgen: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("capgen: %d capacities (%d..%d)\n", len(caps), caps[0], caps[len(caps)-1])
}
