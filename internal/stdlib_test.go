package stdlib_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// The container packages may import the standard library, golang.org/x/exp and each other.
// Logging, config and CLI libraries belong to the tooling around them.
var allowedPrefixes = []string{
	"golang.org/x/exp/",
	"github.com/comalice/staticvec/internal/cell",
}

func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}

func TestCoreImportsStdlibOnly(t *testing.T) {
	for _, dir := range []string{"..", "cell"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatalf("glob %s: %v", dir, err)
		}
		if len(files) == 0 {
			t.Fatalf("no Go files in %s", dir)
		}

		fset := token.NewFileSet()
		for _, fn := range files {
			if strings.HasSuffix(fn, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(fset, fn, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", fn, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if isStdlib(path) || hasAllowedPrefix(path) {
					continue
				}
				t.Errorf("%s imports %s", fn, path)
			}
		}
	}
}

func hasAllowedPrefix(path string) bool {
	for _, p := range allowedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
