package filter

import (
	"fmt"
	"path"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// File is the environment a filter expression is evaluated against. Fields
// are derived from a filename as returned by the files listing, which may
// contain "/" separated directories.
type File struct {
	Name  string `expr:"name"`
	Base  string `expr:"base"`
	Dir   string `expr:"dir"`
	Ext   string `expr:"ext"`
	Depth int    `expr:"depth"`
}

// NewFile splits a filename into the fields exposed to expressions.
func NewFile(name string) File {
	dir := path.Dir(name)
	if dir == "." {
		dir = ""
	}
	return File{
		Name:  name,
		Base:  path.Base(name),
		Dir:   dir,
		Ext:   strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")),
		Depth: strings.Count(name, "/"),
	}
}

// Filter is a compiled filename filter
type Filter struct {
	program *vm.Program
	expr    string
}

var compiled = newLRUCache(64)

// Compile compiles expression, reusing a previously compiled program when
// the same expression was seen before.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if f, ok := compiled.Get(expression); ok {
		return f, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(File{}),
		expr.AsBool(),
		expr.Function("hasExt", hasExt, new(func(string, ...string) bool)),
		expr.Function("glob", glob, new(func(string, string) bool)),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}

	f := &Filter{program: program, expr: expression}
	compiled.Put(expression, f)
	return f, nil
}

// String returns the source expression
func (f *Filter) String() string {
	return f.expr
}

// Match reports whether filename satisfies the filter
func (f *Filter) Match(filename string) (bool, error) {
	out, err := expr.Run(f.program, NewFile(filename))
	if err != nil {
		return false, &EvaluationError{Expression: f.expr, Filename: filename, Reason: err.Error(), Err: err}
	}
	return out.(bool), nil
}

// Apply returns the filenames that satisfy the filter, in their original order
func (f *Filter) Apply(filenames []string) ([]string, error) {
	matched := make([]string, 0, len(filenames))
	for _, name := range filenames {
		ok, err := f.Match(name)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, name)
		}
	}
	return matched, nil
}

// hasExt(name, "tif", "jp2") matches case-insensitively on the extension
func hasExt(params ...any) (any, error) {
	name, ok := params[0].(string)
	if !ok {
		return nil, fmt.Errorf("hasExt: expected string, got %T", params[0])
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	for _, p := range params[1:] {
		want, ok := p.(string)
		if !ok {
			return nil, fmt.Errorf("hasExt: expected string, got %T", p)
		}
		if strings.EqualFold(strings.TrimPrefix(want, "."), ext) {
			return true, nil
		}
	}
	return false, nil
}

// glob(name, "images/*.tif") uses path.Match semantics
func glob(params ...any) (any, error) {
	name, _ := params[0].(string)
	pattern, _ := params[1].(string)
	ok, err := path.Match(pattern, name)
	if err != nil {
		return nil, fmt.Errorf("glob: %w", err)
	}
	return ok, nil
}
