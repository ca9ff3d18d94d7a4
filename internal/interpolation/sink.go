package interpolation

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis/passes/printf"

	"github.com/mpyw/placeholderlint/internal/resolve"
	"github.com/mpyw/placeholderlint/internal/typeutil"
)

// Formatters classifies printf-like functions, wrappers included.
// *printf.Result satisfies it.
type Formatters interface {
	Kind(fn *types.Func) printf.Kind
}

// Templates recognizes functions that parse template text.
type Templates interface {
	IsTemplateFunc(fn *types.Func) bool
	TemplateDelims() (left, right string)
}

// Sink is a call argument whose text the callee interpolates.
type Sink struct {
	Arg     ast.Expr
	Dialect Dialect
}

// Sinks returns the interpolated arguments of call.
//
// A printf-like callee interpolates the string parameter right before its
// ...any parameter. A template function interpolates its first argument.
// Either classifier may be nil.
func Sinks(r *resolve.Resolver, fmts Formatters, tmpl Templates, call *ast.CallExpr) []Sink {
	fn := r.CalleeOf(call)
	if fn == nil {
		return nil
	}

	shift := 0
	if r.IsMethodExpr(call) {
		shift = 1
	}

	var sinks []Sink

	if fmts != nil && isFormatKind(fmts.Kind(fn)) {
		if idx := formatParam(fn); idx >= 0 {
			if arg := argAt(call, idx+shift); arg != nil {
				sinks = append(sinks, Sink{Arg: arg, Dialect: Format})
			}
		}
	}

	if tmpl != nil && tmpl.IsTemplateFunc(fn) {
		if arg := argAt(call, shift); arg != nil {
			sinks = append(sinks, Sink{Arg: arg, Dialect: Template(tmpl.TemplateDelims())})
		}
	}

	return sinks
}

func isFormatKind(k printf.Kind) bool {
	return k == printf.KindPrintf || k == printf.KindErrorf
}

// formatParam returns the index of the string parameter that precedes
// fn's final ...any parameter, or -1.
func formatParam(fn *types.Func) int {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || !sig.Variadic() {
		return -1
	}

	params := sig.Params()
	n := params.Len()
	if n < 2 {
		return -1
	}

	last, ok := params.At(n - 1).Type().(*types.Slice)
	if !ok || !typeutil.IsEmptyInterface(last.Elem()) {
		return -1
	}

	if !typeutil.IsString(params.At(n - 2).Type()) {
		return -1
	}

	return n - 2
}

func argAt(call *ast.CallExpr, idx int) ast.Expr {
	if idx < 0 || idx >= len(call.Args) {
		return nil
	}
	return call.Args[idx]
}

// Literals returns the string literals that make up expr, left to right,
// looking through parentheses and "+" concatenation. Named constants and
// variables are data, not template syntax, and are not followed.
func Literals(expr ast.Expr) []*ast.BasicLit {
	var lits []*ast.BasicLit

	var walk func(ast.Expr)
	walk = func(e ast.Expr) {
		switch e := ast.Unparen(e).(type) {
		case *ast.BasicLit:
			if e.Kind == token.STRING {
				lits = append(lits, e)
			}
		case *ast.BinaryExpr:
			if e.Op == token.ADD {
				walk(e.X)
				walk(e.Y)
			}
		}
	}
	walk(expr)

	return lits
}
