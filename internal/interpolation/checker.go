package interpolation

import (
	"go/ast"
	"go/token"

	"github.com/mpyw/placeholderlint/internal/diag"
	"github.com/mpyw/placeholderlint/internal/resolve"
	"github.com/mpyw/placeholderlint/internal/syntax"
)

// ID is the diagnostic ID of the interpolation rule.
const ID = "FL0014"

// Rule is the name of the interpolation rule in flags and directives.
const Rule = "interpolation"

// Descriptor is the diagnostic of the interpolation rule.
var Descriptor = &diag.Descriptor{
	ID:       ID,
	Rule:     Rule,
	Severity: diag.SevWarning,
	Title:    "${} in interpolated string",
	Message:  "avoid using ${} in interpolated strings",
	URL:      "https://github.com/mpyw/placeholderlint#fl0014",
}

// Checker reports legacy placeholders in interpolated string literals.
type Checker struct {
	resolver   *resolve.Resolver
	formatters Formatters
	templates  Templates
}

// NewChecker creates a checker. formatters is usually the result of the
// printf analyzer; templates may be nil to check printf formats only.
func NewChecker(r *resolve.Resolver, formatters Formatters, templates Templates) *Checker {
	return &Checker{resolver: r, formatters: formatters, templates: templates}
}

// Check reports every placeholder under node, in source order.
func (c *Checker) Check(node syntax.Cursor, em *diag.Emitter) {
	for cur := range node.Descendants((*ast.CallExpr)(nil)) {
		call := cur.Node().(*ast.CallExpr)
		for _, sink := range Sinks(c.resolver, c.formatters, c.templates, call) {
			for _, lit := range Literals(sink.Arg) {
				c.checkLiteral(lit, sink.Dialect, em)
			}
		}
	}
}

func (c *Checker) checkLiteral(lit *ast.BasicLit, d Dialect, em *diag.Emitter) {
	chars, ok := Decode(lit)
	if !ok {
		return
	}
	for _, sp := range Scan(chars, d) {
		pos := lit.Pos() + token.Pos(sp.Start)
		em.Emit(Descriptor, lit, pos, lit.Pos()+token.Pos(sp.End()))
	}
}
