// Package availability reports placeholder sentinels of the cooperation
// token used where a live token is in scope.
package availability

import (
	"go/ast"

	"github.com/mpyw/placeholderlint/internal/capability"
	"github.com/mpyw/placeholderlint/internal/diag"
	"github.com/mpyw/placeholderlint/internal/resolve"
	"github.com/mpyw/placeholderlint/internal/syntax"
)

// ID is the diagnostic ID of the availability rule.
const ID = "FL0008"

// Rule is the name of the availability rule in flags and directives.
const Rule = "availability"

// NewDescriptor returns the rule's diagnostic for the given message.
func NewDescriptor(message string) *diag.Descriptor {
	return &diag.Descriptor{
		ID:       ID,
		Rule:     Rule,
		Severity: diag.SevError,
		Title:    "Sentinel token usage",
		Message:  message,
		URL:      "https://github.com/mpyw/placeholderlint#fl0008",
	}
}

// Checker applies the availability rule.
type Checker struct {
	resolver *resolve.Resolver
	set      *capability.Set
	desc     *diag.Descriptor
}

// NewChecker creates a checker for one pass.
func NewChecker(r *resolve.Resolver, set *capability.Set, desc *diag.Descriptor) *Checker {
	return &Checker{resolver: r, set: set, desc: desc}
}

// Check reports every sentinel reference under node.
func (c *Checker) Check(node syntax.Cursor, em *diag.Emitter) {
	if !c.set.Active() {
		return
	}

	for cur := range node.Descendants((*ast.SelectorExpr)(nil)) {
		sel := cur.Node().(*ast.SelectorExpr)
		if !c.isSentinelRef(sel) {
			continue
		}
		if !c.tokenReachable(cur) {
			continue
		}
		em.EmitNode(c.desc, sel)
	}
}

// isSentinelRef reports whether sel is Holder.Sentinel, with Holder the
// sentinel's own package or type rather than a value.
func (c *Checker) isSentinelRef(sel *ast.SelectorExpr) bool {
	member := c.resolver.ObjectOf(sel.Sel)
	if member == nil {
		return false
	}
	holder := c.resolver.ObjectOf(sel.X)
	if holder == nil {
		return false
	}
	return c.set.IsSentinel(holder, member)
}

// tokenReachable walks the enclosing function literals out to the
// enclosing declaration. Parameters of every one of them are in scope.
func (c *Checker) tokenReachable(cur syntax.Cursor) bool {
	for fn := range cur.Ancestors((*ast.FuncDecl)(nil), (*ast.FuncLit)(nil)) {
		switch n := fn.Node().(type) {
		case *ast.FuncLit:
			if c.provesToken(nil, n.Type) {
				return true
			}
		case *ast.FuncDecl:
			return c.provesToken(n.Recv, n.Type)
		}
	}
	return false
}

func (c *Checker) provesToken(recv *ast.FieldList, ft *ast.FuncType) bool {
	if ft == nil {
		return false
	}
	return c.returnsActions(ft.Results) || c.hasTokenParam(recv) || c.hasTokenParam(ft.Params)
}

// returnsActions is the return-shape test: a result is a sequence of
// actions that each receive a token when invoked.
func (c *Checker) returnsActions(results *ast.FieldList) bool {
	if results == nil {
		return false
	}
	for _, field := range results.List {
		if c.set.IsActionSequence(c.resolver.TypeOf(field.Type)) {
			return true
		}
	}
	return false
}

// hasTokenParam is the parameter test.
func (c *Checker) hasTokenParam(params *ast.FieldList) bool {
	if params == nil {
		return false
	}
	for _, field := range params.List {
		if c.set.ProvesToken(c.resolver.ParamType(field)) {
			return true
		}
	}
	return false
}
