// Package resolve answers "what does this refer to" questions over the
// type information of one analysis pass.
package resolve

import (
	"go/ast"
	"go/types"

	"github.com/mpyw/placeholderlint/internal/qualname"
	"github.com/mpyw/placeholderlint/internal/typeutil"
)

// Resolver resolves expressions and qualified names to declarations.
// It only reads the package and its type information.
type Resolver struct {
	pkg  *types.Package
	info *types.Info
}

// New creates a resolver for the given package.
func New(pkg *types.Package, info *types.Info) *Resolver {
	return &Resolver{pkg: pkg, info: info}
}

// ObjectOf returns the declaration expr refers to.
// Returns nil if expr has no semantic binding; callers must skip the
// node rather than treat nil as a negative answer.
func (r *Resolver) ObjectOf(expr ast.Expr) types.Object {
	if r.info == nil || expr == nil {
		return nil
	}

	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return r.info.ObjectOf(e)

	case *ast.SelectorExpr:
		if sel, ok := r.info.Selections[e]; ok {
			return sel.Obj()
		}
		// Qualified identifier (pkg.Name).
		return r.info.ObjectOf(e.Sel)

	case *ast.StarExpr:
		// Pointer type *T, as in the method expression (*T).M.
		// A dereference has no declaration of its own.
		if tv, ok := r.info.Types[e]; ok && tv.IsType() {
			return r.ObjectOf(e.X)
		}
		return nil

	case *ast.IndexExpr:
		return r.ObjectOf(e.X)

	case *ast.IndexListExpr:
		return r.ObjectOf(e.X)
	}

	return nil
}

// TypeOf returns the type of a type or value expression.
// Returns nil for unresolved and invalid types.
func (r *Resolver) TypeOf(expr ast.Expr) types.Type {
	if r.info == nil || expr == nil {
		return nil
	}
	t := r.info.TypeOf(expr)
	if typeutil.IsInvalid(t) {
		return nil
	}
	return t
}

// ParamType returns the declared type of a parameter field.
// A variadic "...T" field yields T.
func (r *Resolver) ParamType(field *ast.Field) types.Type {
	if field == nil {
		return nil
	}
	if ell, ok := field.Type.(*ast.Ellipsis); ok {
		return r.TypeOf(ell.Elt)
	}
	return r.TypeOf(field.Type)
}

// CalleeOf returns the function or method a call statically invokes.
// Returns nil for calls through function values, conversions and builtins.
func (r *Resolver) CalleeOf(call *ast.CallExpr) *types.Func {
	if call == nil {
		return nil
	}
	fn, ok := r.ObjectOf(call.Fun).(*types.Func)
	if !ok {
		return nil
	}
	return fn.Origin()
}

// IsMethodExpr reports whether call invokes a method expression such as
// (*T).M(recv, args...), whose arguments are shifted by the receiver.
func (r *Resolver) IsMethodExpr(call *ast.CallExpr) bool {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok || r.info == nil {
		return false
	}
	s, ok := r.info.Selections[sel]
	return ok && s.Kind() == types.MethodExpr
}

// LookupPackage finds the package with the given path in the transitive
// import closure of the analyzed package, the package itself included.
// A major version suffix on the found path is accepted.
// Returns nil if the package is not part of this compilation.
func (r *Resolver) LookupPackage(path string) *types.Package {
	if r.pkg == nil {
		return nil
	}

	var fallback *types.Package
	seen := make(map[*types.Package]bool)
	queue := []*types.Package{r.pkg}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[p] {
			continue
		}
		seen[p] = true

		if p.Path() == path {
			return p
		}
		if fallback == nil && qualname.MatchPkg(p.Path(), path) {
			fallback = p
		}
		queue = append(queue, p.Imports()...)
	}

	return fallback
}

// Lookup resolves a qualified name to its declaration.
// Type members are found through the method set of *T, so both value and
// pointer receiver methods resolve.
// Returns nil when the name is not declared in this compilation.
func (r *Resolver) Lookup(n qualname.Name) types.Object {
	pkg := r.LookupPackage(n.PkgPath)
	if pkg == nil {
		return nil
	}

	if n.TypeName == "" {
		return pkg.Scope().Lookup(n.Member)
	}

	tn, ok := pkg.Scope().Lookup(n.TypeName).(*types.TypeName)
	if !ok {
		return nil
	}
	obj, _, _ := types.LookupFieldOrMethod(tn.Type(), true, pkg, n.Member)
	if obj == nil {
		return nil
	}
	return typeutil.Origin(obj)
}

// LookupType resolves a qualified name that must denote a named type.
func (r *Resolver) LookupType(n qualname.Name) *types.TypeName {
	if n.TypeName != "" {
		return nil
	}
	tn, ok := r.Lookup(n).(*types.TypeName)
	if !ok {
		return nil
	}
	if decl := typeutil.DeclOf(tn.Type()); decl != nil {
		return decl
	}
	return tn
}
