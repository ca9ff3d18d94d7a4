package capability

import (
	"go/types"
	"slices"

	"github.com/mpyw/placeholderlint/internal/qualname"
	"github.com/mpyw/placeholderlint/internal/resolve"
	"github.com/mpyw/placeholderlint/internal/typeutil"
)

// Set is a profile bound to the declarations of one compilation.
// Names that are not declared in the compilation are dropped.
type Set struct {
	resolver *resolve.Resolver

	// sentinel object -> its holder: *types.Package or *types.TypeName
	sentinels map[types.Object]any

	token     *types.TypeName
	values    []*types.TypeName
	contexts  []*types.TypeName
	sequences []*types.TypeName

	templateFuncs  map[types.Object]bool
	templateDelims [2]string
}

// Bind resolves every name of the profile once for the current pass.
func (p Profile) Bind(r *resolve.Resolver) *Set {
	s := &Set{
		resolver:       r,
		sentinels:      make(map[types.Object]any),
		templateFuncs:  make(map[types.Object]bool),
		templateDelims: p.TemplateDelims,
	}

	for _, name := range p.Sentinels {
		n := qualname.Parse(name)
		obj := r.Lookup(n)
		switch obj.(type) {
		case *types.Func, *types.Var, *types.Const:
		default:
			continue
		}

		if n.TypeName == "" {
			s.sentinels[obj] = obj.Pkg()
			continue
		}
		if holder := r.LookupType(n.Owner()); holder != nil {
			s.sentinels[obj] = holder
		}
	}

	s.token = r.LookupType(qualname.Parse(p.Token))
	s.values = lookupTypes(r, p.Values)
	s.contexts = lookupTypes(r, p.MethodContexts)
	s.sequences = lookupTypes(r, p.Sequences)

	for _, name := range p.TemplateFuncs {
		if fn, ok := r.Lookup(qualname.Parse(name)).(*types.Func); ok {
			s.templateFuncs[fn] = true
		}
	}

	return s
}

func lookupTypes(r *resolve.Resolver, names []string) []*types.TypeName {
	var out []*types.TypeName
	for _, name := range names {
		if tn := r.LookupType(qualname.Parse(name)); tn != nil {
			out = append(out, tn)
		}
	}
	return out
}

// Active reports whether the availability rule can run: at least one
// sentinel and the token capability are declared in this compilation.
func (s *Set) Active() bool {
	return len(s.sentinels) > 0 && s.token != nil
}

// IsSentinel reports whether member is a sentinel selected through its own
// holder: the package that declares it (through an import name) or the
// type that declares it.
func (s *Set) IsSentinel(holder, member types.Object) bool {
	if holder == nil || member == nil {
		return false
	}

	want, ok := s.sentinels[typeutil.Origin(member)]
	if !ok {
		return false
	}

	switch h := holder.(type) {
	case *types.PkgName:
		return want == any(h.Imported())
	case *types.TypeName:
		decl := typeutil.DeclOf(h.Type())
		return decl != nil && want == any(decl)
	}

	return false
}

// ProvesToken reports whether a parameter of type t proves that a live
// token is available: t is-a token, or t is one of the value or
// method-context types.
func (s *Set) ProvesToken(t types.Type) bool {
	if typeutil.IsInvalid(t) {
		return false
	}
	if s.resolver.Implements(t, s.token) {
		return true
	}

	decl := typeutil.DeclOf(t)
	if decl == nil {
		return false
	}
	return slices.Contains(s.values, decl) || slices.Contains(s.contexts, decl)
}

// IsActionSequence reports whether t is a sequence of cooperation actions:
// a slice, array or configured sequence type whose element is a function
// that receives a token.
func (s *Set) IsActionSequence(t types.Type) bool {
	elem := s.sequenceElem(t)
	if elem == nil {
		return false
	}

	sig, ok := elem.Underlying().(*types.Signature)
	if !ok {
		return false
	}

	params := sig.Params()
	for i := range params.Len() {
		pt := params.At(i).Type()
		if sig.Variadic() && i == params.Len()-1 {
			if sl, ok := pt.(*types.Slice); ok {
				pt = sl.Elem()
			}
		}
		if s.ProvesToken(pt) {
			return true
		}
	}

	return false
}

func (s *Set) sequenceElem(t types.Type) types.Type {
	if typeutil.IsInvalid(t) {
		return nil
	}

	t = types.Unalias(t)
	if named, ok := t.(*types.Named); ok {
		if slices.Contains(s.sequences, named.Origin().Obj()) {
			if args := named.TypeArgs(); args.Len() == 1 {
				return args.At(0)
			}
			return nil
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Slice:
		return u.Elem()
	case *types.Array:
		return u.Elem()
	}

	return nil
}

// IsTemplateFunc reports whether fn parses its first argument as template text.
func (s *Set) IsTemplateFunc(fn *types.Func) bool {
	return fn != nil && s.templateFuncs[fn.Origin()]
}

// TemplateDelims returns the action delimiters of template text.
func (s *Set) TemplateDelims() (left, right string) {
	return s.templateDelims[0], s.templateDelims[1]
}
