package resolve

import (
	"go/types"

	"github.com/mpyw/placeholderlint/internal/typeutil"
)

// Implements reports whether t is, or is-a, the capability type.
//
// The check first walks the closure of t's declared supertypes: embedded
// interfaces, embedded struct fields and type-parameter constraints. If the
// capability is an interface, t (or *t) satisfying its method set also
// counts, since that is what implementation means in Go.
func (r *Resolver) Implements(t types.Type, capability *types.TypeName) bool {
	if typeutil.IsInvalid(t) || capability == nil {
		return false
	}

	if declaredClosure(t, capability) {
		return true
	}

	return satisfies(t, capability)
}

// declaredClosure walks supertypes depth-first. The visited set keeps the
// walk finite on cyclic or malformed hierarchies.
func declaredClosure(t types.Type, capability *types.TypeName) bool {
	seen := make(map[types.Type]bool)
	stack := []types.Type{t}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur = typeutil.UnwrapPointer(cur)
		if named, ok := cur.(*types.Named); ok {
			cur = named.Origin()
		}
		if cur == nil || seen[cur] {
			continue
		}
		seen[cur] = true

		if typeutil.DeclOf(cur) == capability {
			return true
		}

		stack = append(stack, supertypes(cur)...)
	}

	return false
}

// supertypes returns the types t declares itself to be built from.
func supertypes(t types.Type) []types.Type {
	if tp, ok := t.(*types.TypeParam); ok {
		return []types.Type{tp.Constraint()}
	}

	switch u := t.Underlying().(type) {
	case *types.Interface:
		out := make([]types.Type, 0, u.NumEmbeddeds())
		for i := range u.NumEmbeddeds() {
			out = append(out, u.EmbeddedType(i))
		}
		return out

	case *types.Struct:
		var out []types.Type
		for i := range u.NumFields() {
			if f := u.Field(i); f.Embedded() {
				out = append(out, f.Type())
			}
		}
		return out
	}

	return nil
}

// satisfies reports whether t or *t implements the capability interface.
// Empty and generic interfaces never count: everything satisfies the
// former and the latter cannot be checked without type arguments.
func satisfies(t types.Type, capability *types.TypeName) bool {
	named, ok := capability.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return false
	}
	iface, ok := named.Underlying().(*types.Interface)
	if !ok || iface.Empty() {
		return false
	}

	t = types.Unalias(t)
	if types.Implements(t, iface) {
		return true
	}

	if _, isPtr := t.(*types.Pointer); isPtr || types.IsInterface(t) {
		return false
	}

	return types.Implements(types.NewPointer(t), iface)
}
