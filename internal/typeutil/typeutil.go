package typeutil

import (
	"go/types"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
// Aliases are resolved on both levels.
func UnwrapPointer(t types.Type) types.Type {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		return types.Unalias(ptr.Elem())
	}

	return t
}

// DeclOf returns the declaration of the named type t refers to.
// It unwraps one pointer level, resolves aliases and maps generic
// instances to their origin, so T, *T, an alias of T and T[int] all
// share one declaration.
// Returns nil for unnamed and invalid types.
func DeclOf(t types.Type) *types.TypeName {
	if t == nil {
		return nil
	}

	switch t := UnwrapPointer(t).(type) {
	case *types.Named:
		return t.Origin().Obj()
	case *types.TypeParam:
		return t.Obj()
	}

	return nil
}

// IsInvalid reports whether t is missing or the invalid type produced
// for expressions that failed to type-check.
func IsInvalid(t types.Type) bool {
	if t == nil {
		return true
	}
	b, ok := types.Unalias(t).(*types.Basic)
	return ok && b.Kind() == types.Invalid
}

// IsString checks if the type's underlying type is string.
func IsString(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsString != 0
}

// IsEmptyInterface checks if the type's underlying type is interface{} (any).
func IsEmptyInterface(t types.Type) bool {
	iface, ok := t.Underlying().(*types.Interface)
	return ok && iface.Empty()
}

// Origin maps an object of an instantiated generic declaration back to the
// object declared in source, so identity comparison works across instances.
func Origin(obj types.Object) types.Object {
	switch o := obj.(type) {
	case *types.Func:
		return o.Origin()
	case *types.Var:
		return o.Origin()
	}
	return obj
}
