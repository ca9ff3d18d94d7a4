// Package typeutil provides type identity helpers for placeholderlint.
//
// # Overview
//
// Every comparison in the analyzer is made between declarations, never
// between names. A type written as T, *T, an alias of T or an
// instance T[int] must map to the same *types.TypeName, and a member
// selected through an instantiated type must map back to the member
// declared in source.
//
// # Declaration Identity
//
// Use [DeclOf] to get the declaration of a named type:
//
//	decl := typeutil.DeclOf(pass.TypesInfo.TypeOf(expr))
//	if decl == tokenDecl {
//	    // expr has the token type
//	}
//
// The function handles pointers and aliases automatically:
//
//	DeclOf(context.Context)   // context.Context
//	DeclOf(*http.Request)     // http.Request
//	DeclOf(MyAlias)           // declaration MyAlias stands for
//
// # Object Identity
//
// Use [Origin] before comparing a types.Object with one looked up from
// a package scope; it undoes generic instantiation for functions,
// methods and fields.
package typeutil
