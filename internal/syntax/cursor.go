// Package syntax provides tree queries over an inspected syntax tree.
package syntax

import (
	"go/ast"
	"go/token"
	"iter"

	"golang.org/x/tools/go/ast/inspector"
)

// Cursor is a handle to one node of an inspected tree.
// The zero Cursor is invalid; use [Root].
type Cursor struct {
	c inspector.Cursor
}

// Root returns the cursor above all files of the inspector.
func Root(insp *inspector.Inspector) Cursor {
	return Cursor{c: insp.Root()}
}

// Node returns the node at the cursor, or nil for the root.
func (c Cursor) Node() ast.Node {
	return c.c.Node()
}

// IsRoot reports whether c is the root cursor.
func (c Cursor) IsRoot() bool {
	return c.c.Node() == nil
}

// Parent returns the parent cursor and false when c is the root.
func (c Cursor) Parent() (Cursor, bool) {
	if c.IsRoot() {
		return Cursor{}, false
	}
	return Cursor{c: c.c.Parent()}, true
}

// Ancestors yields the strict ancestors of c whose type matches one of
// types (all ancestors if types is empty), nearest first.
func (c Cursor) Ancestors(types ...ast.Node) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		parent, ok := c.Parent()
		if !ok || parent.IsRoot() {
			return
		}
		for a := range parent.c.Enclosing(types...) {
			if !yield(Cursor{c: a}) {
				return
			}
		}
	}
}

// NearestAncestor returns the closest strict ancestor of one of types.
// Returns false if the root is reached first.
func (c Cursor) NearestAncestor(types ...ast.Node) (Cursor, bool) {
	for a := range c.Ancestors(types...) {
		return a, true
	}
	return Cursor{}, false
}

// Children yields the immediate children of c. The children of the root
// are the files.
func (c Cursor) Children() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for ch := range c.c.Children() {
			if !yield(Cursor{c: ch}) {
				return
			}
		}
	}
}

// Descendants yields the strict descendants of c whose type matches one
// of types, depth-first in pre-order. The sequence may be iterated any
// number of times.
func (c Cursor) Descendants(types ...ast.Node) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for d := range c.c.Preorder(types...) {
			if d == c.c {
				continue
			}
			if !yield(Cursor{c: d}) {
				return
			}
		}
	}
}

// Span is a resolved source range.
type Span struct {
	Start token.Position
	End   token.Position
}

// Span resolves the node's range to file, line and column.
func (c Cursor) Span(fset *token.FileSet) Span {
	n := c.Node()
	if n == nil {
		return Span{}
	}
	return Span{Start: fset.Position(n.Pos()), End: fset.Position(n.End())}
}
