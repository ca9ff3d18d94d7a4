package diag

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Sink receives diagnostics in the order they are emitted.
type Sink interface {
	Emit(d Diagnostic)
}

// Suppressor decides whether a rule is silenced at a position.
type Suppressor interface {
	Suppressed(pos token.Position, rule string) bool
}

// Emitter turns rule matches into diagnostics.
// It performs no deduplication: every match is one diagnostic.
type Emitter struct {
	fset     *token.FileSet
	sink     Sink
	suppress Suppressor
}

// NewEmitter creates an emitter. suppress may be nil.
func NewEmitter(fset *token.FileSet, sink Sink, suppress Suppressor) *Emitter {
	return &Emitter{fset: fset, sink: sink, suppress: suppress}
}

// Emit reports desc over [pos, end), which must lie within node.
// Returns false if nothing was reported, either because the span is
// outside the triggering node or because the rule is suppressed there.
func (e *Emitter) Emit(desc *Descriptor, node ast.Node, pos, end token.Pos) bool {
	if node == nil || !pos.IsValid() || end < pos {
		return false
	}
	if pos < node.Pos() || end > node.End() {
		return false
	}

	d := New(e.fset, desc, pos, end)
	if e.suppress != nil && e.suppress.Suppressed(d.Start, desc.Rule) {
		return false
	}

	e.sink.Emit(d)
	return true
}

// EmitNode reports desc over the whole node.
func (e *Emitter) EmitNode(desc *Descriptor, node ast.Node) bool {
	if node == nil {
		return false
	}
	return e.Emit(desc, node, node.Pos(), node.End())
}

// PassSink forwards diagnostics to an analysis pass.
// The category is the rule ID and severity, e.g. "FL0008/error".
type PassSink struct {
	Pass *analysis.Pass
}

func (s PassSink) Emit(d Diagnostic) {
	s.Pass.Report(analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: Category(d.ID, d.Severity),
		Message:  d.Message,
		URL:      d.URL,
	})
}

// Category is the analysis category of a diagnostic.
func Category(id string, sev Severity) string {
	return id + "/" + sev.String()
}

// Collector records diagnostics in emission order.
type Collector struct {
	items []Diagnostic
}

func (c *Collector) Emit(d Diagnostic) {
	c.items = append(c.items, d)
}

// Items returns the recorded diagnostics.
func (c *Collector) Items() []Diagnostic {
	return c.items
}
