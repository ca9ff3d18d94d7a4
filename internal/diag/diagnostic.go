// Package diag builds diagnostic records and hands them to a reporting
// channel.
package diag

import (
	"go/token"
)

// Descriptor is the fixed definition of a rule's diagnostic.
type Descriptor struct {
	ID       string // e.g. FL0008
	Rule     string // name used by ignore directives and flags
	Severity Severity
	Title    string
	Message  string
	URL      string
}

// Diagnostic is one finding. It is a value: sinks receive a copy and
// nothing changes it after New.
type Diagnostic struct {
	ID       string
	Rule     string
	Severity Severity
	Message  string
	URL      string

	Pos token.Pos
	End token.Pos

	// Start and Finish are Pos and End resolved through the file set.
	// Columns are 1-based byte offsets within the line.
	Start  token.Position
	Finish token.Position
}

// New builds the diagnostic for desc over [pos, end).
func New(fset *token.FileSet, desc *Descriptor, pos, end token.Pos) Diagnostic {
	d := Diagnostic{
		ID:       desc.ID,
		Rule:     desc.Rule,
		Severity: desc.Severity,
		Message:  desc.Message,
		URL:      desc.URL,
		Pos:      pos,
		End:      end,
	}
	if fset != nil {
		d.Start = fset.Position(pos)
		d.Finish = fset.Position(end)
	}
	return d
}

// Len returns the length of the span in bytes.
func (d Diagnostic) Len() int {
	return int(d.End - d.Pos)
}
