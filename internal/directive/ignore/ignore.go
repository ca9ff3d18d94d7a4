// Package ignore handles //placeholderlint:ignore directives.
package ignore

import (
	"go/ast"
	"go/token"
	"sort"
	"strings"
)

const prefix = "placeholderlint:ignore"

// RuleName represents a rule that can be ignored.
type RuleName string

// Valid rule names.
const (
	Availability  RuleName = "availability"
	Interpolation RuleName = "interpolation"
)

// aliases maps rule IDs to rule names, so "FL0008" works as well.
var aliases = map[string]RuleName{
	"FL0008": Availability,
	"FL0014": Interpolation,
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos   token.Pos         // Position of the ignore comment
	rules []RuleName        // List of rule names (empty = all)
	used  map[RuleName]bool // Track usage per rule
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Maps holds the ignore map of every analyzed file, keyed by filename.
type Maps map[string]Map

// EnabledRules tracks which rules are currently enabled.
type EnabledRules map[RuleName]bool

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if rules, ok := parseComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:   c.Pos(),
					rules: rules,
					used:  make(map[RuleName]bool),
				}
			}
		}
	}

	return m
}

// parseComment parses an ignore directive and returns the rule names.
// Returns nil slice if no specific rules are specified (ignore all).
// Returns false if not an ignore comment.
func parseComment(text string) ([]RuleName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, prefix) {
		return nil, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(text, prefix))
	if rest == "" {
		return nil, true
	}

	if strings.HasPrefix(rest, "//") {
		return nil, true
	}

	// Stop at comment markers: " - " or " //"
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	rules := make([]RuleName, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if alias, ok := aliases[part]; ok {
			rules = append(rules, alias)
			continue
		}
		rules = append(rules, RuleName(part))
	}

	return rules, true
}

// ShouldIgnore returns true if the given line should be ignored for the specified rule.
func (m Map) ShouldIgnore(line int, rule RuleName) bool {
	if m.shouldIgnoreEntry(m[line], rule) {
		return true
	}
	if m.shouldIgnoreEntry(m[line-1], rule) {
		return true
	}

	return false
}

// shouldIgnoreEntry checks if an entry ignores the specified rule.
func (m Map) shouldIgnoreEntry(entry *Entry, rule RuleName) bool {
	if entry == nil {
		return false
	}

	if len(entry.rules) == 0 {
		entry.used[rule] = true
		return true
	}

	for _, r := range entry.rules {
		if r == rule {
			entry.used[rule] = true
			return true
		}
	}

	return false
}

// Suppressed implements the emitter's suppression hook.
func (ms Maps) Suppressed(pos token.Position, rule string) bool {
	m, ok := ms[pos.Filename]
	if !ok {
		return false
	}
	return m.ShouldIgnore(pos.Line, RuleName(rule))
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos   token.Pos
	Rules []RuleName // Unused rule names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that were not used, in
// source order.
func (m Map) GetUnusedIgnores(enabled EnabledRules) []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.rules) == 0 {
			anyUsed := false
			for rule := range enabled {
				if entry.used[rule] {
					anyUsed = true
					break
				}
			}
			if !anyUsed {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var unusedRules []RuleName
		for _, rule := range entry.rules {
			// A disabled or unknown rule can never use the directive.
			if !enabled[rule] || !entry.used[rule] {
				unusedRules = append(unusedRules, rule)
			}
		}
		if len(unusedRules) > 0 {
			unused = append(unused, UnusedIgnore{
				Pos:   entry.pos,
				Rules: unusedRules,
			})
		}
	}

	sort.Slice(unused, func(i, j int) bool { return unused[i].Pos < unused[j].Pos })

	return unused
}
