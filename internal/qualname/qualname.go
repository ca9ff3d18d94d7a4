// Package qualname parses qualified declaration names given on the command
// line or in a profile file.
package qualname

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"unicode"
)

// ErrInvalid is returned for names without a package qualifier.
var ErrInvalid = errors.New("invalid qualified name")

// Name holds the parsed components of a qualified declaration name.
// Format: "pkg/path.Member" or "pkg/path.Type.Member".
type Name struct {
	PkgPath  string
	TypeName string // empty for package-level members
	Member   string
}

// Parse parses a single qualified name into components.
// Type names start with an upper-case letter, which is how
// "pkg/path.Type.Member" is told apart from a dotted package path.
func Parse(s string) Name {
	n := Name{}

	lastDot := strings.LastIndex(s, ".")
	if lastDot == -1 {
		n.Member = s

		return n
	}

	n.Member = s[lastDot+1:]
	prefix := s[:lastDot]

	secondLastDot := strings.LastIndex(prefix, ".")
	if secondLastDot != -1 {
		possibleType := prefix[secondLastDot+1:]
		if len(possibleType) > 0 && !strings.Contains(possibleType, "/") && unicode.IsUpper(rune(possibleType[0])) {
			n.TypeName = possibleType
			n.PkgPath = prefix[:secondLastDot]

			return n
		}
	}

	n.PkgPath = prefix

	return n
}

// ParseStrict is Parse that rejects names without a package path or member.
func ParseStrict(s string) (Name, error) {
	n := Parse(strings.TrimSpace(s))
	if n.PkgPath == "" || n.Member == "" {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	return n, nil
}

// Split splits a comma-separated flag value into trimmed, non-empty parts.
func Split(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns the full name in the same format Parse accepts.
func (n Name) String() string {
	if n.TypeName == "" {
		return n.PkgPath + "." + n.Member
	}
	return n.PkgPath + "." + n.TypeName + "." + n.Member
}

// Short returns the name as it is written in source, with the package
// path reduced to its package name.
// Example: "net/http.Request" → "http.Request".
func (n Name) Short() string {
	pkg := shortPkg(n.PkgPath)
	if n.TypeName == "" {
		return pkg + "." + n.Member
	}
	return pkg + "." + n.TypeName + "." + n.Member
}

// Owner returns the name of the declaring type of a type member.
// For package-level members it returns the zero Name.
func (n Name) Owner() Name {
	if n.TypeName == "" {
		return Name{}
	}
	return Name{PkgPath: n.PkgPath, Member: n.TypeName}
}

func shortPkg(pkgPath string) string {
	base := path.Base(pkgPath)
	if isVersionSuffix(base) {
		if parent := path.Base(path.Dir(pkgPath)); parent != "." && parent != "/" {
			return parent
		}
	}
	return base
}

// MatchPkg checks if pkgPath matches targetPkg, allowing major version suffixes.
func MatchPkg(pkgPath, targetPkg string) bool {
	if pkgPath == targetPkg {
		return true
	}
	prefix := targetPkg + "/"
	if !strings.HasPrefix(pkgPath, prefix) {
		return false
	}
	return isVersionSuffix(pkgPath[len(prefix):])
}

func isVersionSuffix(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
