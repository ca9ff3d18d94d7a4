package interpolation

import (
	"unicode/utf8"
)

// Char is one decoded character of a literal and where it came from.
type Char struct {
	R   rune
	Off int // byte offset of the source text that produced R
	Len int // byte length of that source text (longer than R for escapes)
}

// Span is a legacy placeholder found by [Scan], in source byte offsets.
type Span struct {
	Start int // offset of the '$'
	Len   int // through the closing '}'
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Dialect describes the native holes of the interpolated text.
// The zero Dialect has no brace-delimited native holes (printf formats).
type Dialect struct {
	Left  string
	Right string
}

// Format is the dialect of printf format strings.
var Format = Dialect{}

// Template returns the dialect of template text with the given action
// delimiters.
func Template(left, right string) Dialect {
	return Dialect{Left: left, Right: right}
}

func (d Dialect) hasNative() bool {
	return d.Left != "" && d.Right != ""
}

type state uint8

const (
	outside state = iota
	sawDollar
	inLegacy
	inNative
)

// Scan finds every legacy "${...}" placeholder in text, left to right.
//
// A placeholder starts at a '$' immediately followed by '{' and ends at the
// '}' that brings its own brace depth back to zero. Native holes of the
// dialect are skipped whole; a '$' right before a native hole is plain
// text. A placeholder still open at the end of text is not reported.
func Scan(text []Char, d Dialect) []Span {
	var (
		spans []Span
		st    = outside
		depth int
		start int
	)

	for i := 0; i < len(text); i++ {
		switch st {
		case outside:
			if d.hasNative() && hasPrefixAt(text, i, d.Left) {
				st = inNative
				i += utf8.RuneCountInString(d.Left) - 1
				continue
			}
			if text[i].R == '$' {
				st = sawDollar
				start = i
			}

		case sawDollar:
			if text[i].R == '{' && !(d.hasNative() && hasPrefixAt(text, i, d.Left)) {
				st = inLegacy
				depth = 1
				continue
			}
			// A lone '$' is literal text; look at this character again.
			st = outside
			i--

		case inLegacy:
			switch text[i].R {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					spans = append(spans, spanOf(text, start, i))
					st = outside
				}
			}

		case inNative:
			if hasPrefixAt(text, i, d.Right) {
				st = outside
				i += utf8.RuneCountInString(d.Right) - 1
			}
		}
	}

	return spans
}

// ScanString scans an already decoded string; offsets are byte offsets
// into s.
func ScanString(s string, d Dialect) []Span {
	return Scan(Chars(s), d)
}

// Chars splits s into characters whose offsets are byte offsets into s.
func Chars(s string) []Char {
	chars := make([]Char, 0, len(s))
	for off := 0; off < len(s); {
		r, n := utf8.DecodeRuneInString(s[off:])
		chars = append(chars, Char{R: r, Off: off, Len: n})
		off += n
	}
	return chars
}

func hasPrefixAt(text []Char, i int, prefix string) bool {
	for _, r := range prefix {
		if i >= len(text) || text[i].R != r {
			return false
		}
		i++
	}
	return true
}

func spanOf(text []Char, first, last int) Span {
	start := text[first].Off
	end := text[last].Off + text[last].Len
	return Span{Start: start, Len: end - start}
}
