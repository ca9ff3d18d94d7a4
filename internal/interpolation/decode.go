package interpolation

import (
	"go/ast"
	"go/token"
	"strconv"
	"unicode/utf8"
)

// Decode maps a Go string literal to its characters. Offsets are relative
// to the literal's opening quote, so an escape such as \x24 maps back to
// all four bytes that spell it. Carriage returns in raw literals are
// dropped, as the compiler does.
// Returns false for anything but a well-formed string literal.
func Decode(lit *ast.BasicLit) ([]Char, bool) {
	if lit == nil || lit.Kind != token.STRING || len(lit.Value) < 2 {
		return nil, false
	}

	v := lit.Value
	quote := v[0]
	if v[len(v)-1] != quote {
		return nil, false
	}
	body := v[1 : len(v)-1]
	chars := make([]Char, 0, len(body))

	switch quote {
	case '`':
		for off := 0; off < len(body); {
			r, n := utf8.DecodeRuneInString(body[off:])
			if r != '\r' {
				chars = append(chars, Char{R: r, Off: off + 1, Len: n})
			}
			off += n
		}

	case '"':
		off := 1
		for rest := body; len(rest) > 0; {
			r, _, tail, err := strconv.UnquoteChar(rest, '"')
			if err != nil {
				return nil, false
			}
			n := len(rest) - len(tail)
			chars = append(chars, Char{R: r, Off: off, Len: n})
			off += n
			rest = tail
		}

	default:
		return nil, false
	}

	return chars, true
}
