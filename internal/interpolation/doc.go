// Package interpolation finds legacy "${...}" placeholders inside string
// literals that Go interpolates.
//
// # Overview
//
// Go expands neither "${name}" nor "$name" in format strings or template
// text. A placeholder written in another templating syntax therefore
// survives verbatim into the output:
//
//	fmt.Sprintf("hello ${name}", name)  // FL0014: prints "hello ${name}%!(EXTRA ...)"
//	fmt.Sprintf("hello %s", name)       // OK
//
// # Interpolated Literals
//
// Only literals the callee actually interpolates are scanned:
//
//	┌──────────────────────────────┬─────────────────┬──────────────┐
//	│ Callee                       │ Argument        │ Native holes │
//	├──────────────────────────────┼─────────────────┼──────────────┤
//	│ printf-like, wrappers found  │ string before   │ %v verbs     │
//	│ by the printf analyzer       │ the ...any      │              │
//	│ configured template funcs    │ first           │ {{ ... }}    │
//	└──────────────────────────────┴─────────────────┴──────────────┘
//
// A "${hello}" literal assigned to a variable is data, and so is any
// identifier passed in its place.
//
// # State Machine
//
// [Scan] runs one automaton per literal:
//
//	Outside ──'$'──▶ SawDollar ──'{'──▶ InLegacy{depth=1}
//	   ▲                 │                 │ '{' depth++
//	   │     other char  │                 │ '}' depth--
//	   ├─────(re-read)───┘                 │
//	   └──────────── depth == 0 ◀──────────┘  (emit span)
//
//	Outside ──Left──▶ InNative ──Right──▶ Outside   (template dialect only)
//
// A '$' not followed by '{' is plain text, so "$0.00" never matches.
// A placeholder still open when the literal ends is not reported.
//
// # Spans
//
// [Decode] keeps the source offset of every decoded character, so a span
// covers exactly the source bytes from '$' through the closing '}', even
// when they are spelled with escapes such as "\x24{name}".
package interpolation
