// Package interpolation contains test fixtures for the interpolation rule.
// This file covers printf-style format strings.
// See template.go for template text.
package interpolation

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

var errNotFound = errors.New("not found")

// ===== SHOULD REPORT =====

// [BAD]: Sprintf with a placeholder
func badSprintf(name string) string {
	return fmt.Sprintf("hello ${name}", name) // want `avoid using \$\{\} in interpolated strings`
}

// [BAD]: Placeholder next to a verb
func badMixed(name string) string {
	return fmt.Sprintf("%s ${name}", name) // want `avoid using \$\{\} in interpolated strings`
}

// [BAD]: Two placeholders in one string
func badTwice(one string) string {
	return fmt.Sprintf("${one}${one}", one) // want `avoid using` `avoid using`
}

// [BAD]: Errorf
func badErrorf(path string) error {
	return fmt.Errorf("load ${path}: %w", errNotFound) // want `avoid using`
}

// [BAD]: Printf and Fprintf
func badPrint(user string) {
	fmt.Printf("user=${user}\n", user)            // want `avoid using`
	fmt.Fprintf(os.Stderr, "user=${user}\n", user) // want `avoid using`
}

// [BAD]: log package
func badLog(id int) {
	log.Printf("request ${id} failed", id) // want `avoid using`
}

// [BAD]: Raw string
func badRaw(name string) string {
	return fmt.Sprintf(`hello ${name}`, name) // want `avoid using`
}

// [BAD]: Escaped dollar sign
//
// "\x24" is '$' once the literal is decoded.
func badEscape(name string) string {
	return fmt.Sprintf("hello \x24{name}", name) // want `avoid using`
}

// [BAD]: Concatenated literals
func badConcat(name string) string {
	return fmt.Sprintf("hello "+
		"${name}", name) // want `avoid using`
}

// [BAD]: Parenthesized literal
func badParen(name string) string {
	return fmt.Sprintf(("${name}"), name) // want `avoid using`
}

// [BAD]: Empty placeholder
func badEmpty() string {
	return fmt.Sprintf("${}") // want `avoid using`
}

// [BAD]: Nested braces
func badNested(m map[string]string) string {
	return fmt.Sprintf("${m{key}}", m) // want `avoid using`
}

// [BAD]: Multi-line raw string
func badMultiline(name string) string {
	return fmt.Sprintf(`first line
second ${name} line`, name) // want `avoid using`
}

// logf is a printf wrapper.
func logf(format string, args ...any) {
	log.Printf(format, args...)
}

// [BAD]: Printf wrapper
func badWrapper(name string) {
	logf("hello ${name}", name) // want `avoid using`
}

type logger struct {
	out *log.Logger
}

func (l *logger) Infof(format string, args ...any) {
	l.out.Printf(format, args...)
}

// warnf is a printf wrapper whose format parameter has another name.
func warnf(msg string, args ...any) {
	fmt.Printf(msg, args...)
}

// [BAD]: Printf wrapper with a differently named format
func badWrapperMsg(name string) {
	warnf("hello ${name}", name) // want `avoid using`
}

// [BAD]: Printf-style method
func badMethod(l *logger, name string) {
	l.Infof("hello ${name}", name) // want `avoid using`
}

// [BAD]: Method expression
func badMethodExpr(l *logger, name string) {
	(*logger).Infof(l, "hello ${name}", name) // want `avoid using`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Plain string
func goodPlain() string {
	return "${hello}"
}

// [GOOD]: Placeholder in an argument, not in the format
func goodArgument() string {
	one := "${hello}"
	return fmt.Sprintf("%s", one)
}

// [GOOD]: Placeholder in a named constant
const greeting = "hello ${name}"

func goodConst() string {
	return fmt.Sprintf(greeting)
}

// [GOOD]: Not a printf function
func goodPrint(name string) {
	fmt.Println("hello ${name}", name)
	_ = fmt.Sprint("${name}")
}

// [GOOD]: Not a printf wrapper
//
// The shape matches fmt.Printf but nothing formats the string.
func show(pattern string, args ...any) string {
	return pattern
}

func goodNotFormat() string {
	return show("hello ${name}")
}

// expandf expands ${var} itself; its format is not a printf format.
func expandf(format string, args ...any) string {
	return os.Expand(format, os.Getenv)
}

// [GOOD]: Format parameter of a non-printf function
func goodExpandf() string {
	return expandf("${HOME}/bin")
}

// [GOOD]: Currency
func goodCurrency(price float64) string {
	return fmt.Sprintf("$%.2f or $0.00", price)
}

// [GOOD]: Lone dollar signs and braces
func goodBraces(name string) string {
	return fmt.Sprintf("$ {name} $$ {x} $", name)
}

// [GOOD]: Unterminated placeholder
func goodUnterminated(name string) string {
	return fmt.Sprintf("hello ${name", name)
}

// [GOOD]: Shell-style expansion does understand ${}
func goodExpand() string {
	return os.Expand("${HOME}/bin", os.Getenv)
}

// [GOOD]: Other string functions
func goodStrings(s string) bool {
	return strings.Contains(s, "${")
}

// [GOOD]: Ignore directive
func goodIgnored(name string) string {
	return fmt.Sprintf("${name}", name) //placeholderlint:ignore interpolation - rendered by envsubst later
}

// [GOOD]: Ignore directive by ID on the previous line
func goodIgnoredByID(name string) string {
	//placeholderlint:ignore FL0014
	return fmt.Sprintf("${name}", name)
}
