// Package ignoredirective contains test fixtures for unused
// //placeholderlint:ignore directives.
package ignoredirective

import (
	"context"
	"fmt"
)

func use(ctx context.Context) {}

// [GOOD]: Used directive
func goodUsed(ctx context.Context) {
	use(context.Background()) //placeholderlint:ignore
}

// [GOOD]: Directive for several rules, one used
//
// Unused rules of a directive are reported individually.
func goodPartiallyUsed(ctx context.Context) {
	use(context.TODO()) //placeholderlint:ignore availability,interpolation // want `unused placeholderlint:ignore directive for rule\(s\): interpolation`
}

// [BAD]: Nothing to ignore
func badUnused() {
	//placeholderlint:ignore // want `unused placeholderlint:ignore directive`
	fmt.Println("nothing here")
}

// [BAD]: Nothing to ignore for the named rule
func badUnusedRule(name string) string {
	return fmt.Sprintf("%s", name) //placeholderlint:ignore FL0014 // want `unused placeholderlint:ignore directive for rule\(s\): interpolation`
}

// [BAD]: Unknown rule
func badUnknownRule(ctx context.Context) {
	use(context.Background()) //placeholderlint:ignore availability,goroutine // want `unused placeholderlint:ignore directive for rule\(s\): goroutine`
}
