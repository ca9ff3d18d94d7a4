// Package ignore provides //placeholderlint:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses analyzer diagnostics for specific lines
// or specific rules.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//placeholderlint:ignore
//	doWork(context.TODO())  // Diagnostic suppressed
//
//	doWork(context.TODO())  //placeholderlint:ignore  // Also works
//
// # Rule-Specific Ignores
//
// Specify rule names or IDs to ignore only specific rules:
//
//	//placeholderlint:ignore availability
//	doWork(context.TODO())
//
//	//placeholderlint:ignore FL0014 - shell template, expanded later
//	fmt.Printf("echo ${HOME}\n")
//
// # Valid Rule Names
//
//	┌───────────────┬────────┬──────────────────────────────────────────┐
//	│ Name          │ ID     │ Description                              │
//	├───────────────┼────────┼──────────────────────────────────────────┤
//	│ availability  │ FL0008 │ sentinel token used where one is in scope│
//	│ interpolation │ FL0014 │ ${} left in an interpolated string       │
//	└───────────────┴────────┴──────────────────────────────────────────┘
//
// # Checking Ignores
//
// [Maps] implements the emitter's suppression hook, so rules never look
// at directives themselves:
//
//	maps := make(ignore.Maps)
//	maps[filename] = ignore.Build(pass.Fset, file)
//	emitter := diag.NewEmitter(pass.Fset, sink, maps)
//
// # Unused Ignore Detection
//
// The package tracks which ignore directives are used and reports
// unused ones as diagnostics:
//
//	//placeholderlint:ignore  // Reported: unused ignore directive
//	normalCode()              // No diagnostic to suppress
package ignore
