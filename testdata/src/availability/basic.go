// Package availability contains test fixtures for the availability rule.
// This file covers daily patterns: context parameters, method contexts,
// closures and ignore directives.
// See shape.go for return-shape and structural patterns.
package availability

import (
	"context"
	"fmt"
	"net/http"
)

func doWork(ctx context.Context) error {
	_ = ctx
	return nil
}

// ===== SHOULD REPORT =====

// [BAD]: Background with a context parameter
//
// The caller already handed over a context.
func badBackground(ctx context.Context) {
	_ = doWork(context.Background()) // want `context.Background and context.TODO must not be used when a context.Context is available`
}

// [BAD]: TODO with a context parameter
func badTODO(ctx context.Context) {
	_ = doWork(context.TODO()) // want `context.Background and context.TODO must not be used when a context.Context is available`
}

// [BAD]: Each usage is reported
func badTwice(ctx context.Context) {
	_ = doWork(context.Background()) // want `context.Background and`
	_ = doWork(context.TODO())       // want `context.Background and`
}

// [BAD]: Blank context parameter
//
// The parameter is ignored, but a context is still available to the caller.
func badBlankParam(_ context.Context) {
	_ = doWork(context.Background()) // want `context.Background and`
}

// [BAD]: Unnamed context parameter
func badUnnamedParam(context.Context, string) {
	_ = doWork(context.TODO()) // want `context.Background and`
}

// [BAD]: Variadic context parameter
func badVariadic(ctxs ...context.Context) {
	_ = doWork(context.Background()) // want `context.Background and`
}

// [BAD]: Context after other parameters
func badLaterParam(name string, n int, ctx context.Context) {
	fmt.Println(name, n)
	_ = doWork(context.Background()) // want `context.Background and`
}

// [BAD]: Function value instead of call
func badFuncValue(ctx context.Context) {
	newCtx := context.Background // want `context.Background and`
	_ = doWork(newCtx())
}

// [BAD]: Derived from a sentinel
func badDerived(ctx context.Context) {
	child, cancel := context.WithCancel(context.Background()) // want `context.Background and`
	defer cancel()
	_ = doWork(child)
}

// [BAD]: HTTP handler
//
// *http.Request carries the request context.
func badHandler(w http.ResponseWriter, r *http.Request) {
	_ = doWork(context.Background()) // want `context.Background and`
	w.WriteHeader(http.StatusOK)
}

// [BAD]: Request passed by value
func badRequestValue(r http.Request) {
	_ = doWork(context.TODO()) // want `context.Background and`
}

// [BAD]: Closure inside a function with a context
//
// The enclosing function's parameters are in scope of the closure.
func badClosure(ctx context.Context) {
	go func() {
		_ = doWork(context.Background()) // want `context.Background and`
	}()
}

// [BAD]: Nested closures
func badNestedClosure(ctx context.Context) {
	outer := func() func() {
		return func() {
			_ = doWork(context.TODO()) // want `context.Background and`
		}
	}
	outer()()
}

// [BAD]: Closure with its own context parameter
func badClosureParam() {
	f := func(ctx context.Context) {
		_ = doWork(context.Background()) // want `context.Background and`
	}
	f(nil)
}

// [BAD]: Handler closure
func badHandlerFunc() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = doWork(context.Background()) // want `context.Background and`
	}
}

type server struct {
	name string
}

// [BAD]: Method with a context parameter
func (s *server) badMethod(ctx context.Context) {
	fmt.Println(s.name)
	_ = doWork(context.TODO()) // want `context.Background and`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: No context available
func goodNoParam() {
	_ = doWork(context.Background())
}

// [GOOD]: main creates the root context
func goodRoot() context.Context {
	return context.Background()
}

// [GOOD]: Closure without context inside a function without context
func goodClosureNoCtx() {
	f := func() {
		_ = doWork(context.TODO())
	}
	f()
}

// [GOOD]: Context slice is not a context
func goodCtxSlice(ctxs []context.Context) {
	_ = doWork(context.Background())
}

// [GOOD]: Unrelated parameters
func goodOtherParams(w http.ResponseWriter, name string) {
	_ = doWork(context.Background())
}

// [GOOD]: Method without context
func (s *server) goodMethod() {
	_ = doWork(context.Background())
}

// [GOOD]: Package-level initializer
//
// Not inside any function.
var rootCtx = context.Background()

// [GOOD]: Package-level closure without context
var rootFunc = func() {
	_ = doWork(context.TODO())
}

type fakeContext struct{}

func (fakeContext) Background() context.Context { return nil }

// [GOOD]: Shadowed package name
//
// "context" is a local value here, not the context package.
func goodShadowed(ctx context.Context) {
	context := fakeContext{}
	_ = doWork(context.Background())
}

// Background mirrors the sentinel's name in this package.
func Background() context.Context { return nil }

// [GOOD]: Same name, different declaration
func goodSameName(ctx context.Context) {
	_ = doWork(Background())
}

// [GOOD]: Using the available context
func goodUsesCtx(ctx context.Context) {
	_ = doWork(ctx)
}

// [GOOD]: Ignore directive - same line
func goodIgnoredSameLine(ctx context.Context) {
	_ = doWork(context.Background()) //placeholderlint:ignore
}

// [GOOD]: Ignore directive - previous line
func goodIgnoredPreviousLine(ctx context.Context) {
	//placeholderlint:ignore availability
	_ = doWork(context.Background())
}

// [GOOD]: Ignore directive - by ID with reason
func goodIgnoredByID(ctx context.Context) {
	_ = doWork(context.TODO()) //placeholderlint:ignore FL0008 - detached audit log
}
