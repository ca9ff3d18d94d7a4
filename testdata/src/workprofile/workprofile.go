// Package workprofile contains test fixtures for the availability rule with
// a custom profile: the github.com/example/work token instead of context.
package workprofile

import (
	"context"

	"github.com/example/work"
)

func step(p work.Progress) error { return nil }

// ===== SHOULD REPORT =====

// [BAD]: Package-level sentinel variable
func badNone(p work.Progress) {
	_ = step(work.None) // want `work.None, work.Detached and work.Tokens.Empty must not be used when a work.Progress is available`
}

// [BAD]: Package-level sentinel function
func badDetached(p work.Progress) {
	_ = step(work.Detached()) // want `work.None, work.Detached and work.Tokens.Empty`
}

// [BAD]: Sentinel selected through its type
func badTypeMember(p work.Progress) {
	_ = step(work.Tokens.Empty(work.Tokens{})) // want `work.None, work.Detached and work.Tokens.Empty`
}

// [BAD]: Sentinel selected through a pointer method expression
func badPointerMethodExpr(p work.Progress) {
	_ = step((*work.Tokens).Empty(&work.Tokens{})) // want `work.None, work.Detached and work.Tokens.Empty`
}

// [BAD]: Parameter is-a token
func badReporter(r work.Reporter) {
	_ = step(work.None) // want `work.None, work.Detached and work.Tokens.Empty`
}

// [BAD]: Token value type
func badSignal(s work.Signal) {
	_ = step(work.Detached()) // want `work.None, work.Detached and work.Tokens.Empty`
}

// [BAD]: Method context
func badJob(j *work.Job) {
	_ = step(work.None) // want `work.None, work.Detached and work.Tokens.Empty`
}

// [BAD]: Returns a sequence of tasks
func badTasks() []func(work.Progress) error {
	_ = step(work.None) // want `work.None, work.Detached and work.Tokens.Empty`
	return nil
}

// [BAD]: Task closure
func badTaskClosure() error {
	return work.Run(work.Detached(), func(p work.Progress) error {
		return step(work.None) // want `work.None, work.Detached and work.Tokens.Empty`
	})
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: No token available
func goodNoToken() error {
	return step(work.None)
}

// [GOOD]: Sentinel selected through a value
//
// Only the declaring type itself is a holder.
func goodValueReceiver(p work.Progress, t work.Tokens) {
	_ = step(t.Empty())
}

// [GOOD]: context is not the token of this profile
func goodContext(ctx context.Context) {
	_ = ctx
	_ = context.Background()
}

// [GOOD]: Using the available token
func goodUsesToken(p work.Progress) {
	_ = step(p)
}
