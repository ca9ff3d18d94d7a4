// Package work is a stub of a cooperative task library with its own
// cancellation token.
package work

// Progress is the token a cooperative task receives.
type Progress interface {
	Canceled() bool
}

// Reporter is-a Progress.
type Reporter interface {
	Progress
	Report(done float64)
}

// Signal is a cancellation value passed by value.
type Signal struct {
	canceled bool
}

// Job carries the Progress of the job it describes.
type Job struct {
	Name string
	p    Progress
}

// Progress returns the job's token.
func (j *Job) Progress() Progress { return j.p }

type never struct{}

func (never) Canceled() bool { return false }

// None is a Progress that is never canceled.
var None Progress = never{}

// Detached returns a Progress that is never canceled.
func Detached() Progress { return never{} }

// Tokens groups the placeholder tokens.
type Tokens struct{}

// Empty returns a Progress that is never canceled.
func (Tokens) Empty() Progress { return never{} }

// Run runs task with p.
func Run(p Progress, task func(Progress) error) error {
	return task(p)
}
