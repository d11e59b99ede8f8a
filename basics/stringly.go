package basics

import "fmt"

// Item 50: avoid strings where richer types apply.
//
// Stringly-typed state invites typos the compiler cannot see and
// comparisons that mean nothing ("2" > "10"). A named type with constants
// restricts the value space; parsing happens once at the boundary.

// stateByString is the stringly version - every caller can invent a state.
type stateByString struct {
	state string
}

func (s *stateByString) transition(to string) error {
	// The guard is a runtime string comparison; "Running" (typo'd case)
	// slides right past any switch that forgot an arm.
	if s.state == to {
		return fmt.Errorf("basics: already %s", to)
	}
	s.state = to
	return nil
}

// JobState is the typed version.
type JobState int

// The states.
const (
	JobPending JobState = iota
	JobRunning
	JobDone
)

var jobStateNames = [...]string{"pending", "running", "done"}

// String returns the state's name.
func (s JobState) String() string {
	if s < JobPending || s > JobDone {
		return "JobState(?)"
	}
	return jobStateNames[s]
}

// ParseJobState converts external text to the typed state, once.
func ParseJobState(raw string) (JobState, error) {
	for i, name := range jobStateNames {
		if name == raw {
			return JobState(i), nil
		}
	}
	return 0, fmt.Errorf("basics: unknown job state %q", raw)
}

// TypedJob transitions through typed states; invalid states cannot be
// represented past the parse boundary.
type TypedJob struct {
	State JobState
}

// Advance moves to the next state; Done is terminal.
func (j *TypedJob) Advance() bool {
	if j.State >= JobDone {
		return false
	}
	j.State++
	return true
}
