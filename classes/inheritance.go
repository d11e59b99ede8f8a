package classes

// Item 17: design and document for extension, or prohibit it.
//
// The Java trap is a superclass constructor calling a method the subclass
// overrides before the subclass's fields exist. Go's embedding version: an
// outer type shadows a method the base also calls internally, and the base
// keeps calling its own. If a type is meant to be extended, expose explicit
// hook functions; if not, keep it sealed behind unexported fields.

// Job runs a unit of work with an internal before-hook. The base calls
// `before` through a field, never through a method that could be shadowed,
// so extension behavior is explicit and documented.
type Job struct {
	// BeforeRun, when non-nil, runs before each Run. This is the only
	// supported extension point.
	BeforeRun func()

	runs int
}

// Run executes the job once.
func (j *Job) Run() {
	if j.BeforeRun != nil {
		j.BeforeRun()
	}
	j.runs++
}

// Runs reports how many times the job executed.
func (j *Job) Runs() int { return j.runs }

// shadowedJob demonstrates the embedding trap - DON'T extend by shadowing.
// Its Run never affects the base's run counter unless it forwards, and the
// base's own callers (promoted method sets, stored interfaces) never reach
// the shadow.
type shadowedJob struct {
	Job
	outerRuns int
}

func (s *shadowedJob) Run() {
	s.outerRuns++
	// Forgetting this forward is the classic bug; with it, the shadow is
	// just a clumsy hook.
	s.Job.Run()
}
