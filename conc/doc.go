// Package conc covers concurrency practice: synchronizing shared state,
// keeping alien calls out of critical sections, bounded worker pools over
// bare goroutines, the stdlib's coordination primitives, thread-safety
// documentation, lazy initialization, scheduler independence, and managed
// goroutine lifecycles.
package conc
