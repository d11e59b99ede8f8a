// Package errs covers error-handling practice: errors for expected
// failures and panics for bugs, comma-ok and Must variants at the API
// surface, stdlib sentinel reuse, translation at layer boundaries,
// documented error contracts, failure payloads, atomicity, and the
// discipline of never discarding an error silently.
package errs
