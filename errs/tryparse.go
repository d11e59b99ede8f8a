package errs

import "fmt"

// Item 59: avoid unnecessary error returns.
//
// When callers can cheaply ask first, give them a comma-ok form alongside
// the error form; when the input is a compile-time constant, give them a
// Must variant so initialization stays a one-liner.

// Severity is a parsed log severity.
type Severity int

// The severities.
const (
	SevDebug Severity = iota
	SevInfo
	SevWarn
	SevError
)

var severityNames = map[string]Severity{
	"debug": SevDebug,
	"info":  SevInfo,
	"warn":  SevWarn,
	"error": SevError,
}

// ParseSeverity converts external text, reporting failures as errors.
func ParseSeverity(raw string) (Severity, error) {
	s, ok := LookupSeverity(raw)
	if !ok {
		return 0, fmt.Errorf("errs: unknown severity %q", raw)
	}
	return s, nil
}

// LookupSeverity is the comma-ok form for callers who just want to probe.
func LookupSeverity(raw string) (Severity, bool) {
	s, ok := severityNames[raw]
	return s, ok
}

// MustParseSeverity is for constant inputs; a bad constant is a bug, so it
// panics. Package-level `var level = MustParseSeverity("warn")` stays tidy.
func MustParseSeverity(raw string) Severity {
	s, err := ParseSeverity(raw)
	if err != nil {
		panic(err)
	}
	return s
}
