package enums

import (
	"fmt"
	"reflect"
	"strings"
)

// Item 35: struct tags and method discovery are Go's annotations.
//
// The original defines a @Test annotation and a reflective runner. Go
// splits the idea in two: struct tags carry declarative metadata the way
// annotations carry parameters, and name-based method discovery (exactly
// how package testing finds TestXxx) replaces annotation scanning.

// CheckResult tallies a reflective check run.
type CheckResult struct {
	Passed, Failed int
	Failures       []string
}

// RunChecks invokes every method of v named Check* with signature
// func() error and tallies the outcomes. Methods with other signatures are
// skipped, mirroring how annotation processors ignore non-conforming
// targets.
func RunChecks(v any) CheckResult {
	var res CheckResult
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	for i := range rt.NumMethod() {
		m := rt.Method(i)
		if !strings.HasPrefix(m.Name, "Check") {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || m.Type.Out(0) != reflect.TypeFor[error]() {
			continue
		}
		out := rv.Method(i).Call(nil)
		if err, _ := out[0].Interface().(error); err != nil {
			res.Failed++
			res.Failures = append(res.Failures, m.Name+": "+err.Error())
		} else {
			res.Passed++
		}
	}
	return res
}

// FieldDocs reads `doc:"..."` struct tags, the declarative half of the
// annotation translation.
func FieldDocs(v any) map[string]string {
	rt := reflect.TypeOf(v)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	out := map[string]string{}
	if rt.Kind() != reflect.Struct {
		return out
	}
	for i := range rt.NumField() {
		f := rt.Field(i)
		if doc, ok := f.Tag.Lookup("doc"); ok {
			out[f.Name] = doc
		}
	}
	return out
}

// SampleChecks is a check suite for the runner, with one deliberate failure.
type SampleChecks struct{}

// CheckAddition passes.
func (SampleChecks) CheckAddition() error {
	if 1+1 != 2 {
		return fmt.Errorf("arithmetic is broken")
	}
	return nil
}

// CheckDeliberateFailure fails, so the tally has something to count.
func (SampleChecks) CheckDeliberateFailure() error {
	return fmt.Errorf("deliberate failure")
}

// CheckWrongShape has the wrong signature and must be skipped.
func (SampleChecks) CheckWrongShape(n int) error { return nil }
