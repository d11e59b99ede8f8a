package methods

// Item 41: Go has no overloading; don't fake it with `any`.
//
// Java's classify(Set) vs classify(Collection) confusion becomes, in Go, a
// single func(any) with a type switch whose arm order silently decides the
// answer. Prefer distinct names for distinct parameter types; when one
// entry point must take several types, order switch arms from most to
// least specific and keep them non-overlapping.

// classifyLoose type-switches on `any` - the arm order is load-bearing,
// which is exactly the overload-resolution surprise.
func classifyLoose(v any) string {
	switch v.(type) {
	case map[string]struct{}:
		return "set"
	case []string:
		return "list"
	case string:
		return "scalar"
	default:
		return "unknown"
	}
}

// Distinct names, no resolution rules to remember.

// ClassifySet reports "set".
func ClassifySet(map[string]struct{}) string { return "set" }

// ClassifyList reports "list".
func ClassifyList([]string) string { return "list" }

// ClassifyScalar reports "scalar".
func ClassifyScalar(string) string { return "scalar" }
