package generics

// Item 24: eliminate unchecked assertions.
//
// Where `any` is unavoidable (decoding, plugin registries), every assertion
// uses the comma-ok form and the failure is handled exactly once, at the
// boundary. A bare assertion deep in the call graph is the Go spelling of
// an unchecked warning someone suppressed without proof.

// DecodeCount extracts an int from a decoded map - the boundary where `any`
// enters the program. The comma-ok checks are concentrated here so callers
// beyond this point deal only in typed values.
func DecodeCount(payload map[string]any) (int, bool) {
	raw, ok := payload["count"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case int:
		return v, true
	case float64: // JSON numbers decode as float64
		return int(v), true
	default:
		return 0, false
	}
}

// uncheckedCount is the suppressed-warning version - DON'T DO THIS. It
// panics on the first payload whose decoder chose float64.
func uncheckedCount(payload map[string]any) int {
	return payload["count"].(int)
}
