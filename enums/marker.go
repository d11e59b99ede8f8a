package enums

// Item 37: prefer marker interfaces to marker tags when the mark should be
// a type.
//
// A marker interface lets the compiler reject unmarked types at the call
// site; a tag (struct tag, registry entry) is checked at run time or never.
// The unexported method seals the marker: only types in this package, or
// types embedding one of its markers, can carry it.

// Redactable marks types whose String output is safe to log verbatim.
// The unexported method makes the marker non-forgeable outside the package.
type Redactable interface {
	redactable()
}

// RedactableValue is embedded by types opting in to the marker.
type RedactableValue struct{}

func (RedactableValue) redactable() {}

// PublicEvent carries the marker by embedding.
type PublicEvent struct {
	RedactableValue
	Name string
}

// SecretEvent does not carry the marker; passing it to LogValue is a
// compile error, which is the entire point of marking with a type.
type SecretEvent struct {
	Token string
}

// LogValue accepts only marked types.
func LogValue(v Redactable) string {
	type named interface{ GetName() string }
	if n, ok := v.(named); ok {
		return n.GetName()
	}
	return "redactable value"
}

// GetName returns the event name.
func (e PublicEvent) GetName() string { return e.Name }
