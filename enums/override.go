package enums

// Item 36: make "I meant to implement that" checkable.
//
// Java's @Override turns a typo'd override into a compile error. Go's
// interface satisfaction is structural and silent, so the typo just leaves
// the method unused. The compile-time assertion `var _ Iface = Type{}` is
// the Go spelling of @Override: it fails the build the moment a signature
// drifts.

// Greeter is the contract under discussion.
type Greeter interface {
	Greet(name string) string
}

// PoliteGreeter implements Greeter; the assertion below proves it and keeps
// proving it as the code evolves.
type PoliteGreeter struct{}

// Greet implements Greeter.
func (PoliteGreeter) Greet(name string) string { return "Good day, " + name }

var _ Greeter = PoliteGreeter{}

// typoGreeter wanted to implement Greeter but declared a different
// parameter type. Nothing complains; the method is simply dead. Adding
// `var _ Greeter = typoGreeter{}` here is exactly the error @Override would
// have raised.
type typoGreeter struct{}

func (typoGreeter) Greet(name []byte) string { return "Good day, " + string(name) }
