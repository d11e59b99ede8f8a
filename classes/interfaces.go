package classes

import "strings"

// Item 18: prefer small interfaces, compose them, and ship a skeletal
// implementation for the boring parts.

// Singer produces a vocal line.
type Singer interface {
	Sing(song string) string
}

// Songwriter produces new material.
type Songwriter interface {
	Compose(chords int) string
}

// SingerSongwriter composes the two roles; Go interface embedding is the
// direct analogue of interface extension.
type SingerSongwriter interface {
	Singer
	Songwriter
}

// SkeletalEntry is a skeletal implementation of a key/value entry: embed it
// and supply only the primitives. It carries the derived behavior
// (formatting, equality) so implementations don't repeat it.
type SkeletalEntry struct {
	K, V string
}

// Key returns the key.
func (e SkeletalEntry) Key() string { return e.K }

// Value returns the value.
func (e SkeletalEntry) Value() string { return e.V }

// String renders "key=value"; derived once, inherited by embedding.
func (e SkeletalEntry) String() string {
	var b strings.Builder
	b.WriteString(e.K)
	b.WriteByte('=')
	b.WriteString(e.V)
	return b.String()
}
