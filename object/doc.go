// Package object contains the lessons on methods common to all values
// (items 8-12): equality, hash-key derivation, Stringer, copying, and
// ordering. Go has no universal equals/hashCode pair to override; the
// contracts survive as conventions on Equal, Key/Hash, String, Copy and
// Compare methods, and breaking them corrupts maps and sorts just as
// surely.
package object
