// Package classes contains the lessons on designing types and interfaces
// (items 13-22).
//
// Inheritance-centric lessons translate to embedding: Go's embedding has no
// virtual dispatch, so the failure modes shift (promoted methods silently
// bypassing outer overrides instead of superclass constructors calling into
// subclasses), but the cure is the same as the book's: composition with
// explicit forwarding, small interfaces, and immutable value types.
package classes
