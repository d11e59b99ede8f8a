// Package serial covers encoding practice: the API cost of making a
// representation serializable, logical versus physical serialized forms,
// defensive decoding, identity preservation across round-trips, and the
// proxy pattern for types whose invariants live in a constructor.
package serial
