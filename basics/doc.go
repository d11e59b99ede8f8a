// Package basics contains the general-programming lessons (items 45-56):
// variable scope, loops, stdlib fluency, numeric representation, pointers
// to primitives, stringly-typed data, concatenation, interface references,
// reflection restraint, cgo caution, optimization discipline, and naming.
package basics
