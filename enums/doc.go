// Package enums contains the lessons on enumerated types and annotations
// (items 30-37), translated to iota constant blocks with method sets,
// bit-flag sets, dense array lookups, interface-extensible operation sets,
// struct tags in place of annotations, and compile-time interface
// assertions in place of @Override.
package enums
