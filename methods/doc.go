// Package methods contains the lessons on designing method signatures and
// contracts (items 38-44): validate parameters at the boundary, copy
// mutable inputs defensively, keep parameter lists short, avoid fake
// overloads, use variadics with a required first argument, and return
// empty collections rather than nil when the distinction carries no
// meaning.
package methods
