// Package effectivego is a catalogue of small, self-contained Go idiom
// examples, one file per lesson.
//
// Each lesson lives in the chapter package it belongs to and usually pairs a
// deliberately flawed rendition with a corrected one, so the difference can
// be read side by side. Lessons never depend on each other; the only shared
// code is the demo registry in catalog, which exists to avoid duplicating
// "list and run" boilerplate across chapters.
//
// Layout:
//
//   - catalog/    - demo registry used by the CLI (no lesson logic)
//   - construct/  - creating and destroying values (items 1-7)
//   - object/     - methods common to all values (items 8-12)
//   - classes/    - types, interfaces, composition (items 13-22)
//   - generics/   - generics (items 23-29)
//   - enums/      - iota enums and struct tags (items 30-37)
//   - methods/    - method design (items 38-44)
//   - basics/     - general programming (items 45-56)
//   - errs/       - error handling (items 57-65)
//   - conc/       - concurrency (items 66-73)
//   - serial/     - encoding and serialization (items 74-78)
//   - cmd/effectivego - CLI to list and run the demos
//
// Start with `go run ./cmd/effectivego list` and run any demo by slug or
// item number. The lesson code behind every demo is exercised by its
// package tests, so the catalogue doubles as a regression suite for the
// idioms it teaches.
package effectivego
