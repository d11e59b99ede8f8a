package basics

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Item 52: refer to values by their interface.
//
// A function that takes *bytes.Buffer works with exactly one producer; one
// that takes io.Reader works with files, network connections, strings, and
// every test fixture ever written. Declare parameters, fields and variables
// with the least specific type that has the behavior you use.

// countLinesConcrete is needlessly concrete - callers must marshal their
// data into a bytes.Buffer first.
func countLinesConcrete(buf *bytes.Buffer) int {
	return countLines(buf)
}

// CountLines accepts any reader.
func CountLines(r io.Reader) int {
	return countLines(r)
}

func countLines(r io.Reader) int {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
	}
	return n
}

// LineSource demonstrates the same rule for variables: the declared type is
// the interface even though the initializer is concrete.
func LineSource(text string) io.Reader {
	var r io.Reader = strings.NewReader(text)
	return r
}
