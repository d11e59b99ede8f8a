package errs

import (
	"bufio"
	"fmt"
	"io"
)

// Item 65: don't ignore errors.
//
// `_ = f()` is the empty catch block. The classic victim is a buffered
// writer: every Write succeeds into the buffer and the only chance to hear
// about the disk saying no is the final Flush.

// writeReportSloppy discards the flush error - DON'T DO THIS. The caller
// is told the report was written even when none of it reached w.
func writeReportSloppy(w io.Writer, lines []string) {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		fmt.Fprintln(bw, l)
	}
	_ = bw.Flush()
}

// WriteReport propagates every failure, including the flush.
func WriteReport(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := fmt.Fprintln(bw, l); err != nil {
			return fmt.Errorf("errs: write report: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("errs: flush report: %w", err)
	}
	return nil
}
