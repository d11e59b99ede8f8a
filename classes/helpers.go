package classes

// Item 22: prefer named top-level helper types to closures that capture
// state they don't need.
//
// Java's static-vs-inner member class distinction maps to "does this helper
// need the outer value?". A closure that captures its enclosing receiver
// pins the whole value in memory; a named type holding exactly the fields
// it needs doesn't.

// Ledger accumulates entries.
type Ledger struct {
	entries []int
	// audit holds the full history; only Sum needs entries.
	audit []string
}

// Add records an entry.
func (l *Ledger) Add(v int, note string) {
	l.entries = append(l.entries, v)
	l.audit = append(l.audit, note)
}

// SummerClosure returns a closure capturing the whole ledger - the audit
// trail comes along for the ride even though the sum never reads it.
func (l *Ledger) SummerClosure() func() int {
	return func() int {
		total := 0
		for _, v := range l.entries {
			total += v
		}
		return total
	}
}

// Summer is the named-helper version: it holds only the slice it needs.
type Summer struct {
	values []int
}

// NewSummer snapshots exactly the state the helper requires.
func (l *Ledger) NewSummer() Summer {
	vals := make([]int, len(l.entries))
	copy(vals, l.entries)
	return Summer{values: vals}
}

// Sum totals the snapshot.
func (s Summer) Sum() int {
	total := 0
	for _, v := range s.values {
		total += v
	}
	return total
}
