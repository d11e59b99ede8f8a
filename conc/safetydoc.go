package conc

import "sync"

// Item 70: document thread safety.
//
// The useful taxonomy has three levels and each exemplar below states its
// level in the type's doc comment, where godoc shows it. Silence is the
// worst documentation: callers either over-lock or corrupt state.

// Endpoint is immutable after construction and therefore safe for
// unrestricted concurrent use.
type Endpoint struct {
	host string
	port int
}

// NewEndpoint constructs an immutable endpoint.
func NewEndpoint(host string, port int) Endpoint {
	return Endpoint{host: host, port: port}
}

// Host returns the host.
func (e Endpoint) Host() string { return e.host }

// Port returns the port.
func (e Endpoint) Port() int { return e.port }

// HitCounter is safe for concurrent use by multiple goroutines; no
// external synchronization is required.
type HitCounter struct {
	mu   sync.Mutex
	hits map[string]int
}

// NewHitCounter returns an empty counter.
func NewHitCounter() *HitCounter {
	return &HitCounter{hits: map[string]int{}}
}

// Hit records one hit for key.
func (c *HitCounter) Hit(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits[key]++
}

// Count reports hits for key.
func (c *HitCounter) Count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits[key]
}

// ReportBuilder is NOT safe for concurrent use. Callers must confine an
// instance to one goroutine or provide their own synchronization; the
// usual pattern is build single-threaded, then share the resulting string.
type ReportBuilder struct {
	lines []string
}

// AddLine appends a line.
func (b *ReportBuilder) AddLine(line string) { b.lines = append(b.lines, line) }

// Build renders the report.
func (b *ReportBuilder) Build() string {
	out := ""
	for _, l := range b.lines {
		out += l + "\n"
	}
	return out
}
