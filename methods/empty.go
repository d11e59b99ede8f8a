package methods

// Item 43: return empty slices or maps, not nil, when "nothing" is an
// ordinary answer.
//
// Go softens this: ranging over nil is safe, so nil returns rarely crash.
// The rule still earns its keep at encoding boundaries (nil marshals as
// JSON null, empty as []) and with callers that index or append
// conditionally.

// Inventory tracks item counts.
type Inventory struct {
	counts map[string]int
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{counts: map[string]int{}}
}

// Add records n units of item.
func (inv *Inventory) Add(item string, n int) {
	inv.counts[item] += n
}

// itemsNil returns nil when empty - the shape that surprises encoders.
func (inv *Inventory) itemsNil() []string {
	if len(inv.counts) == 0 {
		return nil
	}
	out := make([]string, 0, len(inv.counts))
	for item := range inv.counts {
		out = append(out, item)
	}
	return out
}

// Items always returns a non-nil slice; empty means empty everywhere,
// including in JSON.
func (inv *Inventory) Items() []string {
	out := make([]string, 0, len(inv.counts))
	for item := range inv.counts {
		out = append(out, item)
	}
	return out
}
