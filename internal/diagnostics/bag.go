package diagnostics

// Bag accumulates diagnostics in append order. Each candidate gets its own
// Bag so that parallel extraction never shares an accumulator; bags are
// merged into the per-pass list when the candidate is done. The bag never
// deduplicates, reorders, or suppresses entries.
type Bag struct {
	items []Diagnostic
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add appends a diagnostic.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// HasErrors reports whether any collected diagnostic is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Descriptor.Severity >= SeverityError {
			return true
		}
	}
	return false
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the collected diagnostics in append order. The returned
// slice aliases the bag's storage and must not be modified.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends all diagnostics from other, preserving both orders.
func (b *Bag) Merge(other *Bag) {
	b.items = append(b.items, other.items...)
}
