package entities

// PoolEntry pairs a rolled value with the die that produced it. A nil
// Die marks a conjured echo value with no physical source.
type PoolEntry struct {
	Value int
	Die   *Die
}

// LivePool is the ordered collection of rolled values a player can
// still bank this round. Entries are removed as insults are banked and
// appended by echo and steal mechanics. Hooks mutate it only through
// SetValue, which replaces the value at an index and nothing else.
type LivePool struct {
	entries []PoolEntry
}

// NewLivePool creates an empty pool.
func NewLivePool() *LivePool {
	return &LivePool{}
}

// Append adds a rolled value with its source die (nil for echoes).
func (p *LivePool) Append(value int, die *Die) {
	p.entries = append(p.entries, PoolEntry{Value: value, Die: die})
}

// Len returns the number of entries, blanks included.
func (p *LivePool) Len() int {
	return len(p.entries)
}

// Entry returns the entry at index i.
func (p *LivePool) Entry(i int) PoolEntry {
	return p.entries[i]
}

// SetValue replaces the value at index i, keeping the source die. This
// is the only mutation hooks are allowed.
func (p *LivePool) SetValue(i, value int) {
	p.entries[i].Value = value
}

// Values returns every entry value in order, blank sentinels included.
func (p *LivePool) Values() []int {
	values := make([]int, len(p.entries))
	for i, e := range p.entries {
		values[i] = e.Value
	}
	return values
}

// LiveValues returns the usable (non-blank) values in order.
func (p *LivePool) LiveValues() []int {
	values := make([]int, 0, len(p.entries))
	for _, e := range p.entries {
		if e.Value > 0 {
			values = append(values, e.Value)
		}
	}
	return values
}

// RemoveFirst removes and returns the first entry with the given value.
// The first-match-by-value rule is a banking contract: the pairing of
// value consumption to die identity must be order-stable.
func (p *LivePool) RemoveFirst(value int) (PoolEntry, bool) {
	for i, e := range p.entries {
		if e.Value == value {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return e, true
		}
	}
	return PoolEntry{}, false
}

// RemoveHighest removes and returns the entry holding the highest
// usable value, for steal resolution. Returns false if the pool has no
// usable values.
func (p *LivePool) RemoveHighest() (PoolEntry, bool) {
	best := -1
	for i, e := range p.entries {
		if e.Value > 0 && (best < 0 || e.Value > p.entries[best].Value) {
			best = i
		}
	}
	if best < 0 {
		return PoolEntry{}, false
	}
	e := p.entries[best]
	p.entries = append(p.entries[:best], p.entries[best+1:]...)
	return e, true
}
