package ui

// PoolItem records which identifier owns a slot and the frame it was last
// touched in.
type PoolItem struct {
	ID         ID
	LastUpdate uint32
}

// Pool is a fixed set of slots keyed by identifier. Lookups scan linearly;
// a miss claims the slot touched longest ago. The scan order is part of
// the contract: on equal timestamps the lowest index is evicted.
type Pool struct {
	name  string
	items []PoolItem
}

func NewPool(name string, n int) Pool {
	return Pool{name: name, items: make([]PoolItem, n)}
}

// Get returns the slot holding id, or -1.
func (p *Pool) Get(id ID) int {
	for i := range p.items {
		if p.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Init claims a slot for id and stamps it with frame. A free slot is taken
// first, otherwise the least recently touched one. Every occupied slot
// touched during frame is ineligible; if none is left the call is fatal.
func (p *Pool) Init(frame uint32, id ID) int {
	n, f := -1, frame
	for i := range p.items {
		if p.items[i].ID == 0 {
			n = i
			break
		}
		if p.items[i].LastUpdate < f {
			f = p.items[i].LastUpdate
			n = i
		}
	}
	expect(n > -1, ErrCapacity, "pool init", p.name)
	if old := p.items[n]; old.ID != 0 {
		Logger().Debug("pool eviction", "pool", p.name, "slot", n, "evicted", uint32(old.ID), "lastUpdate", old.LastUpdate)
	}
	p.items[n].ID = id
	p.Update(frame, n)
	return n
}

// Update stamps slot idx with frame, keeping it alive.
func (p *Pool) Update(frame uint32, idx int) {
	p.items[idx].LastUpdate = frame
}

// Clear releases slot idx so it is the first candidate for reuse.
func (p *Pool) Clear(idx int) { p.items[idx] = PoolItem{} }

// Item returns a copy of slot idx.
func (p *Pool) Item(idx int) PoolItem { return p.items[idx] }

func (p *Pool) Len() int { return len(p.items) }
