// Package display holds the named text regions a view renders.
//
// Writes to a region that does not exist are silently dropped. Partial
// layouts are normal, so a missing region is never an error.
package display

import "sort"

// Region is a single writable text area. A nil *Region accepts writes and
// reads back empty.
type Region struct {
	text     string
	detached bool
}

func (r *Region) Set(text string) {
	if r == nil {
		return
	}
	r.text = text
}

func (r *Region) Text() string {
	if r == nil {
		return ""
	}
	return r.text
}

// Detached reports whether the region was removed from its board.
func (r *Region) Detached() bool {
	return r != nil && r.detached
}

type Board struct {
	regions map[string]*Region
}

func NewBoard(ids ...string) *Board {
	b := &Board{regions: make(map[string]*Region, len(ids))}
	for _, id := range ids {
		b.Add(id)
	}
	return b
}

// Add registers id and returns its region. Adding an existing id returns the
// region already registered.
func (b *Board) Add(id string) *Region {
	if r, ok := b.regions[id]; ok {
		return r
	}
	r := &Region{}
	b.regions[id] = r
	return r
}

// Region looks up id, returning nil when it is absent.
func (b *Board) Region(id string) *Region {
	if b == nil {
		return nil
	}
	return b.regions[id]
}

func (b *Board) Has(id string) bool {
	return b.Region(id) != nil
}

func (b *Board) Set(id, text string) {
	b.Region(id).Set(text)
}

func (b *Board) Get(id string) string {
	return b.Region(id).Text()
}

// Detach removes id from the board. Holders of the old *Region can still
// write to it; nobody will see the result.
func (b *Board) Detach(id string) {
	if b == nil {
		return
	}
	if r, ok := b.regions[id]; ok {
		r.detached = true
		delete(b.regions, id)
	}
}

// IDs returns the registered region ids in sorted order.
func (b *Board) IDs() []string {
	if b == nil {
		return nil
	}
	ids := make([]string, 0, len(b.regions))
	for id := range b.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
