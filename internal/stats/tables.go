package stats

import (
	"golang.org/x/exp/maps"

	"addrstats/internal/types"
)

// DuplicateTable counts occurrences of each exact record. Records are kept in
// the order they were first seen.
type DuplicateTable struct {
	counts map[types.AddressRecord]int
	order  []types.AddressRecord
}

// DuplicateEntry is a record together with its occurrence count.
type DuplicateEntry struct {
	Record types.AddressRecord
	Count  int
}

// NewDuplicateTable returns an empty table.
func NewDuplicateTable() *DuplicateTable {
	return &DuplicateTable{counts: make(map[types.AddressRecord]int)}
}

// Add registers one occurrence of rec.
func (d *DuplicateTable) Add(rec types.AddressRecord) {
	if _, ok := d.counts[rec]; !ok {
		d.order = append(d.order, rec)
	}
	d.counts[rec]++
}

// Count returns how many times rec was added.
func (d *DuplicateTable) Count(rec types.AddressRecord) int {
	return d.counts[rec]
}

// Len returns the number of distinct records.
func (d *DuplicateTable) Len() int {
	return len(d.order)
}

// Entries returns every distinct record with its count, in first-seen order.
func (d *DuplicateTable) Entries() []DuplicateEntry {
	out := make([]DuplicateEntry, 0, len(d.order))
	for _, rec := range d.order {
		out = append(out, DuplicateEntry{Record: rec, Count: d.counts[rec]})
	}
	return out
}

// Duplicates returns only the records seen more than once.
func (d *DuplicateTable) Duplicates() []DuplicateEntry {
	var out []DuplicateEntry
	for _, rec := range d.order {
		if n := d.counts[rec]; n > 1 {
			out = append(out, DuplicateEntry{Record: rec, Count: n})
		}
	}
	return out
}

// FloorTable is a per-city histogram of building counts keyed by floor number.
type FloorTable struct {
	byCity map[string]map[int]int
	cities []string
	size   int
}

// NewFloorTable returns an empty histogram.
func NewFloorTable() *FloorTable {
	return &FloorTable{byCity: make(map[string]map[int]int)}
}

// Add counts one building with the given number of floors in city.
func (f *FloorTable) Add(city string, floor int) {
	floors, ok := f.byCity[city]
	if !ok {
		floors = make(map[int]int)
		f.byCity[city] = floors
		f.cities = append(f.cities, city)
	}
	if _, seen := floors[floor]; !seen {
		f.size++
	}
	floors[floor]++
}

// Count returns the number of buildings in city with the given floor count.
func (f *FloorTable) Count(city string, floor int) int {
	return f.byCity[city][floor]
}

// Cities returns cities in the order they first appeared.
func (f *FloorTable) Cities() []string {
	return append([]string(nil), f.cities...)
}

// Floors returns a copy of the floor -> count map for city, or nil if the
// city was never seen.
func (f *FloorTable) Floors(city string) map[int]int {
	return maps.Clone(f.byCity[city])
}

// Len returns the number of distinct (city, floor) pairs.
func (f *FloorTable) Len() int {
	return f.size
}
