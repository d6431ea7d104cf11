package stats

import (
	"strconv"

	"addrstats/internal/types"
)

// Policy selects how records with empty fields are treated.
type Policy int

const (
	// KeepMalformed counts every record as a duplicate candidate and only
	// leaves invalid floors out of the floor table.
	KeepMalformed Policy = iota
	// SkipIncomplete drops records whose city or floor is empty before any
	// counting happens.
	SkipIncomplete
)

func (p Policy) String() string {
	switch p {
	case KeepMalformed:
		return "keep-malformed"
	case SkipIncomplete:
		return "skip-incomplete"
	}
	return "policy(" + strconv.Itoa(int(p)) + ")"
}

// WarnFunc receives per-record diagnostics.
type WarnFunc func(format string, args ...any)

// Tally is the result of aggregating one file.
type Tally struct {
	Duplicates *DuplicateTable
	Floors     *FloorTable
}

// NewTally returns a Tally with empty tables.
func NewTally() *Tally {
	return &Tally{
		Duplicates: NewDuplicateTable(),
		Floors:     NewFloorTable(),
	}
}

// Aggregator builds a Tally from a stream of records.
type Aggregator struct {
	policy Policy
	warn   WarnFunc
	tally  *Tally
}

// NewAggregator returns an Aggregator with fresh tables. warn may be nil.
func NewAggregator(policy Policy, warn WarnFunc) *Aggregator {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	return &Aggregator{policy: policy, warn: warn, tally: NewTally()}
}

// Add counts one record according to the aggregator's policy.
func (a *Aggregator) Add(rec types.AddressRecord) {
	if a.policy == SkipIncomplete && (rec.City == "" || rec.Floor == "") {
		return
	}
	a.tally.Duplicates.Add(rec)

	floor, ok := ParseFloor(rec.Floor)
	if !ok {
		a.warn("invalid floor value '%s' for city '%s'", rec.Floor, rec.City)
		return
	}
	a.tally.Floors.Add(rec.City, floor)
}

// Tally returns the tables built so far.
func (a *Aggregator) Tally() *Tally {
	return a.tally
}

// Aggregate runs every record from each through a new Aggregator. each is
// expected to call its argument once per record and return the first read
// error it meets.
func Aggregate(policy Policy, warn WarnFunc, each func(fn func(types.AddressRecord)) error) (*Tally, error) {
	agg := NewAggregator(policy, warn)
	if err := each(agg.Add); err != nil {
		return nil, err
	}
	return agg.Tally(), nil
}

// ParseFloor accepts only non-empty strings of ASCII decimal digits that fit
// in an int.
func ParseFloor(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
