package report

import (
	"bytes"
	"testing"
	"time"

	"addrstats/internal/stats"
	"addrstats/internal/types"
)

func TestWrite(t *testing.T) {
	agg := stats.NewAggregator(stats.KeepMalformed, nil)
	for _, r := range []types.AddressRecord{
		{City: "Paris", Floor: "9", House: "1", Street: "Main"},
		{City: "Paris", Floor: "3", House: "10", Street: "Main"},
		{City: "Lyon", Floor: "12", House: "2", Street: "Rue"},
		{City: "Paris", Floor: "3", House: "10", Street: "Main"},
		{City: "Lyon", Floor: "2", House: "3", Street: "Rue"},
		{City: "Nice", Floor: "x", House: "4", Street: "Bd"},
		{City: "Nice", Floor: "x", House: "4", Street: "Bd"},
	} {
		agg.Add(r)
	}

	var buf bytes.Buffer
	Write(&buf, agg.Tally(), 1234*time.Millisecond)

	want := `
File processing statistics:

City: Paris
   Floors: 3 - Buildings: 2
   Floors: 9 - Buildings: 1

City: Lyon
   Floors: 2 - Buildings: 1
   Floors: 12 - Buildings: 1

Duplicate records:
   Record: {city: Paris, floor: 3, house: 10, street: Main} (x2)
   Record: {city: Nice, floor: x, house: 4, street: Bd} (x2)

Processing time: 1.23 seconds

`
	if got := buf.String(); got != want {
		t.Errorf("report mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, stats.NewTally(), 0)

	want := "\nFile processing statistics:\n\nDuplicate records:\n\nProcessing time: 0.00 seconds\n\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
