package report

import (
	"fmt"
	"io"
	"slices"
	"time"

	"golang.org/x/exp/maps"

	"addrstats/internal/stats"
)

// Write prints the floor histogram per city, the duplicated records and the
// processing time.
func Write(w io.Writer, tally *stats.Tally, elapsed time.Duration) {
	fmt.Fprintln(w, "\nFile processing statistics:")

	for _, city := range tally.Floors.Cities() {
		byFloor := tally.Floors.Floors(city)
		floors := maps.Keys(byFloor)
		slices.Sort(floors)

		fmt.Fprintf(w, "\nCity: %s\n", city)
		for _, floor := range floors {
			fmt.Fprintf(w, "   Floors: %d - Buildings: %d\n", floor, byFloor[floor])
		}
	}

	fmt.Fprintln(w, "\nDuplicate records:")
	for _, e := range tally.Duplicates.Duplicates() {
		fmt.Fprintf(w, "   Record: %s (x%d)\n", e.Record, e.Count)
	}

	fmt.Fprintf(w, "\nProcessing time: %.2f seconds\n\n", elapsed.Seconds())
}
