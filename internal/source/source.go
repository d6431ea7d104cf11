// Package source reads address records out of files and aggregates them into
// duplicate and floor tables. Each file format is a separate Source.
package source

import (
	"fmt"
	"strings"

	"addrstats/internal/stats"
	"addrstats/internal/types"
)

// Source processes one file into a fresh Tally. A nil Tally always comes
// with a non-nil error.
type Source interface {
	Process(path string) (*stats.Tally, error)
}

// Kind names a file format.
type Kind string

const (
	Markup    Kind = "xml"
	Delimited Kind = "csv"
	Shapefile Kind = "shapefile"
)

// ReadError reports that a whole file could not be read or parsed.
type ReadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("process %s file %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// recordFrom builds a trimmed record from a raw field lookup.
func recordFrom(get func(name string) string) types.AddressRecord {
	return types.FromFields(func(name string) string {
		return strings.TrimSpace(get(name))
	})
}
