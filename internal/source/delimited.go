package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/spf13/afero"

	"addrstats/internal/stats"
	"addrstats/internal/types"
)

const utf8BOM = "\ufeff"

// DelimitedSource reads ';'-separated text with a header row naming the
// columns. Rows with an empty or non-numeric floor still count as records.
type DelimitedSource struct {
	Fs    afero.Fs
	Comma rune
	Warn  stats.WarnFunc
}

// NewDelimited returns a DelimitedSource for ';'-separated files.
func NewDelimited(fs afero.Fs, warn stats.WarnFunc) *DelimitedSource {
	return &DelimitedSource{Fs: fs, Comma: ';', Warn: warn}
}

func (s *DelimitedSource) Process(path string) (*stats.Tally, error) {
	tally, err := stats.Aggregate(stats.KeepMalformed, s.Warn, func(fn func(types.AddressRecord)) error {
		return s.Each(path, fn)
	})
	if err != nil {
		return nil, &ReadError{Kind: Delimited, Path: path, Err: err}
	}
	return tally, nil
}

// Each calls fn for every data row of the file at path.
func (s *DelimitedSource) Each(path string, fn func(types.AddressRecord)) error {
	f, err := s.Fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = s.Comma
	r.FieldsPerRecord = -1
	// Quotes inside unquoted fields are literal text, as in street names.
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil // empty file, no rows
	}
	if err != nil {
		return err
	}
	columns := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		// A repeated column name refers to its last occurrence.
		columns[strings.TrimSpace(h)] = i
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(recordFrom(func(name string) string {
			if i, ok := columns[name]; ok && i < len(row) {
				return row[i]
			}
			return ""
		}))
	}
}
