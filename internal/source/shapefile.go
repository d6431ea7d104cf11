package source

import (
	"fmt"
	"strings"

	shp "github.com/jonas-p/go-shp"
	"github.com/spf13/afero"

	"addrstats/internal/stats"
	"addrstats/internal/types"
)

// ShapefileSource reads address attributes from the DBF table that sits next
// to a .shp file. Geometry is read but ignored.
type ShapefileSource struct {
	Fs   afero.Fs
	Warn stats.WarnFunc
}

// NewShapefile returns a ShapefileSource reading through fs.
func NewShapefile(fs afero.Fs, warn stats.WarnFunc) *ShapefileSource {
	return &ShapefileSource{Fs: fs, Warn: warn}
}

// Tabular like the delimited format, so the same policy applies.
func (s *ShapefileSource) Process(path string) (*stats.Tally, error) {
	tally, err := stats.Aggregate(stats.KeepMalformed, s.Warn, func(fn func(types.AddressRecord)) error {
		return s.Each(path, fn)
	})
	if err != nil {
		return nil, &ReadError{Kind: Shapefile, Path: path, Err: err}
	}
	return tally, nil
}

// Each calls fn with the attributes of every shape in the file.
func (s *ShapefileSource) Each(path string, fn func(types.AddressRecord)) (err error) {
	if !strings.HasSuffix(strings.ToLower(path), ".shp") {
		return fmt.Errorf("shapefile path must end in .shp")
	}
	shpFile, err := s.Fs.Open(path)
	if err != nil {
		return err
	}
	defer shpFile.Close()
	dbfFile, err := s.Fs.Open(path[:len(path)-3] + "dbf")
	if err != nil {
		return fmt.Errorf("attribute table: %w", err)
	}
	defer dbfFile.Close()

	// Truncated or corrupt headers make go-shp slice past its buffers.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("corrupt shapefile: %v", p)
		}
	}()

	sr := shp.SequentialReaderFromExt(shpFile, dbfFile)
	if err := sr.Err(); err != nil {
		return err
	}

	columns := make(map[string]int)
	for i, f := range sr.Fields() {
		columns[strings.ToLower(strings.TrimSpace(f.String()))] = i
	}

	for sr.Next() {
		fn(recordFrom(func(name string) string {
			i, ok := columns[name]
			if !ok {
				return ""
			}
			return strings.Trim(sr.Attribute(i), "\x00")
		}))
	}
	return sr.Err()
}
