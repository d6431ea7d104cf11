package source

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"golang.org/x/net/html/charset"

	"addrstats/internal/stats"
	"addrstats/internal/types"
)

// MarkupSource reads an XML document whose root element holds <item>
// children with city, floor, house and street attributes. Items missing a
// city or floor are dropped entirely, unlike DelimitedSource.
type MarkupSource struct {
	Fs   afero.Fs
	Warn stats.WarnFunc
}

// NewMarkup returns a MarkupSource reading through fs.
func NewMarkup(fs afero.Fs, warn stats.WarnFunc) *MarkupSource {
	return &MarkupSource{Fs: fs, Warn: warn}
}

func (s *MarkupSource) Process(path string) (*stats.Tally, error) {
	tally, err := stats.Aggregate(stats.SkipIncomplete, s.Warn, func(fn func(types.AddressRecord)) error {
		return s.Each(path, fn)
	})
	if err != nil {
		return nil, &ReadError{Kind: Markup, Path: path, Err: err}
	}
	return tally, nil
}

// Each calls fn for every <item> directly under the document root. The
// whole document is checked for well-formedness before returning nil.
func (s *MarkupSource) Each(path string, fn func(types.AddressRecord)) error {
	f, err := s.Fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := xml.NewDecoder(f)
	dec.CharsetReader = charset.NewReaderLabel
	depth := 0
	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if !sawRoot {
				return errors.New("no root element")
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if sawRoot {
					return fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)
				}
				sawRoot = true
			}
			if depth == 1 && t.Name.Space == "" && t.Name.Local == "item" {
				fn(recordFrom(attrLookup(t.Attr)))
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(bytes.TrimPrefix(t, []byte(utf8BOM)))) > 0 {
				return errors.New("text outside root element")
			}
		}
	}
}

func attrLookup(attrs []xml.Attr) func(string) string {
	return func(name string) string {
		for _, a := range attrs {
			if a.Name.Space == "" && a.Name.Local == name {
				return a.Value
			}
		}
		return ""
	}
}
