package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	shp "github.com/jonas-p/go-shp"
	"github.com/spf13/afero"

	"addrstats/internal/types"
)

// writeShapefile creates a point shapefile whose attribute table has the
// given columns and rows.
func writeShapefile(t *testing.T, path string, columns []string, rows [][]string) {
	t.Helper()
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		t.Fatalf("create shapefile: %v", err)
	}
	fields := make([]shp.Field, len(columns))
	for i, c := range columns {
		fields[i] = shp.StringField(c, 32)
	}
	if err := w.SetFields(fields); err != nil {
		t.Fatalf("set fields: %v", err)
	}
	for i, row := range rows {
		n := w.Write(&shp.Point{X: float64(i), Y: float64(i)})
		for j, v := range row {
			if err := w.WriteAttribute(int(n), j, v); err != nil {
				t.Fatalf("write attribute: %v", err)
			}
		}
	}
	w.Close()

	// go-shp v0.1.1 names the attribute table "<base>dbf", without the dot.
	base := strings.TrimSuffix(path, ".shp")
	if err := os.Rename(base+"dbf", base+".dbf"); err != nil {
		t.Fatalf("rename attribute table: %v", err)
	}
}

func TestShapefileProcess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "address.shp")
	writeShapefile(t, path, []string{"CITY", "FLOOR", "HOUSE", "STREET"}, [][]string{
		{"Paris", "3", "10", "Main"},
		{"Paris", "3", "10", "Main"},
		{"Paris", "4", "11", "Main"},
		{"Paris", "ab", "12", "Main"},
		{"Lyon", "", "1", "Rue"},
	})

	var w warnings
	tally, err := NewShapefile(afero.NewOsFs(), w.warn).Process(path)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	paris3 := types.AddressRecord{City: "Paris", Floor: "3", House: "10", Street: "Main"}
	if got := tally.Duplicates.Count(paris3); got != 2 {
		t.Errorf("count(paris3) = %d, want 2", got)
	}
	if got := tally.Duplicates.Count(types.AddressRecord{City: "Lyon", House: "1", Street: "Rue"}); got != 1 {
		t.Errorf("empty floor record count = %d, want 1", got)
	}
	if got := tally.Floors.Count("Paris", 3); got != 2 {
		t.Errorf("floors(Paris,3) = %d, want 2", got)
	}
	if got := tally.Floors.Count("Paris", 4); got != 1 {
		t.Errorf("floors(Paris,4) = %d, want 1", got)
	}
	if len(w) != 2 {
		t.Errorf("warnings = %q, want 2", w)
	}
}

func TestShapefileMissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.shp")
	writeShapefile(t, path, []string{"city", "floor"}, [][]string{{"Nice", "2"}})

	var got []types.AddressRecord
	err := NewShapefile(afero.NewOsFs(), nil).Each(path, func(r types.AddressRecord) {
		got = append(got, r)
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	want := types.AddressRecord{City: "Nice", Floor: "2"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("records = %v, want [%v]", got, want)
	}
}

func TestShapefileReadFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "address.shp")
	writeShapefile(t, path, []string{"city", "floor"}, [][]string{{"Nice", "2"}})
	if err := os.Remove(filepath.Join(dir, "address.dbf")); err != nil {
		t.Fatal(err)
	}

	src := NewShapefile(afero.NewOsFs(), nil)
	tally, err := src.Process(path)
	if tally != nil {
		t.Errorf("tally = %+v, want nil", tally)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want missing attribute table", err)
	}

	truncated := filepath.Join(dir, "short.shp")
	if err := os.WriteFile(truncated, []byte{0, 0, 39, 10}, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "short.dbf"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Process(truncated); err == nil {
		t.Error("truncated shapefile processed without error")
	}

	if _, err := src.Process(filepath.Join(dir, "address.csv")); err == nil {
		t.Error("non-.shp path accepted")
	}
}
