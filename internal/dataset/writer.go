package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

// Writer serializes relations to CSV files under a single directory. Repeat
// saves of the same relation fully overwrite the previous file.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Save writes rows as <dir>/<name>.csv, creating the directory and any
// missing parents first. The marshaled header is checked against the schema
// registry before anything touches disk; an empty relation still gets its
// header row.
func (w *Writer) Save(name string, rows interface{}) error {
	table, ok := Lookup(name)
	if !ok {
		return &SchemaError{Table: name}
	}

	out, err := gocsv.MarshalString(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	header := strings.Split(strings.TrimRight(strings.SplitN(out, "\n", 2)[0], "\r"), ",")
	want := table.ColumnNames()
	if !columnsEqual(header, want) {
		return &SchemaError{Table: name, Want: want, Got: header}
	}

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", w.Dir, err)
	}

	path := filepath.Join(w.Dir, name+".csv")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SaveAll persists every relation of a generated run, parents first.
func (w *Writer) SaveAll(ds *Dataset) error {
	relations := []struct {
		name string
		rows interface{}
	}{
		{"customers", ds.Customers},
		{"products", ds.Products},
		{"orders", ds.Orders},
		{"order_items", ds.OrderItems},
		{"payments", ds.Payments},
	}
	for _, rel := range relations {
		if err := w.Save(rel.name, rel.rows); err != nil {
			return err
		}
	}
	return nil
}

func columnsEqual(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
