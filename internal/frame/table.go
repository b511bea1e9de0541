package frame

import (
	"fmt"
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/scalar"
)

// Table is a columnar table backed by an Arrow record.
// The Table owns one reference to the record; call Release when done.
type Table struct {
	rec arrow.Record
}

// NewTable wraps rec, taking over the caller's reference to it
func NewTable(rec arrow.Record) *Table {
	return &Table{rec: rec}
}

// Record returns the underlying record. The reference stays with the Table.
func (t *Table) Record() arrow.Record {
	return t.rec
}

// Schema returns the table schema
func (t *Table) Schema() *arrow.Schema {
	return t.rec.Schema()
}

// NumRows returns the row count
func (t *Table) NumRows() int64 {
	return t.rec.NumRows()
}

// NumCols returns the column count
func (t *Table) NumCols() int {
	return int(t.rec.NumCols())
}

// DataTypes returns the column data types in column order
func (t *Table) DataTypes() []arrow.DataType {
	fields := t.rec.Schema().Fields()
	types := make([]arrow.DataType, len(fields))
	for i, f := range fields {
		types[i] = f.Type
	}
	return types
}

// ColumnNames returns the column names in column order
func (t *Table) ColumnNames() []string {
	names := make([]string, t.NumCols())
	for i := range names {
		names[i] = t.rec.ColumnName(i)
	}
	return names
}

// SetColumnNames renames every column, position by position.
// names must have exactly one unique entry per column.
func (t *Table) SetColumnNames(names []string) error {
	if len(names) != t.NumCols() {
		return &ColumnCountError{Op: "rename", Expected: t.NumCols(), Got: len(names)}
	}

	seen := make(map[string]int, len(names))
	for i, name := range names {
		if first, dup := seen[name]; dup {
			return &DuplicateColumnError{Name: name, First: first, Again: i}
		}
		seen[name] = i
	}

	old := t.rec.Schema()
	fields := make([]arrow.Field, len(names))
	for i, f := range old.Fields() {
		f.Name = names[i]
		fields[i] = f
	}
	md := old.Metadata()
	schema := arrow.NewSchema(fields, &md)

	// columns are shared with the old record, which NewRecord retains
	rec := array.NewRecord(schema, t.rec.Columns(), t.rec.NumRows())
	t.rec.Release()
	t.rec = rec

	slog.Debug("SetColumnNames operation", "columns", names)

	return nil
}

// Value returns the cell at (row, col) as a scalar.
func (t *Table) Value(row, col int) (scalar.Scalar, error) {
	if col < 0 || col >= t.NumCols() {
		return nil, fmt.Errorf("column %d out of range [0, %d)", col, t.NumCols())
	}
	if row < 0 || int64(row) >= t.NumRows() {
		return nil, fmt.Errorf("row %d out of range [0, %d)", row, t.NumRows())
	}
	return scalar.GetScalar(t.rec.Column(col), row)
}

// Row reads row i back out of the columns.
func (t *Table) Row(i int) (Row, error) {
	values := make([]scalar.Scalar, t.NumCols())
	for j := range values {
		s, err := t.Value(i, j)
		if err != nil {
			return Row{}, err
		}
		values[j] = s
	}
	return NewRow(values...), nil
}

// Release drops the table's reference to its record
func (t *Table) Release() {
	if t.rec != nil {
		t.rec.Release()
		t.rec = nil
	}
}
