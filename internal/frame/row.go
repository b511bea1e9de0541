package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/scalar"
)

// Row is one record: an ordered, fixed-length list of scalars, one per column.
// A Row carries no names; it only gets them from a schema.
type Row struct {
	Values []scalar.Scalar
}

// NewRow creates a Row holding values in order
func NewRow(values ...scalar.Scalar) Row {
	return Row{Values: values}
}

// Len returns the number of cells in the row
func (r Row) Len() int {
	return len(r.Values)
}

// DataTypes returns each cell's data type. A nil cell reports arrow.Null.
func (r Row) DataTypes() []arrow.DataType {
	types := make([]arrow.DataType, len(r.Values))
	for i, s := range r.Values {
		if s == nil || s.DataType() == nil {
			types[i] = arrow.Null
			continue
		}
		types[i] = s.DataType()
	}
	return types
}

// Schema returns the schema implied by the row's cell types, with
// synthetic column names column_0, column_1, ...
func (r Row) Schema() *arrow.Schema {
	return SchemaFromRow(r)
}

// SchemaFromRow infers a schema from the cell types of r
func SchemaFromRow(r Row) *arrow.Schema {
	types := r.DataTypes()
	fields := make([]arrow.Field, len(types))
	for i, dt := range types {
		fields[i] = arrow.Field{Name: ColumnName(i), Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil)
}

// ColumnName returns the synthetic name of column i
func ColumnName(i int) string {
	return fmt.Sprintf("column_%d", i)
}
