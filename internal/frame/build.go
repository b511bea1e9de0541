package frame

import (
	"log/slog"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"

	"github.com/leengari/anyframe/internal/anyvalue"
)

// FromRows transposes rows into a columnar table laid out by schema.
//
// Every row must have one cell per schema field, and every non-null cell
// must carry exactly the field's data type. Null and invalid cells are
// stored as nulls in whatever column they sit in. A nil mem uses
// memory.DefaultAllocator.
func FromRows(mem memory.Allocator, rows []Row, schema *arrow.Schema) (*Table, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	bldr := array.NewRecordBuilder(mem, schema)
	defer bldr.Release()

	ncols := schema.NumFields()
	for i, row := range rows {
		if row.Len() != ncols {
			return nil, &RowShapeError{Row: i, Expected: ncols, Got: row.Len()}
		}
		for j, s := range row.Values {
			field := schema.Field(j)
			if !appendScalar(bldr.Field(j), s) {
				return nil, &TypeMismatchError{
					Row:      i,
					Column:   j,
					Name:     field.Name,
					Expected: field.Type,
					Got:      cellType(s),
				}
			}
		}
	}

	rec := bldr.NewRecord()

	slog.Debug("FromRows operation",
		"rows", rec.NumRows(),
		"columns", rec.NumCols(),
	)

	return NewTable(rec), nil
}

// appendScalar appends s to b and reports whether s fit the builder's type
func appendScalar(b array.Builder, s scalar.Scalar) bool {
	if s == nil || !s.IsValid() {
		b.AppendNull()
		return true
	}
	if !arrow.TypeEqual(s.DataType(), b.Type()) {
		return false
	}

	v := anyvalue.UnwrapAny(s)
	switch bb := b.(type) {
	case *array.BooleanBuilder:
		return appendAs(v, bb.Append)
	case *array.Int8Builder:
		return appendAs(v, bb.Append)
	case *array.Int16Builder:
		return appendAs(v, bb.Append)
	case *array.Int32Builder:
		return appendAs(v, bb.Append)
	case *array.Int64Builder:
		return appendAs(v, bb.Append)
	case *array.Uint8Builder:
		return appendAs(v, bb.Append)
	case *array.Uint16Builder:
		return appendAs(v, bb.Append)
	case *array.Uint32Builder:
		return appendAs(v, bb.Append)
	case *array.Uint64Builder:
		return appendAs(v, bb.Append)
	case *array.Float32Builder:
		return appendAs(v, bb.Append)
	case *array.Float64Builder:
		return appendAs(v, bb.Append)
	case *array.StringBuilder:
		return appendAs(v, bb.Append)
	case *array.LargeStringBuilder:
		return appendAs(v, bb.Append)
	case *array.BinaryBuilder:
		return appendAs(v, bb.Append)
	}
	return false
}

func appendAs[T any](v any, appendFn func(T)) bool {
	x, ok := v.(T)
	if ok {
		appendFn(x)
	}
	return ok
}

func cellType(s scalar.Scalar) arrow.DataType {
	if s == nil {
		return arrow.Null
	}
	return s.DataType()
}
