package anyvalue

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Primitive is the set of Go types a Tag can carry.
type Primitive interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64 |
		bool | string | []byte | struct{}
}

// Tag identifies a scalar kind together with the Go type of its payload.
// Tags cannot be built outside this package, so only the values below exist.
type Tag[T Primitive] struct {
	dt arrow.DataType
}

// DataType returns the Arrow data type the tag stands for.
func (t Tag[T]) DataType() arrow.DataType {
	return t.dt
}

// ID returns the Arrow type id the tag stands for.
func (t Tag[T]) ID() arrow.Type {
	return t.dt.ID()
}

// String returns the Arrow type name (e.g. "int64", "utf8").
func (t Tag[T]) String() string {
	return t.dt.Name()
}

var (
	Null = Tag[struct{}]{arrow.Null}

	Boolean = Tag[bool]{arrow.FixedWidthTypes.Boolean}

	Int8  = Tag[int8]{arrow.PrimitiveTypes.Int8}
	Int16 = Tag[int16]{arrow.PrimitiveTypes.Int16}
	Int32 = Tag[int32]{arrow.PrimitiveTypes.Int32}
	Int64 = Tag[int64]{arrow.PrimitiveTypes.Int64}

	UInt8  = Tag[uint8]{arrow.PrimitiveTypes.Uint8}
	UInt16 = Tag[uint16]{arrow.PrimitiveTypes.Uint16}
	UInt32 = Tag[uint32]{arrow.PrimitiveTypes.Uint32}
	UInt64 = Tag[uint64]{arrow.PrimitiveTypes.Uint64}

	Float32 = Tag[float32]{arrow.PrimitiveTypes.Float32}
	Float64 = Tag[float64]{arrow.PrimitiveTypes.Float64}

	// Utf8 and LargeUtf8 are the two text layouts Arrow offers: 32-bit and
	// 64-bit offsets. A scalar of one does not unwrap as the other.
	Utf8      = Tag[string]{arrow.BinaryTypes.String}
	LargeUtf8 = Tag[string]{arrow.BinaryTypes.LargeString}

	Binary = Tag[[]byte]{arrow.BinaryTypes.Binary}
)

// supported lists every runtime data type the facility converts, keyed by
// its Arrow type name.
var supported = map[string]arrow.DataType{}

func init() {
	for _, dt := range []arrow.DataType{
		Null.dt, Boolean.dt,
		Int8.dt, Int16.dt, Int32.dt, Int64.dt,
		UInt8.dt, UInt16.dt, UInt32.dt, UInt64.dt,
		Float32.dt, Float64.dt,
		Utf8.dt, LargeUtf8.dt, Binary.dt,
	} {
		supported[dt.Name()] = dt
	}
}

// Supported reports whether dt is one of the scalar kinds this package converts.
func Supported(dt arrow.DataType) bool {
	if dt == nil {
		return false
	}
	known, ok := supported[dt.Name()]
	return ok && arrow.TypeEqual(known, dt)
}

// ParseDataType resolves an Arrow type name such as "int64", "utf8",
// "large_utf8" or "bool" to its data type.
func ParseDataType(name string) (arrow.DataType, error) {
	dt, ok := supported[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTag, name)
	}
	return dt, nil
}
