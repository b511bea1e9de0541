// Package anyvalue converts between Arrow scalars and plain Go values.
//
// The forward direction is checked by the compiler: Wrap only accepts a
// value whose Go type matches the tag, and tags cannot be invented by
// callers. The reverse direction never fails; Unwrap falls back to the
// tag's default on mismatch. Callers that need to know use UnwrapStrict,
// or an Unwrapper configured with Strict.
package anyvalue

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/arrow/scalar"
)

// Wrap returns the scalar of kind tag holding v.
// Wrapping anything with Null yields the null scalar.
func Wrap[T Primitive](v T, tag Tag[T]) scalar.Scalar {
	switch x := any(v).(type) {
	case struct{}:
		return WrapNull()
	case bool:
		return scalar.NewBooleanScalar(x)
	case int8:
		return scalar.NewInt8Scalar(x)
	case int16:
		return scalar.NewInt16Scalar(x)
	case int32:
		return scalar.NewInt32Scalar(x)
	case int64:
		return scalar.NewInt64Scalar(x)
	case uint8:
		return scalar.NewUint8Scalar(x)
	case uint16:
		return scalar.NewUint16Scalar(x)
	case uint32:
		return scalar.NewUint32Scalar(x)
	case uint64:
		return scalar.NewUint64Scalar(x)
	case float32:
		return scalar.NewFloat32Scalar(x)
	case float64:
		return scalar.NewFloat64Scalar(x)
	case string:
		if tag.dt != nil && tag.dt.ID() == arrow.LARGE_STRING {
			return scalar.NewLargeStringScalar(x)
		}
		return scalar.NewStringScalar(x)
	case []byte:
		return scalar.NewBinaryScalar(memory.NewBufferBytes(x), arrow.BinaryTypes.Binary)
	}
	// Primitive is a closed set; every member is handled above.
	panic(fmt.Sprintf("anyvalue: unhandled payload type %T", v))
}

// WrapNull returns the null scalar.
func WrapNull() scalar.Scalar {
	return scalar.ScalarNull
}

// Unwrap returns the payload of s when s holds tag, and the tag's default
// otherwise: zero for numbers, "" for text, an empty slice for binary and
// false for bool. A null scalar of the right kind also gives the default.
func Unwrap[T Primitive](s scalar.Scalar, tag Tag[T]) T {
	v, _ := unwrap(s, tag)
	return v
}

// UnwrapStrict is Unwrap that reports a *MismatchError instead of silently
// returning the default.
func UnwrapStrict[T Primitive](s scalar.Scalar, tag Tag[T]) (T, error) {
	return unwrap(s, tag)
}

// Unwrapper selects the mismatch policy used by UnwrapWith.
type Unwrapper struct {
	Strict bool
}

// UnwrapWith unwraps s under the policy in u.
func UnwrapWith[T Primitive](u Unwrapper, s scalar.Scalar, tag Tag[T]) (T, error) {
	v, err := unwrap(s, tag)
	if err != nil && !u.Strict {
		return v, nil
	}
	return v, err
}

func unwrap[T Primitive](s scalar.Scalar, tag Tag[T]) (T, error) {
	def := defaultFor[T]()
	actual := TagOf(s)

	if tag.dt == nil {
		return def, &MismatchError{Expected: arrow.NULL, Actual: actual}
	}
	expected := tag.dt.ID()
	if actual != expected {
		return def, &MismatchError{Expected: expected, Actual: actual}
	}
	if expected == arrow.NULL {
		return def, nil
	}
	if !s.IsValid() {
		return def, &MismatchError{Expected: expected, Actual: actual, Null: true}
	}

	v, ok := payload(s).(T)
	if !ok {
		return def, &MismatchError{Expected: expected, Actual: actual}
	}
	return v, nil
}

func defaultFor[T Primitive]() T {
	var zero T
	if b, ok := any(&zero).(*[]byte); ok {
		*b = []byte{}
	}
	return zero
}

// payload extracts the Go value of a valid scalar, or nil for kinds this
// package does not handle.
func payload(s scalar.Scalar) any {
	switch x := s.(type) {
	case *scalar.Boolean:
		return x.Value
	case *scalar.Int8:
		return x.Value
	case *scalar.Int16:
		return x.Value
	case *scalar.Int32:
		return x.Value
	case *scalar.Int64:
		return x.Value
	case *scalar.Uint8:
		return x.Value
	case *scalar.Uint16:
		return x.Value
	case *scalar.Uint32:
		return x.Value
	case *scalar.Uint64:
		return x.Value
	case *scalar.Float32:
		return x.Value
	case *scalar.Float64:
		return x.Value
	case *scalar.String:
		return string(x.Data())
	case *scalar.LargeString:
		return string(x.Data())
	case *scalar.Binary:
		return x.Data()
	}
	return nil
}

// TagOf returns the type id s actually holds. A nil scalar counts as NULL.
func TagOf(s scalar.Scalar) arrow.Type {
	if s == nil || s.DataType() == nil {
		return arrow.NULL
	}
	return s.DataType().ID()
}

// WrapAny is the runtime form of Wrap for callers that only learn the data
// type from data. v must have exactly the Go type Wrap would take for dt;
// a nil v yields a null scalar of type dt.
func WrapAny(v any, dt arrow.DataType) (scalar.Scalar, error) {
	if !Supported(dt) {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedTag, dt)
	}
	if v == nil {
		if dt.ID() == arrow.NULL {
			return WrapNull(), nil
		}
		return scalar.MakeNullScalar(dt), nil
	}

	switch dt.ID() {
	case arrow.NULL:
		return WrapNull(), nil
	case arrow.BOOL:
		return wrapAs(v, Boolean)
	case arrow.INT8:
		return wrapAs(v, Int8)
	case arrow.INT16:
		return wrapAs(v, Int16)
	case arrow.INT32:
		return wrapAs(v, Int32)
	case arrow.INT64:
		return wrapAs(v, Int64)
	case arrow.UINT8:
		return wrapAs(v, UInt8)
	case arrow.UINT16:
		return wrapAs(v, UInt16)
	case arrow.UINT32:
		return wrapAs(v, UInt32)
	case arrow.UINT64:
		return wrapAs(v, UInt64)
	case arrow.FLOAT32:
		return wrapAs(v, Float32)
	case arrow.FLOAT64:
		return wrapAs(v, Float64)
	case arrow.STRING:
		return wrapAs(v, Utf8)
	case arrow.LARGE_STRING:
		return wrapAs(v, LargeUtf8)
	case arrow.BINARY:
		return wrapAs(v, Binary)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedTag, dt)
}

func wrapAs[T Primitive](v any, tag Tag[T]) (scalar.Scalar, error) {
	x, ok := v.(T)
	if !ok {
		return nil, fmt.Errorf("%w: cannot wrap %T as %s", ErrTagMismatch, v, tag)
	}
	return Wrap(x, tag), nil
}

// UnwrapAny returns the payload of s as an untyped value, or nil when s is
// null, invalid or of an unsupported kind.
func UnwrapAny(s scalar.Scalar) any {
	if s == nil || !s.IsValid() {
		return nil
	}
	return payload(s)
}
