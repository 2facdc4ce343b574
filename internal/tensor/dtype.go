// Package tensor provides the dense tensor types the verdict harness
// moves between the idx importer, the execution context and the metrics.
package tensor

// DType is a constraint for supported tensor element types.
// The set mirrors exactly what the idx serialization format can encode.
type DType interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~float32 | ~float64
}

// DataType represents runtime type information for tensor elements.
type DataType int

// Supported element types.
const (
	Uint8 DataType = iota
	Int8
	Int16
	Int32
	Float32
	Float64
)

// Size returns the byte width of one element.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the element type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// TypeOf maps a Go element type to its DataType tag.
func TypeOf[T DType]() DataType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
