package tensor

import "fmt"

// Tensor is a typed view over a RawTensor.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
//	vals := t.Values() // []float32
type Tensor[T DType] struct {
	raw *RawTensor
}

// New wraps a RawTensor in a typed view.
// The raw tensor's dtype must match T.
func New[T DType](raw *RawTensor) (*Tensor[T], error) {
	if want := TypeOf[T](); raw.DType() != want {
		return nil, fmt.Errorf("raw tensor dtype is %s, want %s", raw.DType(), want)
	}
	return &Tensor[T]{raw: raw}, nil
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, TypeOf[T]())
	if err != nil {
		return nil, err
	}

	t := &Tensor[T]{raw: raw}
	copy(t.Values(), data)
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	raw, err := NewRaw(shape, TypeOf[T]())
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{raw: raw}, nil
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	t, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	vals := t.Values()
	for i := range vals {
		vals[i] = value
	}
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's element type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// Values returns a zero-copy typed slice over the tensor's elements.
func (t *Tensor[T]) Values() []T {
	switch any(*new(T)).(type) {
	case uint8:
		return any(t.raw.AsUint8()).([]T)
	case int8:
		return any(t.raw.AsInt8()).([]T)
	case int16:
		return any(t.raw.AsInt16()).([]T)
	case int32:
		return any(t.raw.AsInt32()).([]T)
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	default:
		panic("unsupported element type")
	}
}
