package tensor

import (
	"fmt"
	"unsafe"
)

// RawTensor is the low-level tensor representation: a flat byte buffer
// plus shape, row-major strides and runtime element type.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a RawTensor with the given shape and element type.
// The buffer is zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's element type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total buffer size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice backing the tensor.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	r.mustBe(Float32)
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the buffer as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	r.mustBe(Float64)
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt32 interprets the buffer as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	r.mustBe(Int32)
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt16 interprets the buffer as []int16.
// Panics if the tensor's dtype is not Int16.
func (r *RawTensor) AsInt16() []int16 {
	r.mustBe(Int16)
	return unsafe.Slice((*int16)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsInt8 interprets the buffer as []int8.
// Panics if the tensor's dtype is not Int8.
func (r *RawTensor) AsInt8() []int8 {
	r.mustBe(Int8)
	return unsafe.Slice((*int8)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsUint8 interprets the buffer as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	r.mustBe(Uint8)
	return r.data
}

func (r *RawTensor) mustBe(dt DataType) {
	if r.dtype != dt {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
}

// Clone returns a deep copy with its own buffer.
func (r *RawTensor) Clone() *RawTensor {
	out := &RawTensor{
		data:   make([]byte, len(r.data)),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
	}
	copy(out.data, r.data)
	return out
}
