// Copyright 2026 Verdict Harness. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the harness's tensor types.
//
// The package re-exports the core types used throughout the validator:
//   - RawTensor: dense N-dimensional array with runtime type info
//   - Tensor[T]: typed view over a RawTensor
//   - Shape, DataType: core type definitions
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3})
//	vals := t.Values()
package tensor

import (
	"github.com/verdict-ml/verdict/internal/tensor"
)

// DType is a constraint for supported tensor element types.
type DType = tensor.DType

// DataType represents runtime type information for tensor elements.
type DataType = tensor.DataType

// Supported element types.
const (
	Uint8   DataType = tensor.Uint8
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation.
type RawTensor = tensor.RawTensor

// Tensor is a typed view over a RawTensor.
type Tensor[T DType] = tensor.Tensor[T]

// NewRaw creates a RawTensor with the given shape and element type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// New wraps a RawTensor in a typed view.
func New[T DType](raw *RawTensor) (*Tensor[T], error) {
	return tensor.New[T](raw)
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// TypeOf maps a Go element type to its DataType tag.
func TypeOf[T DType]() DataType {
	return tensor.TypeOf[T]()
}
