// Package metric computes scalar distances between equal-shaped tensors.
package metric

import (
	"errors"
	"fmt"
	"math"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Common errors.
var (
	ErrSizeMismatch  = errors.New("metric: element count mismatch")
	ErrDTypeMismatch = errors.New("metric: element type mismatch")
	ErrNilTensor     = errors.New("metric: nil tensor")
)

// MeanAbsErr returns the mean absolute error between a reference and a
// computed tensor. Differences are accumulated in float64 regardless of
// the element type, so large tensors do not drift the way naive float32
// accumulation would. NaN elements propagate into the result.
func MeanAbsErr(ref, got *tensor.RawTensor) (float64, error) {
	n, err := checkPair(ref, got)
	if err != nil {
		return 0, err
	}

	var sum float64
	forEachAbsDiff(ref, got, func(d float64) {
		sum += d
	})
	return sum / float64(n), nil
}

// MaxAbsErr returns the largest per-element absolute difference.
func MaxAbsErr(ref, got *tensor.RawTensor) (float64, error) {
	if _, err := checkPair(ref, got); err != nil {
		return 0, err
	}

	var worst float64
	forEachAbsDiff(ref, got, func(d float64) {
		if d > worst || math.IsNaN(d) {
			worst = d
		}
	})
	return worst, nil
}

// RMSE returns the root mean square error.
func RMSE(ref, got *tensor.RawTensor) (float64, error) {
	n, err := checkPair(ref, got)
	if err != nil {
		return 0, err
	}

	var sum float64
	forEachAbsDiff(ref, got, func(d float64) {
		sum += d * d
	})
	return math.Sqrt(sum / float64(n)), nil
}

// checkPair rejects nil tensors and mismatched element counts or types
// before any elements are touched. It never falls back to comparing a
// prefix.
func checkPair(ref, got *tensor.RawTensor) (int, error) {
	if ref == nil || got == nil {
		return 0, ErrNilTensor
	}
	if ref.NumElements() != got.NumElements() {
		return 0, fmt.Errorf("%w: reference %s has %d elements, computed %s has %d",
			ErrSizeMismatch, ref.Shape(), ref.NumElements(), got.Shape(), got.NumElements())
	}
	if ref.DType() != got.DType() {
		return 0, fmt.Errorf("%w: reference is %s, computed is %s",
			ErrDTypeMismatch, ref.DType(), got.DType())
	}
	return ref.NumElements(), nil
}

// forEachAbsDiff feeds |ref[i]-got[i]| as float64 to fn for every element.
func forEachAbsDiff(ref, got *tensor.RawTensor, fn func(float64)) {
	switch ref.DType() {
	case tensor.Uint8:
		a, b := ref.AsUint8(), got.AsUint8()
		for i := range a {
			fn(math.Abs(float64(a[i]) - float64(b[i])))
		}
	case tensor.Int8:
		a, b := ref.AsInt8(), got.AsInt8()
		for i := range a {
			fn(math.Abs(float64(a[i]) - float64(b[i])))
		}
	case tensor.Int16:
		a, b := ref.AsInt16(), got.AsInt16()
		for i := range a {
			fn(math.Abs(float64(a[i]) - float64(b[i])))
		}
	case tensor.Int32:
		a, b := ref.AsInt32(), got.AsInt32()
		for i := range a {
			fn(math.Abs(float64(a[i]) - float64(b[i])))
		}
	case tensor.Float32:
		a, b := ref.AsFloat32(), got.AsFloat32()
		for i := range a {
			fn(math.Abs(float64(a[i]) - float64(b[i])))
		}
	case tensor.Float64:
		a, b := ref.AsFloat64(), got.AsFloat64()
		for i := range a {
			fn(math.Abs(a[i] - b[i]))
		}
	}
}
