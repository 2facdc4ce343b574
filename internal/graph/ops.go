package graph

import (
	"fmt"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Built-in operators. All arithmetic runs on float32 tensors, the
// element type the golden suites exercise; other types are rejected
// rather than silently coerced.

func wantFloat32(inputs []*tensor.RawTensor, n int) ([][]float32, error) {
	if len(inputs) != n {
		return nil, fmt.Errorf("graph: want %d inputs, got %d", n, len(inputs))
	}
	out := make([][]float32, n)
	for i, in := range inputs {
		if in.DType() != tensor.Float32 {
			return nil, fmt.Errorf("graph: input %d is %s, want float32", i, in.DType())
		}
		out[i] = in.AsFloat32()
	}
	return out, nil
}

// opMax reduces a tensor to its largest element, shape (1).
func opMax(inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	vals, err := wantFloat32(inputs, 1)
	if err != nil {
		return nil, err
	}

	best := vals[0][0]
	for _, v := range vals[0][1:] {
		if v > best {
			best = v
		}
	}
	return scalar(best)
}

// opMin reduces a tensor to its smallest element, shape (1).
func opMin(inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	vals, err := wantFloat32(inputs, 1)
	if err != nil {
		return nil, err
	}

	best := vals[0][0]
	for _, v := range vals[0][1:] {
		if v < best {
			best = v
		}
	}
	return scalar(best)
}

// opArgMax returns the flat index of the largest element as int32, shape (1).
func opArgMax(inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	vals, err := wantFloat32(inputs, 1)
	if err != nil {
		return nil, err
	}

	idx := 0
	for i, v := range vals[0] {
		if v > vals[0][idx] {
			idx = i
		}
	}

	out, err := tensor.NewRaw(tensor.Shape{1}, tensor.Int32)
	if err != nil {
		return nil, err
	}
	out.AsInt32()[0] = int32(idx)
	return out, nil
}

// opAdd is element-wise addition over equal shapes. No broadcasting.
func opAdd(inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	return elementwise2(inputs, func(a, b float32) float32 { return a + b })
}

// opMul is element-wise multiplication over equal shapes. No broadcasting.
func opMul(inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	return elementwise2(inputs, func(a, b float32) float32 { return a * b })
}

// opRelu zeroes negative elements.
func opRelu(inputs []*tensor.RawTensor) (*tensor.RawTensor, error) {
	vals, err := wantFloat32(inputs, 1)
	if err != nil {
		return nil, err
	}

	out, err := tensor.NewRaw(inputs[0].Shape(), tensor.Float32)
	if err != nil {
		return nil, err
	}
	dst := out.AsFloat32()
	for i, v := range vals[0] {
		if v > 0 {
			dst[i] = v
		}
	}
	return out, nil
}

func elementwise2(inputs []*tensor.RawTensor, fn func(a, b float32) float32) (*tensor.RawTensor, error) {
	vals, err := wantFloat32(inputs, 2)
	if err != nil {
		return nil, err
	}
	if !inputs[0].Shape().Equal(inputs[1].Shape()) {
		return nil, fmt.Errorf("graph: shape mismatch %s vs %s", inputs[0].Shape(), inputs[1].Shape())
	}

	out, err := tensor.NewRaw(inputs[0].Shape(), tensor.Float32)
	if err != nil {
		return nil, err
	}
	dst := out.AsFloat32()
	for i := range dst {
		dst[i] = fn(vals[0][i], vals[1][i])
	}
	return out, nil
}

func scalar(v float32) (*tensor.RawTensor, error) {
	out, err := tensor.NewRaw(tensor.Shape{1}, tensor.Float32)
	if err != nil {
		return nil, err
	}
	out.AsFloat32()[0] = v
	return out, nil
}
