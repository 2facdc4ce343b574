package tensor_test

import (
	"testing"

	"github.com/verdict-ml/verdict/tensor"
)

func TestPublicAPI(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	if x.DType() != tensor.Float32 {
		t.Errorf("DType() = %s, want float32", x.DType())
	}
	if x.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", x.NumElements())
	}

	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Int32)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	typed, err := tensor.New[int32](raw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	typed.Values()[0] = 9
	if raw.AsInt32()[0] != 9 {
		t.Error("typed view should share the raw buffer")
	}
}

func TestPublicTypeOf(t *testing.T) {
	if tensor.TypeOf[float64]() != tensor.Float64 {
		t.Error("TypeOf[float64] should map to Float64")
	}
	if tensor.TypeOf[uint8]() != tensor.Uint8 {
		t.Error("TypeOf[uint8] should map to Uint8")
	}
}
