package metric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdict-ml/verdict/internal/tensor"
)

func floats(t *testing.T, shape tensor.Shape, vals []float32) *tensor.RawTensor {
	t.Helper()
	tt, err := tensor.FromSlice(vals, shape)
	require.NoError(t, err)
	return tt.Raw()
}

func TestMeanAbsErrIdentical(t *testing.T) {
	a := floats(t, tensor.Shape{3}, []float32{1.0, 2.0, 3.0})
	b := floats(t, tensor.Shape{3}, []float32{1.0, 2.0, 3.0})

	err, cmpErr := MeanAbsErr(a, b)
	require.NoError(t, cmpErr)
	assert.Equal(t, 0.0, err)
}

func TestMeanAbsErrSelf(t *testing.T) {
	a := floats(t, tensor.Shape{2, 2}, []float32{-1.5, 0, 3.25, 1e10})

	err, cmpErr := MeanAbsErr(a, a)
	require.NoError(t, cmpErr)
	assert.Equal(t, 0.0, err)
}

func TestMeanAbsErrSingleDrift(t *testing.T) {
	ref := floats(t, tensor.Shape{3}, []float32{1.0, 2.0, 3.0})
	got := floats(t, tensor.Shape{3}, []float32{1.1, 2.0, 3.0})

	err, cmpErr := MeanAbsErr(ref, got)
	require.NoError(t, cmpErr)
	assert.InDelta(t, 0.0333, err, 1e-4)
}

func TestMeanAbsErrSizeMismatch(t *testing.T) {
	ref := floats(t, tensor.Shape{3}, []float32{1, 2, 3})
	got := floats(t, tensor.Shape{4}, []float32{1, 2, 3, 4})

	_, err := MeanAbsErr(ref, got)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestMeanAbsErrDTypeMismatch(t *testing.T) {
	ref := floats(t, tensor.Shape{2}, []float32{1, 2})
	got, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	_, cmpErr := MeanAbsErr(ref, got.Raw())
	assert.ErrorIs(t, cmpErr, ErrDTypeMismatch)
}

func TestMeanAbsErrNil(t *testing.T) {
	ref := floats(t, tensor.Shape{2}, []float32{1, 2})

	_, err := MeanAbsErr(ref, nil)
	assert.ErrorIs(t, err, ErrNilTensor)
	_, err = MeanAbsErr(nil, ref)
	assert.ErrorIs(t, err, ErrNilTensor)
}

func TestMeanAbsErrNaNPropagates(t *testing.T) {
	ref := floats(t, tensor.Shape{3}, []float32{1, 2, 3})
	got := floats(t, tensor.Shape{3}, []float32{1, float32(math.NaN()), 3})

	err, cmpErr := MeanAbsErr(ref, got)
	require.NoError(t, cmpErr)
	assert.True(t, math.IsNaN(err), "NaN elements must not be skipped")
}

func TestMeanAbsErrIntTensors(t *testing.T) {
	ref, err := tensor.FromSlice([]int32{10, 20, 30}, tensor.Shape{3})
	require.NoError(t, err)
	got, err := tensor.FromSlice([]int32{13, 20, 30}, tensor.Shape{3})
	require.NoError(t, err)

	mae, cmpErr := MeanAbsErr(ref.Raw(), got.Raw())
	require.NoError(t, cmpErr)
	assert.Equal(t, 1.0, mae)
}

func TestMaxAbsErr(t *testing.T) {
	ref := floats(t, tensor.Shape{3}, []float32{1, 2, 3})
	got := floats(t, tensor.Shape{3}, []float32{1.5, 2, 2})

	worst, err := MaxAbsErr(ref, got)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, worst, 1e-9)
}

func TestMaxAbsErrNaN(t *testing.T) {
	ref := floats(t, tensor.Shape{2}, []float32{1, 2})
	got := floats(t, tensor.Shape{2}, []float32{float32(math.NaN()), 2})

	worst, err := MaxAbsErr(ref, got)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(worst))
}

func TestRMSE(t *testing.T) {
	ref := floats(t, tensor.Shape{2}, []float32{0, 0})
	got := floats(t, tensor.Shape{2}, []float32{3, 4})

	rmse, err := RMSE(ref, got)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), rmse, 1e-9)
}

func TestRMSESizeMismatch(t *testing.T) {
	ref := floats(t, tensor.Shape{2}, []float32{0, 0})
	got := floats(t, tensor.Shape{3}, []float32{0, 0, 0})

	_, err := RMSE(ref, got)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
