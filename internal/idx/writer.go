package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/spf13/afero"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Write encodes a tensor to w in the idx format.
func Write(w io.Writer, raw *tensor.RawTensor) error {
	tag, err := TagOf(raw.DType())
	if err != nil {
		return err
	}

	shape := raw.Shape()
	if len(shape) > MaxRank {
		return fmt.Errorf("%w: rank %d exceeds %d", ErrBadShape, len(shape), MaxRank)
	}

	header := [4]byte{0, 0, tag, byte(len(shape))}
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("idx: write header: %w", err)
	}

	for i, dim := range shape {
		if err := binary.Write(w, binary.BigEndian, uint32(dim)); err != nil {
			return fmt.Errorf("idx: write dimension %d: %w", i, err)
		}
	}

	if _, err := w.Write(encodePayload(raw)); err != nil {
		return fmt.Errorf("idx: write payload: %w", err)
	}
	return nil
}

// WriteFile encodes a tensor to a file on fsys, creating or truncating it.
func WriteFile(fsys afero.Fs, path string, raw *tensor.RawTensor) error {
	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("idx: create %s: %w", path, err)
	}

	if err := Write(f, raw); err != nil {
		_ = f.Close()
		return fmt.Errorf("idx: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("idx: close %s: %w", path, err)
	}
	return nil
}

// encodePayload renders the tensor's elements big-endian, row-major.
func encodePayload(raw *tensor.RawTensor) []byte {
	out := make([]byte, raw.ByteSize())

	switch raw.DType() {
	case tensor.Uint8:
		copy(out, raw.AsUint8())
	case tensor.Int8:
		for i, v := range raw.AsInt8() {
			out[i] = byte(v)
		}
	case tensor.Int16:
		for i, v := range raw.AsInt16() {
			binary.BigEndian.PutUint16(out[i*2:], uint16(v))
		}
	case tensor.Int32:
		for i, v := range raw.AsInt32() {
			binary.BigEndian.PutUint32(out[i*4:], uint32(v))
		}
	case tensor.Float32:
		for i, v := range raw.AsFloat32() {
			binary.BigEndian.PutUint32(out[i*4:], math.Float32bits(v))
		}
	case tensor.Float64:
		for i, v := range raw.AsFloat64() {
			binary.BigEndian.PutUint64(out[i*8:], math.Float64bits(v))
		}
	}
	return out
}
