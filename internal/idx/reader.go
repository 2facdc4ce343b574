package idx

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/spf13/afero"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Read decodes one tensor from r. It performs a single forward pass and
// never returns a partially populated tensor: any header or payload
// problem yields a nil tensor and an error.
func Read(r io.Reader) (*tensor.RawTensor, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrTruncated, err)
	}
	if header[0] != 0 || header[1] != 0 {
		return nil, fmt.Errorf("%w: 0x%02X%02X", ErrBadMagic, header[0], header[1])
	}

	dtype, err := TypeOfTag(header[2])
	if err != nil {
		return nil, err
	}

	rank := int(header[3])
	if rank > MaxRank {
		return nil, fmt.Errorf("%w: rank %d exceeds %d", ErrBadShape, rank, MaxRank)
	}

	// The element count is accumulated with an overflow guard: each
	// dimension is up to 2^32-1 and the running product is capped at
	// MaxTensorBytes/element before the next multiply, so the int64
	// product can never wrap into a small value that slips past the
	// size check.
	maxElements := int64(MaxTensorBytes / dtype.Size())
	elements := int64(1)
	shape := make(tensor.Shape, rank)
	for i := range shape {
		var dim uint32
		if err := binary.Read(r, binary.BigEndian, &dim); err != nil {
			return nil, fmt.Errorf("%w: read dimension %d: %v", ErrTruncated, i, err)
		}
		if dim == 0 {
			return nil, fmt.Errorf("%w: dimension %d is zero", ErrBadShape, i)
		}
		shape[i] = int(dim)
		elements *= int64(dim)
		if elements > maxElements {
			return nil, fmt.Errorf("%w: element count exceeds %d bytes", ErrBadShape, MaxTensorBytes)
		}
	}

	byteSize := int(elements) * dtype.Size()

	raw, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, fmt.Errorf("idx: allocate tensor: %w", err)
	}

	payload := make([]byte, byteSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: payload shorter than %d bytes: %v", ErrTruncated, byteSize, err)
	}

	decodePayload(raw, payload)
	return raw, nil
}

// ReadFile decodes one tensor from a file on fsys. The file handle is
// closed before returning.
func ReadFile(fsys afero.Fs, path string) (*tensor.RawTensor, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("idx: open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close() // Ignore close error on read-only file.
	}()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("idx: %s: %w", path, err)
	}
	return t, nil
}

// decodePayload copies the big-endian payload into the tensor's
// native-order buffer.
func decodePayload(raw *tensor.RawTensor, payload []byte) {
	switch raw.DType() {
	case tensor.Uint8:
		copy(raw.AsUint8(), payload)
	case tensor.Int8:
		dst := raw.AsInt8()
		for i := range dst {
			dst[i] = int8(payload[i])
		}
	case tensor.Int16:
		dst := raw.AsInt16()
		for i := range dst {
			dst[i] = int16(binary.BigEndian.Uint16(payload[i*2:]))
		}
	case tensor.Int32:
		dst := raw.AsInt32()
		for i := range dst {
			dst[i] = int32(binary.BigEndian.Uint32(payload[i*4:]))
		}
	case tensor.Float32:
		dst := raw.AsFloat32()
		for i := range dst {
			dst[i] = math.Float32frombits(binary.BigEndian.Uint32(payload[i*4:]))
		}
	case tensor.Float64:
		dst := raw.AsFloat64()
		for i := range dst {
			dst[i] = math.Float64frombits(binary.BigEndian.Uint64(payload[i*8:]))
		}
	}
}
