// Package idx reads and writes tensors in the idx binary format.
//
// Layout: two zero bytes, an element-type tag byte, a rank byte,
// then rank big-endian uint32 dimension sizes, then the flattened
// element payload in row-major order, big-endian, no padding.
package idx

import (
	"errors"
	"fmt"

	"github.com/verdict-ml/verdict/internal/tensor"
)

// Element-type tags defined by the idx format.
const (
	TagUint8   byte = 0x08
	TagInt8    byte = 0x09
	TagInt16   byte = 0x0B
	TagInt32   byte = 0x0C
	TagFloat32 byte = 0x0D
	TagFloat64 byte = 0x0E
)

// Limits applied when decoding untrusted files.
const (
	MaxRank        = 16
	MaxTensorBytes = 1 << 31 // 2GB per tensor
)

// Common errors.
var (
	ErrBadMagic        = errors.New("idx: invalid magic bytes")
	ErrUnsupportedType = errors.New("idx: unsupported element type tag")
	ErrBadShape        = errors.New("idx: invalid shape")
	ErrTruncated       = errors.New("idx: truncated file")
)

// TagOf returns the idx tag for a data type.
func TagOf(dt tensor.DataType) (byte, error) {
	switch dt {
	case tensor.Uint8:
		return TagUint8, nil
	case tensor.Int8:
		return TagInt8, nil
	case tensor.Int16:
		return TagInt16, nil
	case tensor.Int32:
		return TagInt32, nil
	case tensor.Float32:
		return TagFloat32, nil
	case tensor.Float64:
		return TagFloat64, nil
	default:
		return 0, fmt.Errorf("idx: no tag for data type %s", dt)
	}
}

// TypeOfTag returns the data type for an idx tag.
func TypeOfTag(tag byte) (tensor.DataType, error) {
	switch tag {
	case TagUint8:
		return tensor.Uint8, nil
	case TagInt8:
		return tensor.Int8, nil
	case TagInt16:
		return tensor.Int16, nil
	case TagInt32:
		return tensor.Int32, nil
	case TagFloat32:
		return tensor.Float32, nil
	case TagFloat64:
		return tensor.Float64, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnsupportedType, tag)
	}
}
