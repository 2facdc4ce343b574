// Copyright 2026 Verdict Harness. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package idx provides the public API for reading and writing tensors
// in the idx binary format.
//
// Example:
//
//	raw, err := idx.ReadFile(afero.NewOsFs(), "idx_data/output_max_x.idx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(raw.Shape())
package idx

import (
	"io"

	"github.com/spf13/afero"

	"github.com/verdict-ml/verdict/internal/idx"
	"github.com/verdict-ml/verdict/internal/tensor"
)

// Common errors.
var (
	ErrBadMagic        = idx.ErrBadMagic
	ErrUnsupportedType = idx.ErrUnsupportedType
	ErrBadShape        = idx.ErrBadShape
	ErrTruncated       = idx.ErrTruncated
)

// Read decodes one tensor from r.
func Read(r io.Reader) (*tensor.RawTensor, error) {
	return idx.Read(r)
}

// ReadFile decodes one tensor from a file on fsys.
func ReadFile(fsys afero.Fs, path string) (*tensor.RawTensor, error) {
	return idx.ReadFile(fsys, path)
}

// Write encodes a tensor to w in the idx format.
func Write(w io.Writer, raw *tensor.RawTensor) error {
	return idx.Write(w, raw)
}

// WriteFile encodes a tensor to a file on fsys, creating or truncating it.
func WriteFile(fsys afero.Fs, path string, raw *tensor.RawTensor) error {
	return idx.WriteFile(fsys, path, raw)
}
