package idx_test

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"

	"github.com/verdict-ml/verdict/idx"
	"github.com/verdict-ml/verdict/tensor"
)

func TestPublicRoundTrip(t *testing.T) {
	want, err := tensor.FromSlice([]float32{1.5, -2, 0.0003}, tensor.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	var buf bytes.Buffer
	if err := idx.Write(&buf, want.Raw()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := idx.Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !got.Shape().Equal(want.Shape()) {
		t.Errorf("shape = %v, want %v", got.Shape(), want.Shape())
	}
	for i, v := range got.AsFloat32() {
		if v != want.Values()[i] {
			t.Errorf("element %d = %v, want %v", i, v, want.Values()[i])
		}
	}
}

func TestPublicReadFileErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	if _, err := idx.ReadFile(fsys, "missing.idx"); err == nil {
		t.Error("ReadFile on a missing file should fail")
	}

	if err := afero.WriteFile(fsys, "bad.idx", []byte{1, 2, 3, 4}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := idx.ReadFile(fsys, "bad.idx"); err == nil {
		t.Error("ReadFile on a malformed file should fail")
	}
}
