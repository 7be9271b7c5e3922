// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/image/draw"
)

func TestResize_NearestNeighbor(t *testing.T) {
	tests := []struct {
		name   string
		format string
		pix    []byte // 2x1 source
		want   []byte // 4x2 result
	}{
		{
			"rgba", "RGBA8888",
			[]byte{255, 0, 0, 255, 0, 255, 0, 255},
			bytes.Repeat([]byte{255, 0, 0, 255, 255, 0, 0, 255, 0, 255, 0, 255, 0, 255, 0, 255}, 2),
		},
		{
			"bgra", "BGRA8888",
			[]byte{1, 2, 3, 255, 4, 5, 6, 255},
			bytes.Repeat([]byte{1, 2, 3, 255, 1, 2, 3, 255, 4, 5, 6, 255, 4, 5, 6, 255}, 2),
		},
		{
			"rgb", "RGB888",
			[]byte{10, 20, 30, 40, 50, 60},
			bytes.Repeat([]byte{10, 20, 30, 10, 20, 30, 40, 50, 60, 40, 50, 60}, 2),
		},
		{
			"gray", "Gray8",
			[]byte{0, 200},
			[]byte{0, 0, 200, 200, 0, 0, 200, 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustNew(t, 2, 1, tt.pix, tt.format)

			out, err := s.Resize(4, 2, WithScaler(draw.NearestNeighbor), WithPool(nil))
			if err != nil {
				t.Fatalf("Resize() error = %v", err)
			}
			defer out.Release()

			if out.Width() != 4 || out.Height() != 2 || out.Format() != s.Format() {
				t.Fatalf("result = %v", out)
			}
			if !bytes.Equal(out.data, tt.want) {
				t.Errorf("pixels = %v, want %v", out.data, tt.want)
			}
			if !bytes.Equal(s.data, tt.pix) {
				t.Error("Resize modified the receiver")
			}
		})
	}
}

func TestResize_DefaultScaler(t *testing.T) {
	pix := make([]byte, 8*8*4)
	for i := range pix {
		pix[i] = byte(i)
	}
	s := mustNew(t, 8, 8, pix, "RGBA8888")

	out, err := s.Resize(3, 5)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	defer out.Release()

	if out.Len() != 3*5*4 {
		t.Errorf("Len() = %d, want %d", out.Len(), 3*5*4)
	}
	if out.State() != StateLive || s.State() != StateLive {
		t.Error("both surfaces should stay live")
	}
}

func TestResize_Errors(t *testing.T) {
	s := mustNew(t, 2, 2, make([]byte, 16), "RGBA8888")

	if _, err := s.Resize(0, 4); !errors.Is(err, InvalidArgument) {
		t.Errorf("zero width error = %v, want InvalidArgument", err)
	}

	released, err := New(2, 2, make([]byte, 16), "RGBA8888")
	if err != nil {
		t.Fatal(err)
	}
	released.Release()
	if _, err := released.Resize(4, 4); !errors.Is(err, InvalidArgument) {
		t.Errorf("released error = %v, want InvalidArgument", err)
	}

	var none *Surface
	if _, err := none.Resize(4, 4); !errors.Is(err, InvalidArgument) {
		t.Errorf("nil error = %v, want InvalidArgument", err)
	}
}
