package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorChannels(t *testing.T) {
	tests := []struct {
		c       Color
		r, g, b uint8
	}{
		{0xFF0000, 0xFF, 0x00, 0x00},
		{0x00FF00, 0x00, 0xFF, 0x00},
		{0x0000FF, 0x00, 0x00, 0xFF},
		{0x123456, 0x12, 0x34, 0x56},
	}
	for _, tc := range tests {
		if r, g, b := tc.c.R(), tc.c.G(), tc.c.B(); r != tc.r || g != tc.g || b != tc.b {
			t.Errorf("%06X: got (%02X, %02X, %02X), want (%02X, %02X, %02X)", uint32(tc.c), r, g, b, tc.r, tc.g, tc.b)
		}
		if got := RGB(tc.r, tc.g, tc.b); got != tc.c {
			t.Errorf("RGB(%02X, %02X, %02X) = %06X, want %06X", tc.r, tc.g, tc.b, uint32(got), uint32(tc.c))
		}
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0xFF8000).RGBA()
	if r != 0xFFFF || g != 0x8080 || b != 0 || a != 0xFFFF {
		t.Errorf("got (%04X, %04X, %04X, %04X)", r, g, b, a)
	}
}

func TestModel(t *testing.T) {
	got := Model.Convert(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF})
	if got != Color(0x123456) {
		t.Errorf("got %v, want 0x123456", got)
	}
	if got := Model.Convert(Color(0xABCDEF)); got != Color(0xABCDEF) {
		t.Errorf("got %v, want 0xABCDEF", got)
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer(3, 2)
	if len(b.Pix) != 6 {
		t.Fatalf("len(Pix) = %d, want 6", len(b.Pix))
	}
	if got, want := b.Bounds(), image.Rect(0, 0, 3, 2); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	b.Fill(0x111111)
	b.Set(2, 1, 0xFF00FF)
	want := []Color{0x111111, 0x111111, 0x111111, 0x111111, 0x111111, 0xFF00FF}
	if diff := cmp.Diff(want, b.Pix); diff != "" {
		t.Errorf("unexpected pixels (-want +got):\n%s", diff)
	}
	if got := b.At(2, 1); got != Color(0xFF00FF) {
		t.Errorf("At(2, 1) = %v", got)
	}
	if got := b.At(3, 0); got != Color(0) {
		t.Errorf("At(3, 0) = %v, want zero color", got)
	}
}

func TestNewBufferInvalid(t *testing.T) {
	for _, dim := range [][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBuffer(%d, %d) did not panic", dim[0], dim[1])
				}
			}()
			NewBuffer(dim[0], dim[1])
		}()
	}
}
