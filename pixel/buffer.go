package pixel

import (
	"fmt"
	"image"
	"image/color"
)

var _ image.Image = &Buffer{}

type Buffer struct {
	// Pix holds the buffer's pixels in row-major order. The pixel at
	// (x, y) is Pix[y*Width + x].
	Pix []Color
	// Width and Height are fixed for the lifetime of the buffer.
	Width, Height int
}

// NewBuffer allocates a width*height buffer. Both dimensions must be
// positive.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("pixel: invalid buffer dimensions %dx%d", width, height))
	}
	return &Buffer{
		Pix:    make([]Color, width*height),
		Width:  width,
		Height: height,
	}
}

func (b *Buffer) Offset(x, y int) int {
	return y*b.Width + x
}

func (b *Buffer) Fill(c Color) {
	for i := range b.Pix {
		b.Pix[i] = c
	}
}

func (b *Buffer) Set(x, y int, c Color) {
	b.Pix[b.Offset(x, y)] = c
}

func (b *Buffer) Get(x, y int) Color {
	return b.Pix[b.Offset(x, y)]
}

func (b *Buffer) ColorModel() color.Model {
	return Model
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Buffer) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return Color(0)
	}
	return b.Get(x, y)
}
