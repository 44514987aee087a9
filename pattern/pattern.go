// Package pattern fills pixel buffers with procedural two-color patterns.
//
// Every generator overwrites the whole buffer. Geometric parameters are
// preconditions, not inputs to validate: a tile size below one, a negative
// radius or a non-square buffer for HollowCircle cause a panic.
package pattern

import (
	"fmt"

	"rastergen/pixel"
)

// Func renders a pattern using the foreground and background colors.
type Func func(b *pixel.Buffer, fg, bg pixel.Color)

type Pattern struct {
	Name   string
	Render Func
}

// With binds a tile size or radius to a generator.
func With(name string, gen func(*pixel.Buffer, pixel.Color, pixel.Color, int), param int) Pattern {
	return Pattern{
		Name: name,
		Render: func(b *pixel.Buffer, fg, bg pixel.Color) {
			gen(b, fg, bg, param)
		},
	}
}

func Checkerboard(b *pixel.Buffer, fg, bg pixel.Color, tileSize int) {
	mustTileSize(tileSize)
	fill(b, fg, bg, func(x, y int) bool {
		return (x/tileSize+y/tileSize)%2 == 0
	})
}

func DiagonalStripes(b *pixel.Buffer, fg, bg pixel.Color, tileSize int) {
	mustTileSize(tileSize)
	fill(b, fg, bg, func(x, y int) bool {
		return ((x+y)/tileSize)%2 == 0
	})
}

func VerticalStripes(b *pixel.Buffer, fg, bg pixel.Color, tileSize int) {
	mustTileSize(tileSize)
	fill(b, fg, bg, func(x, _ int) bool {
		return x%(2*tileSize) < tileSize
	})
}

func HorizontalStripes(b *pixel.Buffer, fg, bg pixel.Color, tileSize int) {
	mustTileSize(tileSize)
	fill(b, fg, bg, func(_, y int) bool {
		return y%(2*tileSize) < tileSize
	})
}

func fill(b *pixel.Buffer, fg, bg pixel.Color, isFg func(x, y int) bool) {
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Width : (y+1)*b.Width]
		for x := range row {
			if isFg(x, y) {
				row[x] = fg
			} else {
				row[x] = bg
			}
		}
	}
}

func mustTileSize(tileSize int) {
	if tileSize < 1 {
		panic(fmt.Sprintf("pattern: tile size must be positive, got %d", tileSize))
	}
}

func mustRadius(radius int) {
	if radius < 0 {
		panic(fmt.Sprintf("pattern: radius must not be negative, got %d", radius))
	}
}
