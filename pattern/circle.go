package pattern

import (
	"fmt"

	"rastergen/pixel"
)

// Circle coordinates are doubled so that pixel centers (2x+1, 2y+1) and the
// buffer center (Width, Height) are both integers.

// Circle draws a solid disc of the given radius around the buffer center.
// With radius 0 only a pixel centered exactly on the buffer center is
// foreground, which happens for odd dimensions only.
func Circle(b *pixel.Buffer, fg, bg pixel.Color, radius int) {
	mustRadius(radius)
	r2 := 2 * radius
	fill(b, fg, bg, func(x, y int) bool {
		dx := 2*x + 1 - b.Width
		dy := 2*y + 1 - b.Height
		return dx*dx+dy*dy <= r2*r2
	})
}

// HollowCircle draws a one pixel wide circle outline using the midpoint
// algorithm. The buffer must be square so that the diagonal reflections land
// on pixel centers; parts of the ring outside the buffer are clipped.
func HollowCircle(b *pixel.Buffer, fg, bg pixel.Color, radius int) {
	mustRadius(radius)
	if b.Width != b.Height {
		panic(fmt.Sprintf("pattern: hollow circle needs a square buffer, got %dx%d", b.Width, b.Height))
	}
	b.Fill(bg)

	r2 := 2 * radius
	// offsets from the center share the parity of Width+1
	p := (b.Width + 1) % 2
	dy := r2
	if dy%2 != p {
		dy++
	}
	for dx := p; ; dx += 2 {
		// step inward while the midpoint towards the next row is outside
		for dy >= 0 && dx*dx+(dy-1)*(dy-1) > r2*r2 {
			dy -= 2
		}
		if dx > dy {
			break
		}
		plot8(b, fg, dx, dy)
	}
}

func plot8(b *pixel.Buffer, c pixel.Color, dx, dy int) {
	for _, d := range [8][2]int{
		{dx, dy}, {-dx, dy}, {dx, -dy}, {-dx, -dy},
		{dy, dx}, {-dy, dx}, {dy, -dx}, {-dy, -dx},
	} {
		x := (b.Width + d[0] - 1) / 2
		y := (b.Height + d[1] - 1) / 2
		if x >= 0 && x < b.Width && y >= 0 && y < b.Height {
			b.Set(x, y, c)
		}
	}
}
