package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"rastergen/output"
	"rastergen/pattern"
	"rastergen/pixel"
)

const (
	width  = 256
	height = 256

	tileSize = 32
	radius   = 100

	foreground pixel.Color = 0xFF00FF
	background pixel.Color = 0x000000

	outDir = "out"
)

var formats = []string{"ppm", "bmp"}

var patterns = []pattern.Pattern{
	pattern.With("checker", pattern.Checkerboard, tileSize),
	pattern.With("diagonal", pattern.DiagonalStripes, tileSize),
	pattern.With("vertical", pattern.VerticalStripes, tileSize),
	pattern.With("horizontal", pattern.HorizontalStripes, tileSize),
	pattern.With("circle", pattern.Circle, radius),
	pattern.With("hollow_circle", pattern.HollowCircle, radius),
}

func main() {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		slog.Error("unable to create output folder", "dir", outDir, "error", err)
		os.Exit(1)
	}

	slog.Info("rendering", "width", width, "height", height, "patterns", len(patterns))

	pixels := pixel.NewBuffer(width, height)
	var savedCount, errCount int
	for _, p := range patterns {
		p.Render(pixels, foreground, background)

		for _, ext := range formats {
			name := filepath.Join(outDir, fmt.Sprintf("%s.%s", p.Name, ext))
			if err := output.Save(name, pixels); err != nil {
				errCount++
				slog.Error("could not save image", "pattern", p.Name, "file", name, "error", err)
				continue
			}
			savedCount++
		}
	}

	slog.Info("stats", "saved", savedCount, "errors", errCount, "total", savedCount+errCount)
	if errCount > 0 {
		os.Exit(1)
	}
}
