package output

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rastergen/pixel"
	"rastergen/ppm"

	"golang.org/x/image/bmp"
)

type Format string

const (
	PPM Format = "ppm"
	BMP Format = "bmp"
)

func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "ppm":
		return PPM, nil
	case "bmp":
		return BMP, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", ext)
	}
}

// Save writes b to path in the format named by the file extension.
func Save(path string, b *pixel.Buffer) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case PPM:
		return ppm.Save(path, b)
	case BMP:
		return saveBMP(path, b)
	}
	return nil
}

func saveBMP(path string, b *pixel.Buffer) (err error) {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, closeErr)
		}
	}()

	if err = bmp.Encode(outFile, b); err != nil {
		return fmt.Errorf("could not encode BMP destination %q: %w", path, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush %q: %w", path, err)
	}

	slog.Info("created", "file", path)
	return nil
}
