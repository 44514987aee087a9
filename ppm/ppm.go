// Package ppm writes pixel buffers as binary portable pixmaps (P6).
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"rastergen/pixel"
)

const maxVal = 255

// Encode writes b to w: a text header with the dimensions and maximum
// channel value followed by one R, G, B byte triple per pixel in row-major
// order.
func Encode(w io.Writer, b *pixel.Buffer) error {
	header := fmt.Sprintf("P6\n%d %d\n%d\n", b.Width, b.Height, maxVal)
	bw := bufio.NewWriterSize(w, len(header)+3*len(b.Pix))

	if _, err := bw.WriteString(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for _, c := range b.Pix {
		bw.WriteByte(c.R())
		bw.WriteByte(c.G())
		bw.WriteByte(c.B())
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write pixels: %w", err)
	}
	return nil
}

// Save encodes b into the file at path, replacing any existing file. A
// failed write can leave a truncated file behind.
func Save(path string, b *pixel.Buffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, closeErr)
		}
	}()

	if err = Encode(f, b); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("could not flush %q: %w", path, err)
	}

	slog.Info("created", "file", path)
	return nil
}
