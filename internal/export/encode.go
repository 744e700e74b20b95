package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"go.uber.org/multierr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported image formats.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	FormatPNG: png.Encode,
	FormatBMP: bmp.Encode,
	FormatTIFF: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	enc, ok := encoders[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return enc(w, img)
}

// writeImage encodes img into a new file at path. The file is closed on
// every path and a close error is reported.
func writeImage(path string, img image.Image, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}
	return nil
}
