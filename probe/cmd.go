package probe

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"pixproc/pixel"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	File string `arg:"" help:"Image to inspect" type:"existingfile"`
	X    int    `help:"Column, clamped to the image" default:"0"`
	Y    int    `help:"Row, clamped to the image" default:"0"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	file, err := filepath.Abs(c.File)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(file); err == nil && !info.Mode().IsRegular() {
			err = fmt.Errorf("not a regular file")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid image path %q: %w", c.File, err)
	}
	c.File = file

	return nil
}

// Sample is what probe reports for one pixel.
type Sample struct {
	RGB  [3]float32
	HSV  [3]float32
	Gray float32
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.File)

	img, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.File, err)
	}
	defer func() {
		if closeErr := img.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	decoded, imgType, err := image.Decode(img)
	if err != nil {
		return fmt.Errorf("could not decode image %q: %w", c.File, err)
	}

	im := pixel.FromImage(decoded)
	logger.Info("decoded", "type", imgType, "width", im.W, "height", im.H)

	s := sample(im, c.X, c.Y)
	logger.Info("pixel", "x", c.X, "y", c.Y,
		"rgb", s.RGB[:], "hsv", s.HSV[:], "gray", s.Gray)
	return nil
}

// sample reads the pixel at (x, y) in RGB, HSV and grayscale. im is left
// untouched.
func sample(im pixel.Image, x, y int) Sample {
	var s Sample

	hsv := im.Copy()
	hsv.RGBToHSV()
	for c := range 3 {
		s.RGB[c] = im.Get(x, y, c)
		s.HSV[c] = hsv.Get(x, y, c)
	}
	s.Gray = im.Grayscale().Get(x, y, 0)

	return s
}
