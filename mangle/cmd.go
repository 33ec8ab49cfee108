package mangle

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"pixproc/parallel"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type CLICmd struct {
	Scan        string  `help:"Source folder to scan" default:"."`
	Dest        string  `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"processed"`
	Gray        bool    `help:"Convert to grayscale (0.3R + 0.59G + 0.11B)" default:"false"`
	ShiftChan   int     `name:"shift-channel" help:"Channel to shift (0-2)" default:"0" group:"shift"`
	ShiftAmount float32 `help:"Amount added to the shifted channel, samples are in [0,1]" default:"0" group:"shift"`
	ShiftMode   string  `help:"plane shifts the selected channel, legacy keeps the historical offset arithmetic" enum:"plane,legacy" default:"plane" group:"shift"`
	HSV         bool    `name:"hsv" help:"Shift in HSV space, channels are then hue, saturation and value" default:"false" group:"shift"`
	Format      string  `help:"Output format of processed image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.ShiftChan < 0 || c.ShiftChan > 2 {
		return fmt.Errorf("invalid shift channel: %d", c.ShiftChan)
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount int
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		filePath := filepath.Join(c.Scan, file.Name())
		logger := slog.Default().With("file", filePath)

		if err := c.processFile(logger, pool, filePath); err != nil {
			errCount++
			logger.Error("could not process image", "error", err)
			continue
		}
		processedCount++
	}

	slog.Info("stats", "processed", processedCount, "errors", errCount,
		"total", processedCount+errCount)

	if errCount > 0 {
		return fmt.Errorf("error processing %d files", errCount)
	}
	return nil
}

func (c *CLICmd) processFile(logger *slog.Logger, pool *parallel.Pool, filePath string) error {
	imgFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	out := c.pipeline().process(logger, pool, img)

	if err = save(out, imgType, c.Format, c.Dest, filepath.Base(filePath)); err != nil {
		return fmt.Errorf("could not save image to %q: %w", c.Dest, err)
	}
	return nil
}

func (c *CLICmd) pipeline() pipeline {
	return pipeline{
		gray:        c.Gray,
		hsv:         c.HSV,
		shiftChan:   c.ShiftChan,
		shiftAmount: c.ShiftAmount,
		legacy:      c.ShiftMode == "legacy",
	}
}
