package mangle

import (
	"image"
	"log/slog"

	"pixproc/pixel"
)

type pipeline struct {
	gray        bool
	hsv         bool
	shiftChan   int
	shiftAmount float32
	legacy      bool
}

func (p pipeline) process(logger *slog.Logger, r pixel.Ranger, img image.Image) image.Image {
	im := pixel.FromImage(img)
	logger.Info("processing", "width", im.W, "height", im.H)

	if p.shiftAmount != 0 {
		if p.hsv {
			im.RGBToHSVOn(r)
		}

		logger.Info("shifting", "channel", p.shiftChan, "amount", p.shiftAmount, "hsv", p.hsv, "legacy", p.legacy)
		if p.legacy {
			im.Shift(p.shiftChan, p.shiftAmount)
		} else {
			im.ShiftChannelOn(r, p.shiftChan, p.shiftAmount)
		}

		if p.hsv {
			im.HSVToRGBOn(r)
		}
	}

	if p.gray {
		logger.Info("converting to grayscale")
		im = im.GrayscaleOn(r)
	}

	im.ClampToOn(r, 0, 1)
	return im.ToImage()
}
