package pixel

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// FromImage returns a 3 channel image with non-premultiplied samples in [0, 1].
// Alpha is dropped.
func FromImage(img image.Image) Image {
	b := img.Bounds()
	src, ok := img.(*image.NRGBA64)
	if !ok || b.Min != (image.Point{}) {
		src = image.NewNRGBA64(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}

	im := MakeImage(b.Dx(), b.Dy(), 3)
	n := im.planeSize()
	for y := range im.H {
		for x := range im.W {
			c := src.NRGBA64At(x, y)
			i := y*im.W + x
			im.Data[i] = float32(c.R) / 0xffff
			im.Data[n+i] = float32(c.G) / 0xffff
			im.Data[2*n+i] = float32(c.B) / 0xffff
		}
	}
	return im
}

// ToImage encodes samples in [0, 1] as a 16 bit image. Single channel images
// become Gray16, everything else uses the first 3 planes as RGB.
func (im Image) ToImage() image.Image {
	r := image.Rect(0, 0, im.W, im.H)
	n := im.planeSize()

	if im.C == 1 {
		dst := image.NewGray16(r)
		for y := range im.H {
			for x := range im.W {
				dst.SetGray16(x, y, color.Gray16{Y: toUint16(im.Data[y*im.W+x])})
			}
		}
		return dst
	}

	dst := image.NewNRGBA64(r)
	for y := range im.H {
		for x := range im.W {
			i := y*im.W + x
			dst.SetNRGBA64(x, y, color.NRGBA64{
				R: toUint16(im.Data[i]),
				G: toUint16(im.Data[(1%im.C)*n+i]),
				B: toUint16(im.Data[(2%im.C)*n+i]),
				A: 0xffff,
			})
		}
	}
	return dst
}

func toUint16(v float32) uint16 {
	return uint16(clamp(v, 0, 1)*0xffff + 0.5)
}
