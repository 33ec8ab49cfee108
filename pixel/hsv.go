package pixel

import (
	"image/color"
	"math"
)

// HSV holds hue, saturation and value, each in [0, 1] for colors that came
// from RGB samples in [0, 1].
type HSV struct {
	H float32
	S float32
	V float32
}

var HSVModel = color.ModelFunc(hsvConvert)

func hsvConvert(c color.Color) color.Color {
	if _, ok := c.(HSV); ok {
		return c
	}

	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	h, s, v := RGBToHSV(float32(nc.R)/0xffff, float32(nc.G)/0xffff, float32(nc.B)/0xffff)
	return HSV{H: h, S: s, V: v}
}

func (c HSV) RGBA() (uint32, uint32, uint32, uint32) {
	r, g, b := HSVToRGB(c.H, c.S, c.V)
	return uint32(clamp(r, 0, 1) * 0xffff), uint32(clamp(g, 0, 1) * 0xffff), uint32(clamp(b, 0, 1) * 0xffff), 0xffff
}

func max3(a, b, c float32) float32 {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}

func min3(a, b, c float32) float32 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// RGBToHSV converts one pixel. The hue formula is picked by exact equality of
// the maximum with R, then G, then B.
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	v = max3(r, g, b)
	chroma := v - min3(r, g, b)
	if v != 0 {
		s = chroma / v
	}
	if chroma == 0 {
		return 0, s, v
	}

	var hl float32
	switch v {
	case r:
		hl = (g - b) / chroma
	case g:
		hl = (b-r)/chroma + 2
	default:
		hl = (r-g)/chroma + 4
	}

	h = hl / 6
	if hl < 0 {
		h += 1
	}
	return h, s, v
}

// HSVToRGB converts one pixel. Sector tests are closed at both ends for
// [0,1] and closed above for the rest, anything past 5 (or negative) falls in
// the last sector.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	chroma := s * v
	hl := h * 6
	d := float32(math.Mod(float64(hl), 2)) - 1
	x := float32(float64(chroma) * (1 - math.Abs(float64(d))))
	m := v - chroma

	switch {
	case 0 <= hl && hl <= 1:
		r, g, b = chroma, x, 0
	case 1 < hl && hl <= 2:
		r, g, b = x, chroma, 0
	case 2 < hl && hl <= 3:
		r, g, b = 0, chroma, x
	case 3 < hl && hl <= 4:
		r, g, b = 0, x, chroma
	case 4 < hl && hl <= 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return r + m, g + m, b + m
}

func (im Image) RGBToHSV() {
	im.RGBToHSVOn(Serial)
}

func (im Image) RGBToHSVOn(r Ranger) {
	im.mustRGB("rgb to hsv")
	im.apply3(r, RGBToHSV)
}

func (im Image) HSVToRGB() {
	im.HSVToRGBOn(Serial)
}

func (im Image) HSVToRGBOn(r Ranger) {
	im.mustRGB("hsv to rgb")
	im.apply3(r, HSVToRGB)
}

func (im Image) apply3(r Ranger, f func(a, b, c float32) (float32, float32, float32)) {
	n := im.planeSize()
	c0, c1, c2 := im.Data[:n], im.Data[n:2*n], im.Data[2*n:3*n]
	r.Range(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c0[i], c1[i], c2[i] = f(c0[i], c1[i], c2[i])
		}
	})
}
