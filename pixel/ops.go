package pixel

import "fmt"

// Ranger runs fn over consecutive sub-ranges covering [0, n).
type Ranger interface {
	Range(n int, fn func(lo, hi int))
}

type serial struct{}

func (serial) Range(n int, fn func(lo, hi int)) {
	if n > 0 {
		fn(0, n)
	}
}

var Serial Ranger = serial{}

func (im Image) mustRGB(op string) {
	if im.C != 3 {
		panic(fmt.Sprintf("pixel: %s needs 3 channels, got %d", op, im.C))
	}
}

func (im Image) Grayscale() Image {
	return im.GrayscaleOn(Serial)
}

func (im Image) GrayscaleOn(r Ranger) Image {
	im.mustRGB("grayscale")

	n := im.planeSize()
	gray := MakeImage(im.W, im.H, 1)
	red, green, blue := im.Data[:n], im.Data[n:2*n], im.Data[2*n:3*n]
	r.Range(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			gray.Data[i] = float32(0.3*float64(red[i]) + 0.59*float64(green[i]) + 0.11*float64(blue[i]))
		}
	})
	return gray
}

// Shift keeps the legacy addressing: it adds v to the W*H*c samples that
// start at offset W*H*c. For c == 0 nothing changes, for c == 1 that is plane
// 1, for larger c the run spans c planes and stops at the end of the buffer.
// Use ShiftChannel to shift exactly one plane.
func (im Image) Shift(c int, v float32) {
	offset := im.planeSize() * c
	if offset <= 0 {
		return
	}
	end := min(2*offset, len(im.Data))
	for i := offset; i < end; i++ {
		im.Data[i] += v
	}
}

func (im Image) ShiftChannel(c int, v float32) {
	im.ShiftChannelOn(Serial, c, v)
}

func (im Image) ShiftChannelOn(r Ranger, c int, v float32) {
	plane := im.Plane(c)
	r.Range(len(plane), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			plane[i] += v
		}
	})
}

func (im Image) Clamp() {
	im.ClampTo(0, 255)
}

func (im Image) ClampOn(r Ranger) {
	im.ClampToOn(r, 0, 255)
}

func (im Image) ClampTo(lo, hi float32) {
	im.ClampToOn(Serial, lo, hi)
}

func (im Image) ClampToOn(r Ranger, lo, hi float32) {
	data := im.Data
	r.Range(len(data), func(from, to int) {
		for i := from; i < to; i++ {
			data[i] = clamp(data[i], lo, hi)
		}
	})
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	} else if x > hi {
		return hi
	}
	return x
}
