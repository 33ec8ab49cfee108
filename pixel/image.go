package pixel

// Image is a planar float image. Channel k occupies W*H samples starting at
// Data[k*W*H]; within a plane, pixel (x, y) is at y*W + x.
type Image struct {
	W    int
	H    int
	C    int
	Data []float32
}

func MakeImage(w, h, c int) Image {
	if w <= 0 || h <= 0 || c <= 0 {
		return Image{}
	}
	return Image{
		W:    w,
		H:    h,
		C:    c,
		Data: make([]float32, w*h*c),
	}
}

func (im Image) planeSize() int {
	return im.W * im.H
}

func (im Image) Plane(c int) []float32 {
	n := im.planeSize()
	c = clampIndex(c, im.C)
	return im.Data[c*n : (c+1)*n]
}

func (im Image) Get(x, y, c int) float32 {
	return im.Data[im.offset(x, y, c)]
}

func (im Image) Set(x, y, c int, v float32) {
	im.Data[im.offset(x, y, c)] = v
}

func (im Image) offset(x, y, c int) int {
	x = clampIndex(x, im.W)
	y = clampIndex(y, im.H)
	c = clampIndex(c, im.C)
	return im.planeSize()*c + im.W*y + x
}

// clampIndex forces v into [0, dim-1].
func clampIndex(v, dim int) int {
	switch {
	case v <= 0:
		return 0
	case v >= dim:
		return dim - 1
	default:
		return v
	}
}

func (im Image) Copy() Image {
	cp := MakeImage(im.W, im.H, im.C)
	copy(cp.Data, im.Data)
	return cp
}
