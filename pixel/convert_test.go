package pixel

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 20, 13, 22))
	src.Set(10, 20, color.RGBA{R: 0xff, A: 0xff})
	src.Set(12, 21, color.RGBA{G: 0xff, B: 0x80, A: 0xff})

	im := FromImage(src)
	if im.W != 3 || im.H != 2 || im.C != 3 {
		t.Fatalf("FromImage dims = %dx%dx%d, want 3x2x3", im.W, im.H, im.C)
	}
	if got := im.Get(0, 0, 0); got != 1 {
		t.Errorf("red at origin = %v, want 1", got)
	}
	if got := im.Get(2, 1, 1); got != 1 {
		t.Errorf("green at (2, 1) = %v, want 1", got)
	}
	if got := im.Get(2, 1, 2); !approx(got, float32(0x8080)/0xffff, 1e-6) {
		t.Errorf("blue at (2, 1) = %v, want %v", got, float32(0x8080)/0xffff)
	}
}

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(1, 0, color.Gray{Y: 0xff})

	im := FromImage(src)
	for c := range 3 {
		if got := im.Get(1, 0, c); got != 1 {
			t.Errorf("channel %d = %v, want 1", c, got)
		}
		if got := im.Get(0, 0, c); got != 0 {
			t.Errorf("channel %d = %v, want 0", c, got)
		}
	}
}

func TestToImageRoundTrip(t *testing.T) {
	im := MakeImage(4, 3, 3)
	for i := range im.Data {
		im.Data[i] = float32(i%5) / 4
	}

	back := FromImage(im.ToImage())
	for i := range im.Data {
		if !approx(back.Data[i], im.Data[i], 1.0/0xffff) {
			t.Errorf("Data[%d] = %v, want %v", i, back.Data[i], im.Data[i])
		}
	}
}

func TestToImageClampsAndGray(t *testing.T) {
	im := Image{W: 3, H: 1, C: 1, Data: []float32{-1, 0.5, 2}}

	gray, ok := im.ToImage().(*image.Gray16)
	if !ok {
		t.Fatalf("ToImage of 1 channel = %T, want *image.Gray16", im.ToImage())
	}
	want := []uint16{0, 0x8000, 0xffff}
	for x, w := range want {
		if got := gray.Gray16At(x, 0).Y; got != w {
			t.Errorf("gray at %d = %#x, want %#x", x, got, w)
		}
	}
}
