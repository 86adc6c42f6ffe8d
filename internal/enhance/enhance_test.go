package enhance

import (
	"bytes"
	"image"
	"image/color"
	"sync"
	"testing"
)

func TestEnhance_ShapePreserved(t *testing.T) {
	sizes := []image.Point{{1, 1}, {1, 9}, {9, 1}, {3, 3}, {37, 23}}
	for _, sz := range sizes {
		res := Enhance(randomImage(sz.X, sz.Y, 1))
		if got := res.Enhanced.Bounds().Size(); got != sz {
			t.Errorf("enhanced size: got %v, want %v", got, sz)
		}
		if got := res.Mask.Bounds().Size(); got != sz {
			t.Errorf("mask size: got %v, want %v", got, sz)
		}
	}
}

func TestEnhance_MaskAndUntouchedRegion(t *testing.T) {
	img := randomImage(48, 32, 42)
	res := Enhance(img)

	dark := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 48; x++ {
			c := img.NRGBAAt(x, y)
			m := res.Mask.GrayAt(x, y).Y
			if m != MaskDark && m != MaskLight {
				t.Fatalf("mask(%d,%d) = %d, want 0 or 255", x, y, m)
			}
			isDark := Luma(c.R, c.G, c.B) < DefaultThreshold
			if isDark != (m == MaskDark) {
				t.Errorf("mask(%d,%d) = %d for luma %d", x, y, m, Luma(c.R, c.G, c.B))
			}
			if m == MaskLight {
				if got := res.Enhanced.NRGBAAt(x, y); got != c {
					t.Errorf("light pixel (%d,%d) changed: got %v, want %v", x, y, got, c)
				}
			} else {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("fixture produced no dark pixels")
	}
}

func TestEnhance_AllWhite(t *testing.T) {
	img := solidImage(16, 12, color.NRGBA{255, 255, 255, 255})
	res := Enhance(img)

	for i, v := range res.Mask.Pix {
		if v != MaskLight {
			t.Fatalf("mask[%d] = %d, want 0", i, v)
		}
	}
	if !bytes.Equal(res.Enhanced.Pix, img.Pix) {
		t.Error("all-white image should be returned unchanged")
	}
}

func TestEnhance_AllBlack(t *testing.T) {
	img := solidImage(16, 12, color.NRGBA{0, 0, 0, 255})
	res := Enhance(img)

	for i, v := range res.Mask.Pix {
		if v != MaskDark {
			t.Fatalf("mask[%d] = %d, want 255", i, v)
		}
	}
	if !bytes.Equal(res.Enhanced.Pix, img.Pix) {
		t.Error("all-black image should be returned unchanged")
	}
}

func TestEnhance_BrightShiftClearsMask(t *testing.T) {
	// Every channel at least 80 keeps every luma at least 80.
	img := randomImage(20, 20, 3)
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = uint8(80 + int(img.Pix[i+c])*175/255)
		}
	}

	res := Enhance(img)
	for i, v := range res.Mask.Pix {
		if v != MaskLight {
			t.Fatalf("mask[%d] = %d, want 0", i, v)
		}
	}
}

func TestEnhance_Deterministic(t *testing.T) {
	img := randomImage(33, 21, 99)
	a := Enhance(img)
	b := Enhance(img)

	if !bytes.Equal(a.Enhanced.Pix, b.Enhanced.Pix) {
		t.Error("enhanced output differs between calls")
	}
	if !bytes.Equal(a.Mask.Pix, b.Mask.Pix) {
		t.Error("mask differs between calls")
	}
}

func TestEnhanceWithOptions_SequentialMatchesParallel(t *testing.T) {
	img := randomImage(40, 30, 5)

	seq := DefaultOptions()
	seq.Parallel = false
	a, err := EnhanceWithOptions(img, seq)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	b, err := EnhanceWithOptions(img, DefaultOptions())
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if !bytes.Equal(a.Enhanced.Pix, b.Enhanced.Pix) || !bytes.Equal(a.Mask.Pix, b.Mask.Pix) {
		t.Error("parallel and sequential runs disagree")
	}
}

func TestEnhanceWithOptions_Threshold(t *testing.T) {
	img := solidImage(5, 5, color.NRGBA{150, 150, 150, 255})

	opts := DefaultOptions()
	opts.Threshold = 200
	res, err := EnhanceWithOptions(img, opts)
	if err != nil {
		t.Fatalf("EnhanceWithOptions failed: %v", err)
	}
	for i, v := range res.Mask.Pix {
		if v != MaskDark {
			t.Fatalf("mask[%d] = %d, want 255 with threshold 200", i, v)
		}
	}
}

func TestEnhanceWithOptions_Invalid(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{A: 255})

	tests := []struct {
		name string
		opts Options
	}{
		{"negative threshold", Options{Threshold: -1, BlurSize: 5}},
		{"threshold too large", Options{Threshold: 256, BlurSize: 5}},
		{"even blur", Options{Threshold: 80, BlurSize: 4}},
		{"zero blur", Options{Threshold: 80, BlurSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EnhanceWithOptions(img, tt.opts); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEnhance_EmptyImage(t *testing.T) {
	for _, r := range []image.Rectangle{image.Rect(0, 0, 0, 0), image.Rect(0, 0, 0, 7), image.Rect(0, 0, 7, 0)} {
		res := Enhance(image.NewNRGBA(r))
		if !res.Enhanced.Bounds().Empty() || !res.Mask.Bounds().Empty() {
			t.Errorf("%v: expected empty outputs", r)
		}
	}
}

func TestEnhanceWithOptions_SourceIsNormalizedInput(t *testing.T) {
	base := randomImage(20, 16, 5)
	base.Pix[base.PixOffset(4, 2)+3] = 0x40
	sub := base.SubImage(image.Rect(4, 2, 20, 16))
	want := Normalize(sub)

	for _, parallel := range []bool{false, true} {
		opts := DefaultOptions()
		opts.Parallel = parallel
		res, err := EnhanceWithOptions(sub, opts)
		if err != nil {
			t.Fatalf("parallel=%v: %v", parallel, err)
		}
		if res.Source.Bounds() != image.Rect(0, 0, 16, 14) {
			t.Errorf("parallel=%v: Source bounds %v", parallel, res.Source.Bounds())
		}
		if !bytes.Equal(res.Source.Pix, want.Pix) {
			t.Errorf("parallel=%v: Source differs from Normalize(input)", parallel)
		}
		if res.Source.Pix[3] != 0xff {
			t.Errorf("parallel=%v: Source alpha %d, want 255", parallel, res.Source.Pix[3])
		}
		if &res.Source.Pix[0] == &base.Pix[base.PixOffset(4, 2)] {
			t.Errorf("parallel=%v: Source aliases the input buffer", parallel)
		}
	}

	if res := Enhance(image.NewNRGBA(image.Rect(0, 0, 0, 3))); res.Source == nil {
		t.Error("empty input should still report a Source")
	}
}

func TestEnhance_InputNotMutated(t *testing.T) {
	img := randomImage(24, 24, 11)
	before := append([]uint8(nil), img.Pix...)

	Enhance(img)

	if !bytes.Equal(before, img.Pix) {
		t.Error("Enhance modified its input")
	}
}

func TestEnhance_NonZeroOriginAndOtherModels(t *testing.T) {
	base := randomImage(30, 30, 21)
	sub := base.SubImage(image.Rect(5, 7, 25, 22)).(*image.NRGBA)

	res := Enhance(sub)
	if got := res.Enhanced.Bounds(); got != image.Rect(0, 0, 20, 15) {
		t.Fatalf("bounds: got %v, want origin-anchored 20x15", got)
	}
	for y := 0; y < 15; y++ {
		for x := 0; x < 20; x++ {
			if res.Mask.GrayAt(x, y).Y == MaskLight && res.Enhanced.NRGBAAt(x, y) != sub.NRGBAAt(x+5, y+7) {
				t.Fatalf("light pixel (%d,%d) changed", x, y)
			}
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range rgba.Pix {
		rgba.Pix[i] = 255
	}
	if out := Enhance(rgba); !bytes.Equal(out.Enhanced.Pix, rgba.Pix) {
		t.Error("opaque white RGBA should pass through unchanged")
	}
}

func TestEnhance_ConcurrentCalls(t *testing.T) {
	img := randomImage(32, 32, 8)
	want := Enhance(img)

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Enhance(img)
			if !bytes.Equal(got.Enhanced.Pix, want.Enhanced.Pix) {
				errs <- "enhanced output differs under concurrency"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Error(msg)
	}
}
