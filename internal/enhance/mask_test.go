package enhance

import (
	"image/color"
	"testing"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    int
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"gray 80", 80, 80, 80, 80},
		{"pure red", 255, 0, 0, 76},
		{"pure green", 0, 255, 0, 150},
		{"pure blue", 0, 0, 255, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luma(tt.r, tt.g, tt.b)
			if abs(int(got)-tt.want) > 1 {
				t.Errorf("Luma(%d,%d,%d): got %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestBuildMask_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		gray uint8
		want uint8
	}{
		{0, MaskDark},
		{79, MaskDark},
		{80, MaskLight},
		{81, MaskLight},
		{255, MaskLight},
	}

	for _, tt := range tests {
		img := solidImage(4, 3, color.NRGBA{tt.gray, tt.gray, tt.gray, 255})
		mask := BuildMask(img, DefaultThreshold)
		for i, v := range mask.Pix {
			if v != tt.want {
				t.Fatalf("gray %d: mask[%d] = %d, want %d", tt.gray, i, v, tt.want)
			}
		}
	}
}

func TestBuildMask_MatchesLuma(t *testing.T) {
	img := randomImage(40, 30, 7)
	mask := BuildMask(img, DefaultThreshold)

	if mask.Bounds().Dx() != 40 || mask.Bounds().Dy() != 30 {
		t.Fatalf("mask dimensions: got %v, want 40x30", mask.Bounds().Size())
	}

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			c := img.NRGBAAt(x, y)
			dark := Luma(c.R, c.G, c.B) < DefaultThreshold
			got := mask.GrayAt(x, y).Y
			if got != MaskDark && got != MaskLight {
				t.Fatalf("mask(%d,%d) = %d, want 0 or 255", x, y, got)
			}
			if dark != (got == MaskDark) {
				t.Errorf("mask(%d,%d) = %d for luma %d", x, y, got, Luma(c.R, c.G, c.B))
			}
		}
	}
}

func TestBuildMask_CustomThreshold(t *testing.T) {
	img := solidImage(2, 2, color.NRGBA{100, 100, 100, 255})

	if got := BuildMask(img, 101).Pix[0]; got != MaskDark {
		t.Errorf("threshold 101: got %d, want %d", got, MaskDark)
	}
	if got := BuildMask(img, 100).Pix[0]; got != MaskLight {
		t.Errorf("threshold 100: got %d, want %d", got, MaskLight)
	}
	if got := BuildMask(solidImage(2, 2, color.NRGBA{0, 0, 0, 255}), 0).Pix[0]; got != MaskLight {
		t.Errorf("threshold 0 should mark nothing dark, got %d", got)
	}
}
