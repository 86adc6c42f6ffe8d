package enhance

import (
	"fmt"
	"image"
)

// Composite selects, per pixel, the sharpened value where mask is MaskDark
// and the original value everywhere else.
//
// The mask value is broadcast across the three color channels. The boundary
// between the two regions is a hard cut with no feathering.
//
// An error is returned when the three inputs do not share dimensions.
func Composite(original, sharpened *image.NRGBA, mask *image.Gray) (*image.NRGBA, error) {
	ob, sb, mb := original.Bounds(), sharpened.Bounds(), mask.Bounds()
	if ob.Size() != sb.Size() || ob.Size() != mb.Size() {
		return nil, fmt.Errorf("dimension mismatch: original %v, sharpened %v, mask %v",
			ob.Size(), sb.Size(), mb.Size())
	}

	width, height := ob.Dx(), ob.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		orow := original.Pix[y*original.Stride : y*original.Stride+width*4]
		srow := sharpened.Pix[y*sharpened.Stride : y*sharpened.Stride+width*4]
		mrow := mask.Pix[y*mask.Stride : y*mask.Stride+width]
		drow := out.Pix[y*out.Stride : y*out.Stride+width*4]
		for x := 0; x < width; x++ {
			src := orow
			if mrow[x] == MaskDark {
				src = srow
			}
			i := x * 4
			drow[i] = src[i]
			drow[i+1] = src[i+1]
			drow[i+2] = src[i+2]
			drow[i+3] = 0xff
		}
	}
	return out, nil
}
