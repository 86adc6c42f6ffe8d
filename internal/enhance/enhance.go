package enhance

import (
	"image"
	"sync"
)

// Result holds the output of the pipeline.
type Result struct {
	// Enhanced is the composited image, same dimensions as the input.
	Enhanced *image.NRGBA

	// Mask marks dark pixels with 255 and light pixels with 0.
	Mask *image.Gray

	// Source is the normalized input the pipeline ran on. Callers reuse it
	// for statistics and comparison output.
	Source *image.NRGBA
}

// Enhance runs the pipeline with DefaultOptions.
//
// It never fails: every well-formed image, including a zero-area one, yields
// a Result.
func Enhance(img image.Image) *Result {
	res, _ := EnhanceWithOptions(img, DefaultOptions())
	return res
}

// EnhanceWithOptions runs the pipeline with caller-supplied options.
//
// The only error is an invalid Options value. The input is never modified.
func EnhanceWithOptions(img image.Image, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	src := Normalize(img)
	if isEmpty(src) {
		return &Result{
			Enhanced: src,
			Mask:     image.NewGray(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy())),
			Source:   src,
		}, nil
	}

	var (
		mask      *image.Gray
		sharpened *image.NRGBA
	)
	if opts.Parallel {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			mask = BuildMask(src, opts.Threshold)
		}()
		sharpened = Sharpen(EqualizeTone(src, opts.BlurSize))
		wg.Wait()
	} else {
		mask = BuildMask(src, opts.Threshold)
		sharpened = Sharpen(EqualizeTone(src, opts.BlurSize))
	}

	enhanced, err := Composite(src, sharpened, mask)
	if err != nil {
		return nil, err
	}
	return &Result{Enhanced: enhanced, Mask: mask, Source: src}, nil
}
