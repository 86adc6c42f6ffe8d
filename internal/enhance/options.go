package enhance

import "fmt"

const (
	// DefaultThreshold is the luma value below which a pixel counts as dark.
	DefaultThreshold = 80

	// DefaultBlurSize is the side length of the Gaussian denoising kernel.
	DefaultBlurSize = 5

	// MaskDark and MaskLight are the only values a mask cell can hold.
	MaskDark  uint8 = 255
	MaskLight uint8 = 0
)

// SharpenKernel is the 3x3 high-pass kernel applied after equalization,
// stored row-major. Its weights sum to 1 so flat regions keep their value.
var SharpenKernel = [9]float64{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// Options tunes the pipeline. The zero value is not usable; start from
// DefaultOptions.
type Options struct {
	// Threshold is the exclusive luma upper bound for dark pixels (0-255).
	Threshold int `json:"threshold"`

	// BlurSize is the Gaussian kernel side length. Must be positive and odd.
	BlurSize int `json:"blur_size"`

	// Parallel computes the mask concurrently with the equalize and sharpen
	// stages. Output is identical either way.
	Parallel bool `json:"parallel"`
}

// DefaultOptions returns the reference configuration: threshold 80, 5x5 blur,
// parallel mask computation.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		BlurSize:  DefaultBlurSize,
		Parallel:  true,
	}
}

// Validate reports whether the options can drive the pipeline.
func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("threshold %d outside range 0-255", o.Threshold)
	}
	if o.BlurSize <= 0 || o.BlurSize%2 == 0 {
		return fmt.Errorf("blur size %d must be a positive odd integer", o.BlurSize)
	}
	return nil
}
