// Package enhance implements low-light region enhancement for still images.
//
// The pipeline is a fixed four-stage filter chain:
//
//  1. Mask: luma below a threshold (default 80) marks a pixel as dark (255),
//     everything else is light (0).
//  2. Tone: the whole image is blurred with a 5x5 Gaussian, converted to YCbCr,
//     and the Y channel is histogram-equalized. Cb and Cr are left untouched.
//  3. Sharpen: the equalized image is convolved with a fixed 3x3 high-pass
//     kernel (center 5, orthogonal neighbors -1).
//  4. Composite: sharpened pixels replace original pixels only where the mask
//     is 255. Light pixels are returned bit-identical.
//
// Stages 2 and 3 do not read the mask, so EnhanceWithOptions may compute the
// mask on a separate goroutine.
//
// # Pixel Model
//
// Inputs of any color model are normalized to an opaque 8-bit NRGBA buffer
// with its origin at (0,0). Alpha is discarded: the pipeline models a
// three-channel image. All stages allocate new buffers and never mutate their
// inputs.
//
// # Borders
//
// Both the Gaussian blur and the sharpening convolution replicate edge pixels
// outside the image bounds.
//
// # Thread Safety
//
// Every function is pure. Concurrent calls on independent images need no
// synchronization.
package enhance
