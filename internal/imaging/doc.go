// Package imaging is the file boundary around the enhancement pipeline.
//
// It decodes image files into memory, encodes results back to disk or to
// base64 PNG, and renders a side-by-side comparison sheet. The pipeline itself
// lives in package enhance and never touches the filesystem.
//
// # Errors
//
// Load failures are reported as *DecodeError and fall into two kinds:
//   - ErrFileNotFound: the path does not resolve to a regular file
//   - ErrUnreadableImage: the file exists but is not a decodable image
//
// Both are terminal for that file; nothing is retried.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions are
// stateless.
package imaging
