package imaging

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound means the path does not resolve to a regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnreadableImage means the file exists but could not be decoded.
	ErrUnreadableImage = errors.New("unreadable image")
)

// DecodeError reports a failed image load. Kind is ErrFileNotFound or
// ErrUnreadableImage and can be matched with errors.Is.
type DecodeError struct {
	Path string
	Kind error
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
