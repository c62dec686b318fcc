package capture

import "fmt"

// NotFoundError indicates a capture path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("capture file does not exist: %s", e.Path)
}

// DecodeError indicates capture content that is not valid JSON for the
// HAR format. An empty file is a decode error, not a distinct state.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode capture %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
