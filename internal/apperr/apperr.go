package apperr

import "errors"

// InvalidArgumentError reports a caller-supplied value that can never be
// valid, such as a non-positive k. Retrying with the same input is pointless.
type InvalidArgumentError struct {
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func NewInvalidArgument(msg string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: msg}
}

func NewInvalidArgumentWrap(msg string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{Message: msg, Err: err}
}

// IsInvalidArgument reports whether err or anything it wraps is an
// InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
