package common

import (
	"fmt"

	"github.com/pkg/errors"
)

// RangeError is returned when a value can not be represented as U256
type RangeError struct {
	Input  string
	Reason string
}

func (e *RangeError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("u256 out of range: %s", e.Reason)
	}
	return fmt.Sprintf("u256 out of range: %s (input %q)", e.Reason, e.Input)
}

// DecodeError is returned for byte buffers that are not a canonical U256 encoding
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "u256 decode: " + e.Reason
}

func rangeErr(input, reason string) error {
	return &RangeError{Input: input, Reason: reason}
}

func decodeErr(format string, args ...interface{}) error {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

// IsRangeError reports whether err (or its cause) is a *RangeError
func IsRangeError(err error) bool {
	_, ok := errors.Cause(err).(*RangeError)
	return ok
}

// IsDecodeError reports whether err (or its cause) is a *DecodeError
func IsDecodeError(err error) bool {
	_, ok := errors.Cause(err).(*DecodeError)
	return ok
}
