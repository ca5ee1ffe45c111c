package minijson

import "errors"

// Parse failures. They name the stage that rejected the input and carry no
// position; Parse returns them unwrapped.
var (
	ErrEmptyInput           = errors.New("empty input")
	ErrInvalidStringFormat  = errors.New("invalid string format")
	ErrInvalidNumberFormat  = errors.New("invalid number format")
	ErrInvalidBooleanFormat = errors.New("invalid boolean format")
	ErrInvalidObjectEntry   = errors.New("invalid object entry")
)

// ErrUnsupportedArray is returned when decoding standard JSON that contains an
// array, which has no Value representation.
var ErrUnsupportedArray = errors.New("arrays are not supported")
