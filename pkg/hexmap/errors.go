package hexmap

import "errors"

// ErrInvalidSize indicates a hex size that is not a positive finite number.
var ErrInvalidSize = errors.New("hexmap: hex size must be a positive finite number")

// ErrSpanTooLarge indicates cells spread over more than MaxSpan columns or rows.
var ErrSpanTooLarge = errors.New("hexmap: map spans too many columns or rows")
