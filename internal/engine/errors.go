package engine

import "errors"

// ErrInvalidPinCount flags a roll whose pin count is not an integer between 0 and 10.
var ErrInvalidPinCount = errors.New("invalid pin count")

// ErrFrameOverflow flags a roll that would push a non-strike frame among the
// first nine past ten pins.
var ErrFrameOverflow = errors.New("frame total cannot exceed 10 pins")
