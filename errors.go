package matte

import "errors"

var (
	// ErrDecodeFailed reports that the subject image or baseline mask
	// failed to decode. Fatal to the session: it enters StateErrored and
	// rejects all further input.
	ErrDecodeFailed = errors.New("matte: source decode failed")

	// ErrDimensionMismatch reports that the subject and baseline mask do
	// not share pixel dimensions. This is a programming precondition
	// violation, caught at construction rather than per pixel.
	ErrDimensionMismatch = errors.New("matte: subject and mask dimensions differ")

	// ErrBackgroundDecode reports that a background image failed to
	// decode. Recoverable: the prior background configuration is left
	// untouched.
	ErrBackgroundDecode = errors.New("matte: background decode failed")

	// ErrSessionClosed reports an operation on a canceled session.
	ErrSessionClosed = errors.New("matte: session closed")
)
