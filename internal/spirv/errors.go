package spirv

import "errors"

var (
	// ErrMagicMismatch reports a stream whose first word is not the
	// expected magic number. Nothing past the first word is decoded.
	ErrMagicMismatch = errors.New("spirv: magic number mismatch")

	// ErrStreamCorrupt reports a structurally broken stream: a zero or
	// overflowing instruction word count, a truncated header, a missing
	// operand or an unterminated literal string.
	ErrStreamCorrupt = errors.New("spirv: corrupt instruction stream")

	// ErrIDOutOfBounds reports an id operand at or above the header's
	// declared id bound.
	ErrIDOutOfBounds = errors.New("spirv: id out of declared bound")
)
