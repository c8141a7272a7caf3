package stardust

import "errors"

var (
	ErrInvalidLength         = errors.New("stardust: invalid buffer length")
	ErrTruncated             = errors.New("stardust: truncated data")
	ErrTrailingBytes         = errors.New("stardust: trailing bytes")
	ErrMessageTooLarge       = errors.New("stardust: message exceeds maximum length")
	ErrInvalidParentCount    = errors.New("stardust: invalid parent count")
	ErrParentsNotSorted      = errors.New("stardust: parents not sorted and unique")
	ErrPayloadLengthMismatch = errors.New("stardust: payload length mismatch")
	ErrUnsupportedPayload    = errors.New("stardust: unsupported payload type")
	ErrTagTooLong            = errors.New("stardust: tag too long")
	ErrInvalidSignatureCount = errors.New("stardust: invalid signature count")
	ErrUnsupportedSignature  = errors.New("stardust: unsupported signature kind")
	ErrSignaturesNotSorted   = errors.New("stardust: signatures not sorted and unique")
	ErrEmptyOpaquePayload    = errors.New("stardust: empty payload body")
	ErrInvalidHex            = errors.New("stardust: invalid hex identifier")

	ErrUnknownMilestoneKey       = errors.New("stardust: milestone signed by a key outside its key ranges")
	ErrInvalidMilestoneSignature = errors.New("stardust: invalid milestone signature")
	ErrNotEnoughSignatures       = errors.New("stardust: not enough milestone signatures")
)
