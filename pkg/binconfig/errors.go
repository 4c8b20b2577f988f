package binconfig

import "errors"

// Sentinel errors returned by the config decoder. All are fatal to the
// decode session.
var (
	ErrUnexpectedEOF        = errors.New("binconfig: unexpected end of stream")
	ErrMalformedString      = errors.New("binconfig: unterminated or over-long string")
	ErrUnknownEntryTag      = errors.New("binconfig: unknown entry tag")
	ErrUnknownScalarKind    = errors.New("binconfig: unknown scalar kind")
	ErrUnknownArrayKind     = errors.New("binconfig: unknown array element kind")
	ErrInvalidVarInt        = errors.New("binconfig: invalid varint continuation byte")
	ErrDefinesTruncatedPair = errors.New("binconfig: defines block truncated mid-pair")
)
