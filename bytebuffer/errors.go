package bytebuffer

import "github.com/pkg/errors"

// Error kinds returned by ByteBuffer operations. They are always returned
// wrapped with context, match them with errors.Is or errors.Cause.
var (
	ErrOutOfRange      = errors.New("bytebuffer: out of range")
	ErrTruncatedInput  = errors.New("bytebuffer: truncated input")
	ErrInvalidEncoding = errors.New("bytebuffer: invalid encoding")
	ErrValueTooLarge   = errors.New("bytebuffer: value too large")
)
