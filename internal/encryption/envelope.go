package encryption

import (
	"bytes"
	"fmt"
)

const (
	// FormatVersion and FormatRelease identify the format written by Wrap.
	FormatVersion = 1
	FormatRelease = 1

	// watermarkLiteral is what Unwrap searches for. It is deliberately not
	// derived from FormatVersion/FormatRelease.
	watermarkLiteral = "#cryfa v1.1\n"

	// trailer follows the ciphertext in every envelope.
	trailer = "\n\n"
)

// Watermark returns the header line written in front of the ciphertext.
func Watermark() string {
	return fmt.Sprintf("#cryfa v%d.%d\n", FormatVersion, FormatRelease)
}

// Wrap frames ciphertext as watermark + ciphertext + trailer.
func Wrap(ciphertext []byte) []byte {
	mark := Watermark()

	out := make([]byte, 0, len(mark)+len(ciphertext)+len(trailer))
	out = append(out, mark...)
	out = append(out, ciphertext...)

	return append(out, trailer...)
}

// Unwrap locates the watermark, removes it together with the trailer,
// and returns the ciphertext.
func Unwrap(envelope []byte) ([]byte, error) {
	idx := bytes.Index(envelope, []byte(watermarkLiteral))
	if idx < 0 {
		return nil, fmt.Errorf("%w: watermark %q not found", ErrInvalidEnvelope, watermarkLiteral)
	}

	rest := make([]byte, 0, len(envelope)-len(watermarkLiteral))
	rest = append(rest, envelope[:idx]...)
	rest = append(rest, envelope[idx+len(watermarkLiteral):]...)

	if len(rest) < len(trailer) {
		return nil, fmt.Errorf("%w: truncated after watermark", ErrInvalidEnvelope)
	}

	return rest[:len(rest)-len(trailer)], nil
}
