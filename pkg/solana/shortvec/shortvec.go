// Package shortvec implements the compact-u16 length encoding used by the
// Solana wire format.
//
// Reference: https://docs.solana.com/developing/programming-model/transactions#compact-array-format
package shortvec

import (
	"fmt"
	"io"
	"math"
)

// EncodeLen encodes length into the writer.
//
// If length > math.MaxUint16, an error is returned.
func EncodeLen(w io.Writer, length int) (n int, err error) {
	if length > math.MaxUint16 {
		return 0, fmt.Errorf("len exceeds %d", math.MaxUint16)
	}

	written := 0
	buf := make([]byte, 1)

	for {
		buf[0] = byte(length & 0x7f)
		length >>= 7
		if length == 0 {
			n, err := w.Write(buf)
			written += n

			return written, err
		}

		buf[0] |= 0x80
		n, err := w.Write(buf)
		written += n
		if err != nil {
			return written, err
		}
	}
}

// DecodeLen decodes a shortvec encoded length from the reader.
func DecodeLen(r io.Reader) (length int, err error) {
	var offset int
	buf := make([]byte, 1)

	for {
		if _, err := r.Read(buf); err != nil {
			return 0, err
		}

		length |= int(buf[0]&0x7f) << (offset * 7)
		offset++

		if buf[0]&0x80 == 0 {
			break
		}
	}

	if offset > 3 {
		return 0, fmt.Errorf("invalid size: %d (max 3)", offset)
	}

	return length, nil
}
