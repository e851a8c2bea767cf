package bitstream

import (
	"io"
)

// BitWriter writes bits to an io.Writer, MSB first.
type BitWriter struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	bw := new(BitWriter)
	bw.stream = w
	bw.alignment = 0 // most-significant bit
	return bw
}

// WriteBits writes bits to the stream, regardless of the alignment.
func (bw *BitWriter) WriteBits(bits []Bit) error {
	for _, bit := range bits {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}
	return nil
}

// WriteByte writes a single byte to the stream, regardless of the alignment.
// If the byte is to be split due to alignment, its MS bits complete the pending byte.
func (bw *BitWriter) WriteByte(b byte) error {
	bw.pending[0] |= b >> bw.alignment

	if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
		if err == nil {
			err = io.ErrShortWrite
		}
		return err
	}

	// Fill the new pending byte MS bits with the remaining LS bits.
	bw.pending[0] = b << (8 - bw.alignment)

	return nil
}

// WriteBit writes a single bit to the stream, MSB first.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if bit {
		bw.pending[0] |= 1 << (7 - bw.alignment)
	}

	bw.alignment++

	if bw.alignment == 8 {
		if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
			if err == nil {
				err = io.ErrShortWrite
			}
			return err
		}
		bw.pending[0] = 0
		bw.alignment = 0
	}

	return nil
}

// Flush flushes the currently pending byte to the stream by filling it with bit.
func (bw *BitWriter) Flush(bit Bit) error {
	for bw.alignment != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}

// Pack packs bits MSB first, padding the last byte with zeros.
func Pack(bits []Bit) []byte {
	data := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			data[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return data
}
