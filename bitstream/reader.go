package bitstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/bitframe/bitframe/shared"
)

// ReadRange reads bitCount bits starting at bit startBit of src.
func ReadRange(src io.ReaderAt, startBit, bitCount int64) ([]bool, error) {
	if bitCount < 0 {
		return nil, fmt.Errorf("%w: invalid bit count %d", shared.ErrRangeRead, bitCount)
	}
	dst := make([]bool, bitCount)
	if err := ReadRangeInto(src, dst, startBit); err != nil {
		return nil, err
	}
	return dst, nil
}

// ReadRangeInto fills dst with len(dst) bits starting at bit startBit of src.
// The whole byte window is read with a single positioned read before any bit
// is decoded, so dst is left untouched on failure. It doesn't depend on a
// shared cursor and may be called concurrently on the same src.
func ReadRangeInto(src io.ReaderAt, dst []bool, startBit int64) error {
	if src == nil {
		return fmt.Errorf("%w: source is not open", shared.ErrRangeRead)
	}
	if startBit < 0 {
		return fmt.Errorf("%w: invalid start bit %d", shared.ErrRangeRead, startBit)
	}

	bitCount := int64(len(dst))
	startByte, numBytes := Window(startBit, bitCount)
	if numBytes <= 0 {
		return fmt.Errorf("%w: no bytes to read; start bit: %d, bit count: %d", shared.ErrRangeRead, startBit, bitCount)
	}

	window := make([]byte, numBytes)
	n, err := src.ReadAt(window, startByte)
	if int64(n) < numBytes {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return fmt.Errorf("%w: read %d of %d bytes at offset %d: %w", shared.ErrRangeRead, n, numBytes, startByte, err)
	}

	bitOffset := startBit % 8
	if last := (bitOffset + bitCount - 1) / 8; bitCount > 0 && last >= numBytes {
		return fmt.Errorf("%w: byte index %d out of window of %d bytes", shared.ErrRangeRead, last, numBytes)
	}

	Unpack(dst, window, bitOffset)
	return nil
}
