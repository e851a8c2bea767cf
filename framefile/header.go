package framefile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/bitframe/bitframe/shared"
)

// Header is the fixed record at offset 0 of a frame file.
type Header struct {
	Width  int32
	Height int32
	FPS    float32
}

// FrameBits returns the number of bits in a single frame.
func (h Header) FrameBits() int64 {
	return int64(h.Width) * int64(h.Height)
}

// Validate checks that the header describes a non-degenerate frame geometry.
func (h Header) Validate() error {
	if h.Width <= 0 || h.Height <= 0 {
		return fmt.Errorf("%w: degenerate geometry %dx%d", shared.ErrFrameCount, h.Width, h.Height)
	}
	return nil
}

// ReadHeader reads the header at the start of src using the given byte order.
func ReadHeader(src io.ReaderAt, order binary.ByteOrder) (Header, error) {
	var b [shared.HeaderSize]byte
	n, err := src.ReadAt(b[:], 0)
	if n < len(b) {
		if err == nil || errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, fmt.Errorf("%w: read %d of %d header bytes: %w", shared.ErrMetadataParse, n, len(b), err)
	}

	return Header{
		Width:  int32(order.Uint32(b[0:4])),
		Height: int32(order.Uint32(b[4:8])),
		FPS:    math.Float32frombits(order.Uint32(b[8:12])),
	}, nil
}

// frameStride returns the distance in bits between the starts of two
// consecutive frames.
func frameStride(h Header, alignFrames bool) int64 {
	bits := h.FrameBits()
	if alignFrames {
		bits = (bits + 7) / 8 * 8
	}
	return bits
}

// frameCount derives the number of complete frames in a file of fileSize bytes.
func frameCount(h Header, fileSize int64, alignFrames bool) (int64, error) {
	if fileSize <= 0 {
		return 0, fmt.Errorf("%w: invalid file size %d", shared.ErrFrameCount, fileSize)
	}
	if fileSize < shared.HeaderSize {
		return 0, fmt.Errorf("%w: file size %d is smaller than the header", shared.ErrFrameCount, fileSize)
	}
	if err := h.Validate(); err != nil {
		return 0, err
	}

	dataBits := (fileSize - shared.HeaderSize) * 8
	return dataBits / frameStride(h, alignFrames), nil
}
