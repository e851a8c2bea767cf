package shared

import (
	"errors"
	"fmt"
)

var (
	ErrOpen                = errors.New("failed to open frame file")
	ErrMetadataParse       = errors.New("failed to parse frame file header")
	ErrFrameCount          = errors.New("failed to derive frame count")
	ErrRangeRead           = errors.New("failed to read bit range")
	ErrInvalidMetadataKind = errors.New("invalid metadata kind")
	ErrInexactConversion   = errors.New("metadata value not exactly representable")

	ErrNotOpen          = errors.New("frame file is not open")
	ErrFrameOutOfRange  = errors.New("frame index out of range")
	ErrGeometryMismatch = errors.New("frame geometry mismatch")
	ErrBufferTooSmall   = errors.New("frame buffer too small")
)

type GeometryMismatchError struct {
	Param    string
	Expected int64
	Found    int64
	Path     string
}

func (err GeometryMismatchError) Error() string {
	return fmt.Sprintf("`%v` geometry mismatch; expected: %v, found: %v, file: %v",
		err.Param, err.Expected, err.Found, err.Path)
}

func (err GeometryMismatchError) Unwrap() error {
	return ErrGeometryMismatch
}
