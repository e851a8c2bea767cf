package framefile

import (
	"fmt"
	"math"

	"github.com/bitframe/bitframe/shared"
)

type MetadataKind int

const (
	Width MetadataKind = iota
	Height
	Frames
	Fps
)

var metadataKinds = []string{
	"Width",
	"Height",
	"Frames",
	"Fps",
}

func (k MetadataKind) String() string {
	if k < 0 || int(k) >= len(metadataKinds) {
		return fmt.Sprintf("MetadataKind(%d)", int(k))
	}
	return metadataKinds[k]
}

// Metadata returns the value of the given metadata field. Every field is
// exactly representable as a float64.
func (s *Store) Metadata(kind MetadataKind) (float64, error) {
	switch kind {
	case Width:
		return float64(s.header.Width), nil
	case Height:
		return float64(s.header.Height), nil
	case Frames:
		return float64(s.frames), nil
	case Fps:
		return float64(s.header.FPS), nil
	default:
		return 0, fmt.Errorf("%w: %v", shared.ErrInvalidMetadataKind, kind)
	}
}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MetadataAs returns the metadata field converted to T. The conversion must be
// exact: a fractional fps requested as an integer, or a value that overflows T,
// fails with shared.ErrInexactConversion.
func MetadataAs[T Number](s *Store, kind MetadataKind) (T, error) {
	v, err := s.Metadata(kind)
	if err != nil {
		return 0, err
	}
	return convertExact[T](v, kind)
}

func convertExact[T Number](v float64, kind MetadataKind) (T, error) {
	t := T(v)
	back := float64(t)
	if back == v || (math.IsNaN(v) && math.IsNaN(back)) {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %v = %v as %T", shared.ErrInexactConversion, kind, v, t)
}
