package framefile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bitframe/bitframe/bitstream"
	"github.com/bitframe/bitframe/shared"
)

// LoadFrame decodes frame index into buf, which must hold at least width*height
// values. width and height must match the header (or, with StrictGeometry
// disabled, their product must match the header's frame size).
func (s *Store) LoadFrame(buf []bool, width, height, index int) error {
	if err := s.checkGeometry(width, height); err != nil {
		return err
	}
	if err := s.checkIndex(index); err != nil {
		return err
	}

	frameBits := s.header.FrameBits()
	if int64(len(buf)) < frameBits {
		return fmt.Errorf("%w: expected: >= %d, given: %d", shared.ErrBufferTooSmall, frameBits, len(buf))
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()
	if s.file == nil {
		return fmt.Errorf("%w: %w (%v)", shared.ErrRangeRead, shared.ErrNotOpen, s.path)
	}

	start := shared.HeaderBits + int64(index)*s.stride
	if err := bitstream.ReadRangeInto(s.file, buf[:frameBits], start); err != nil {
		return fmt.Errorf("failed to load frame %d (%v): %w", index, s.path, err)
	}

	s.logger.Debug("loaded frame", zap.Int("index", index), zap.Int64("start_bit", start))
	return nil
}

// Frame decodes frame index into a newly allocated buffer.
func (s *Store) Frame(index int) ([]bool, error) {
	// The header geometry is only bounded by the file size through the frame count.
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	buf := make([]bool, s.header.FrameBits())
	if err := s.LoadFrame(buf, int(s.header.Width), int(s.header.Height), index); err != nil {
		return nil, err
	}
	return buf, nil
}

// LoadFrames decodes the given frames concurrently, using at most cfg.Workers
// goroutines. The result is ordered like indices. The first failure cancels
// the remaining decodes.
func (s *Store) LoadFrames(ctx context.Context, indices []int) ([][]bool, error) {
	frames := make([][]bool, len(indices))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(int(s.cfg.Workers))
	for i, index := range indices {
		i, index := i, index
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				return egCtx.Err()
			default:
			}

			frame, err := s.Frame(index)
			if err != nil {
				s.logger.Error("failed to load frame", zap.Int("index", index), zap.Error(err))
				return err
			}
			frames[i] = frame
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return frames, nil
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || int64(index) >= s.frames {
		return fmt.Errorf("%w: index %d, frames: %d, file: %v", shared.ErrFrameOutOfRange, index, s.frames, s.path)
	}
	return nil
}

func (s *Store) checkGeometry(width, height int) error {
	if s.cfg.StrictGeometry {
		if width != int(s.header.Width) {
			return shared.GeometryMismatchError{
				Param:    "Width",
				Expected: int64(s.header.Width),
				Found:    int64(width),
				Path:     s.path,
			}
		}
		if height != int(s.header.Height) {
			return shared.GeometryMismatchError{
				Param:    "Height",
				Expected: int64(s.header.Height),
				Found:    int64(height),
				Path:     s.path,
			}
		}
		return nil
	}

	if width <= 0 || height <= 0 || int64(width)*int64(height) != s.header.FrameBits() {
		return shared.GeometryMismatchError{
			Param:    "FrameSize",
			Expected: s.header.FrameBits(),
			Found:    int64(width) * int64(height),
			Path:     s.path,
		}
	}
	return nil
}
