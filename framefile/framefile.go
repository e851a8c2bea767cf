// Package framefile provides random access to bit-packed frame files: a fixed
// 12-byte header (width int32, height int32, fps float32) followed by frames of
// width*height bits each, packed MSB-first with no per-frame delimiter.
package framefile

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/zap"

	"github.com/bitframe/bitframe/config"
	"github.com/bitframe/bitframe/shared"
)

// Store is an open frame file. The header and the frame count are read once by
// Open and never change. Frames are decoded with positioned reads, so a Store is
// safe for concurrent use.
type Store struct {
	path   string
	cfg    config.Config
	logger *zap.Logger

	mtx  sync.RWMutex
	file *os.File

	header Header
	size   int64
	frames int64
	stride int64
}

// Open opens the frame file at path, parses its header and derives its frame
// count. The returned Store must be closed by the caller.
func Open(path string, opts ...OptionFunc) (*Store, error) {
	options := &option{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	if err := options.validate(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%v): %w", shared.ErrOpen, path, err)
	}

	s := &Store{
		path:   path,
		cfg:    options.cfg,
		logger: options.logger,
		file:   file,
	}
	if err := s.load(); err != nil {
		file.Close()
		return nil, err
	}

	s.logger.Info("opened frame file",
		zap.String("path", path),
		zap.Int32("width", s.header.Width),
		zap.Int32("height", s.header.Height),
		zap.Float32("fps", s.header.FPS),
		zap.Int64("frames", s.frames),
		zap.String("size", bytefmt.ByteSize(uint64(s.size))),
	)
	return s, nil
}

func (s *Store) load() error {
	header, err := ReadHeader(s.file, s.cfg.Order())
	if err != nil {
		return fmt.Errorf("%w (%v)", err, s.path)
	}

	info, err := s.file.Stat()
	if err != nil {
		return fmt.Errorf("%w: failed to stat file (%v): %w", shared.ErrFrameCount, s.path, err)
	}

	frames, err := frameCount(header, info.Size(), s.cfg.AlignFrames)
	if err != nil {
		return fmt.Errorf("%w (%v)", err, s.path)
	}

	s.header = header
	s.size = info.Size()
	s.frames = frames
	s.stride = frameStride(header, s.cfg.AlignFrames)
	return nil
}

// IsOpen reports whether the underlying file is open.
func (s *Store) IsOpen() bool {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.file != nil
}

// Close releases the underlying file. It is safe to call Close more than once.
func (s *Store) Close() error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	if err != nil {
		return fmt.Errorf("failed to close frame file (%v): %w", s.path, err)
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Header() Header {
	return s.header
}

// NumFrames returns the number of complete frames in the file, capped at
// math.MaxInt, the highest index LoadFrame can address.
func (s *Store) NumFrames() int {
	if s.frames > math.MaxInt {
		return math.MaxInt
	}
	return int(s.frames)
}

// Duration returns the playback duration of all frames at the header's fps,
// or 0 if the fps is not positive. Durations beyond the range of
// time.Duration are capped at math.MaxInt64.
func (s *Store) Duration() time.Duration {
	if !(s.header.FPS > 0) {
		return 0
	}
	d := float64(s.frames) / float64(s.header.FPS) * float64(time.Second)
	if d >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(d)
}

func (s *Store) String() string {
	return fmt.Sprintf("%v: %dx%d @ %v fps, %d frames, %v",
		s.path, s.header.Width, s.header.Height, s.header.FPS, s.frames, bytefmt.ByteSize(uint64(s.size)))
}
