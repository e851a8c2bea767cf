package shared

const (
	// HeaderSize is the size, in bytes, of the fixed header at the start of a frame file:
	// width (int32), height (int32) and fps (float32).
	HeaderSize = 12

	// HeaderBits is the bit offset of the first frame.
	HeaderBits = HeaderSize * 8
)
