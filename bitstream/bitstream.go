// Package bitstream provides bit-granularity access to byte-addressable data,
// following the MSB pattern, where most-significant bits are read/written first.
package bitstream

type Bit = bool

const (
	Zero Bit = false
	One  Bit = true
)

// Window returns the minimal byte-aligned window covering bitCount bits
// starting at startBit.
func Window(startBit, bitCount int64) (startByte, numBytes int64) {
	startByte = startBit / 8
	numBytes = (startBit+bitCount+7)/8 - startByte
	return startByte, numBytes
}

// Unpack decodes bitCount bits of window, starting bitOffset bits into its
// first byte, into dst. The window must cover the requested bits.
func Unpack(dst []bool, window []byte, bitOffset int64) {
	for i := range dst {
		pos := bitOffset + int64(i)
		dst[i] = (window[pos/8]>>(7-uint(pos%8)))&1 == 1
	}
}
