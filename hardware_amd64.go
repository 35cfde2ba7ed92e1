//go:build amd64 && !noasm

package crc32c

// castagnoliSSE42 is implemented in crc32c_amd64.s. It folds the running CRC
// register over p with the SSE4.2 CRC32 instruction: 8-byte words for the
// bulk, then a 4/2/1-byte tail, so any length and alignment is consumed
// without reading past len(p). Must only run when hwCapable() is true;
// dispatch guarantees that.
//
//go:noescape
func castagnoliSSE42(crc uint32, p []byte) uint32

// checksumHardware matches checksumSoftware bit for bit: same all-ones
// initial register, same final complement.
func checksumHardware(data []byte) uint32 {
	return ^castagnoliSSE42(^uint32(0), data)
}
