package crc32c

// Polynomial is the CRC-32C (Castagnoli) polynomial in reversed bit order.
const Polynomial uint32 = 0x82f63b78

// checksumSoftware is the bit-serial reference engine: all-ones initial
// register, 8 shift/XOR steps per byte, final complement. It is the ground
// truth the hardware engine is verified against, so it stays deliberately
// table-free and unoptimized.
func checksumSoftware(data []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range data {
		crc ^= uint32(b)
		for k := 0; k < 8; k++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}
