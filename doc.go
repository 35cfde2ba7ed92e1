// Package crc32c computes CRC-32C (Castagnoli) checksums with verified
// hardware acceleration.
//
// # CRC-32C
//
// CRC-32C uses the Castagnoli polynomial (0x82F63B78 in reversed bit order),
// the checksum standardized for iSCSI and used by Btrfs, RocksDB and LevelDB.
// It detects all single-bit, double-bit and odd-bit errors, plus burst errors
// up to 32 bits.
//
// # Dispatch
//
// The package carries two engines with identical contracts:
//
//   - a hardware engine using the SSE4.2 CRC32 instruction on x86-64
//   - a bit-serial software reference engine, always available
//
// The first checksum call selects an engine exactly once per process, based
// on CPU capability and the CRC32C_FORCE environment variable ("sw" forces
// the software engine; "hw" requests hardware and silently degrades to
// software when the CPU lacks SSE4.2). Subsequent calls read the cached
// decision with a single atomic load. Build with -tags noasm to compile the
// software engine only.
//
// # Self-Check
//
// SelfCheck cross-validates the hardware engine against the software
// reference over a known test vector and an offset/length matrix covering
// word alignment and tail handling. On any disagreement the process is
// permanently downgraded to the software engine:
//
//	if res := crc32c.SelfCheck(); res.Status == crc32c.SelfCheckFailed {
//	    logger.LogSelfCheck(res) // continues correctly on the software engine
//	}
//
// # Usage
//
//	sum := crc32c.Checksum(data)
//
// ForceSoftware pins the process to the software engine; the transition is a
// one-way ratchet and is never reversed.
package crc32c
