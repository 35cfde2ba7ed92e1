package crc32c

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cross-validate the hardware engine against the reference across every
// offset/length combination that stresses word alignment and tail handling.
func TestHardwareMatchesSoftware(t *testing.T) {
	if !HardwareAvailable() {
		t.Skip("hardware engine not available on this CPU")
	}

	pattern := make([]byte, 1024)
	for i := range pattern {
		pattern[i] = byte(i*3 + 1)
	}

	offsets := []int{0, 1, 2, 3, 4, 7, 8, 15, 31, 63}
	lengths := []int{0, 1, 2, 3, 4, 7, 8, 15, 16, 31, 32, 63, 64, 255, 256, 511}
	for _, off := range offsets {
		for _, n := range lengths {
			if off+n > len(pattern) {
				continue
			}
			sub := pattern[off : off+n]
			assert.Equal(t, checksumSoftware(sub), checksumHardware(sub),
				"offset %d length %d", off, n)
		}
	}
}

func TestHardwareMatchesSoftwareRandom(t *testing.T) {
	if !HardwareAvailable() {
		t.Skip("hardware engine not available on this CPU")
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := rng.Intn(1<<20) + 1
		buf := make([]byte, n)
		rng.Read(buf)
		require.Equal(t, checksumSoftware(buf), checksumHardware(buf), "length %d", n)
	}
}

func TestHardwareKnownVector(t *testing.T) {
	if !HardwareAvailable() {
		t.Skip("hardware engine not available on this CPU")
	}
	assert.Equal(t, uint32(knownVectorSum), checksumHardware([]byte(knownVector)))
}

func BenchmarkHardware(b *testing.B) {
	if !HardwareAvailable() {
		b.Skip("hardware engine not available on this CPU")
	}
	const size = 1 << 20
	buf := randomBytes(size, 4)

	b.SetBytes(size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = checksumHardware(buf)
	}
}
