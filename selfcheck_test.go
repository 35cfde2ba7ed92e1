package crc32c

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfCheckSkippedOnSoftware(t *testing.T) {
	if ImplName() != "sw" {
		t.Skip("software engine not selected")
	}
	res := SelfCheck()
	assert.Equal(t, SelfCheckSkipped, res.Status)
	assert.NoError(t, res.Err())
	assert.Zero(t, res.Mismatches)
}

func TestSelfCheckPasses(t *testing.T) {
	if ImplName() != "hw" {
		t.Skip("hardware engine not selected")
	}
	res := SelfCheck()
	assert.Equal(t, SelfCheckOK, res.Status)
	assert.NoError(t, res.Err())
	assert.Zero(t, res.Mismatches)
	assert.Equal(t, "hw", ImplName())
}

func TestVerifyEnginesAgree(t *testing.T) {
	if !HardwareAvailable() {
		t.Skip("hardware engine not available on this CPU")
	}
	assert.Zero(t, verifyEngines(checksumHardware, checksumSoftware))
}

// A hardware engine that corrupts word-sized inputs must be caught by the
// probe matrix even though it agrees on short tails.
func TestVerifyEnginesDetectsMismatch(t *testing.T) {
	broken := func(p []byte) uint32 {
		if len(p) >= 8 {
			return ^checksumSoftware(p)
		}
		return checksumSoftware(p)
	}
	assert.Positive(t, verifyEngines(broken, checksumSoftware))
}

func TestSelfCheckStatusString(t *testing.T) {
	assert.Equal(t, "ok", SelfCheckOK.String())
	assert.Equal(t, "skipped", SelfCheckSkipped.String())
	assert.Equal(t, "failed", SelfCheckFailed.String())
}

// Runs last in this file: it downgrades the process to the software engine.
func TestSelfCheckDowngradesOnMismatch(t *testing.T) {
	if ImplName() != "hw" {
		t.Skip("hardware engine not selected")
	}
	broken := func(p []byte) uint32 {
		return ^checksumSoftware(p)
	}

	res := selfCheck(broken, checksumSoftware)
	require.Equal(t, SelfCheckFailed, res.Status)
	assert.Positive(t, res.Mismatches)
	assert.ErrorIs(t, res.Err(), ErrSelfCheck)

	// The downgrade is immediate and permanent.
	assert.Equal(t, "sw", ImplName())
	data := []byte(knownVector)
	assert.Equal(t, checksumSoftware(data), Checksum(data))
	assert.Equal(t, SelfCheckSkipped, SelfCheck().Status)
}
