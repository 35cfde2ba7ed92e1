package crc32c

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// ForceEnvVar is the environment variable consulted once, during the first
// dispatch, to override engine selection. "sw" forces the software engine;
// "hw" requests the hardware engine and silently degrades to software when
// the CPU lacks support. Any other value defers to capability detection.
const ForceEnvVar = "CRC32C_FORCE"

// Impl identifies a checksum engine.
type Impl uint32

const (
	// ImplUndecided means no engine has been selected yet. It is never
	// observed after the first dispatch.
	ImplUndecided Impl = iota
	// ImplHardware is the CPU-instruction engine.
	ImplHardware
	// ImplSoftware is the bit-serial reference engine.
	ImplSoftware
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case ImplHardware:
		return "hw"
	case ImplSoftware:
		return "sw"
	case ImplUndecided:
		return "undecided"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hw":
		return ImplHardware, true
	case "sw":
		return ImplSoftware, true
	default:
		return ImplUndecided, false
	}
}

// Process-wide dispatch state. The selector leaves ImplUndecided exactly
// once, inside initOnce; after that the only permitted write is the
// ImplHardware -> ImplSoftware downgrade in ForceSoftware.
var (
	initOnce sync.Once
	selector atomic.Uint32 // holds an Impl
	forceSW  atomic.Bool
)

// initSelector decides the engine. Runs exactly once per process, under
// initOnce; concurrent first callers block until it completes.
func initSelector() {
	if !forceSW.Load() {
		if impl, ok := ParseImpl(os.Getenv(ForceEnvVar)); ok {
			switch impl {
			case ImplSoftware:
				forceSW.Store(true)
			case ImplHardware:
				// An explicit hardware request cannot be granted on an
				// incapable CPU; it degrades rather than fails.
				if !hwCapable() {
					forceSW.Store(true)
				}
			}
		}
	}

	if !forceSW.Load() && hwCapable() {
		selector.Store(uint32(ImplHardware))
		return
	}
	selector.Store(uint32(ImplSoftware))
}

// selected returns the cached engine choice, dispatching on first use.
func selected() Impl {
	initOnce.Do(initSelector)
	return Impl(selector.Load())
}

// Checksum returns the CRC-32C of data using the selected engine. The first
// call per process selects the engine; every later call is a single atomic
// load plus the engine itself. Checksum never writes to data.
func Checksum(data []byte) uint32 {
	if selected() == ImplHardware {
		return checksumHardware(data)
	}
	return checksumSoftware(data)
}

// ImplName returns the label of the selected engine, "hw" or "sw",
// dispatching on first use.
func ImplName() string {
	return selected().String()
}

// HardwareAvailable reports whether the CPU supports the hardware engine.
// It is a pure capability probe and does not touch dispatch state.
func HardwareAvailable() bool {
	return hwCapable()
}

// ForceSoftware permanently pins the process to the software engine.
// Idempotent, and a one-way transition: nothing selects the hardware engine
// again afterwards. The selector write does not re-run initialization; the
// force flag keeps an in-flight first dispatch from racing it back to
// hardware.
func ForceSoftware() {
	forceSW.Store(true)
	initOnce.Do(initSelector)
	selector.Store(uint32(ImplSoftware))
}
