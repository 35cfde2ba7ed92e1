//go:build amd64 && !noasm

package crc32c

import "golang.org/x/sys/cpu"

// hwCapable reports SSE4.2 support, the extension carrying the CRC32
// instruction. Stateless and cheap: x/sys/cpu probes CPUID once at package
// init and this is a plain field read afterwards.
func hwCapable() bool {
	return cpu.X86.HasSSE42
}
