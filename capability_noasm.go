//go:build !amd64 || noasm

package crc32c

// hwCapable is unconditionally false where no hardware engine is compiled:
// non-amd64 targets and noasm builds.
func hwCapable() bool {
	return false
}
