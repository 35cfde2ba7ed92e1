package crc32c

import "errors"

var (
	// ErrSelfCheck is reported when the hardware engine disagreed with the
	// software reference. The process keeps running correctly on the
	// software engine; the error exists so callers can log or alert.
	ErrSelfCheck = errors.New("crc32c: hardware engine failed self-check, forced software")
)
