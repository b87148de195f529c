package wmutil

import (
	"github.com/rpdg/wmutil/screen"
)

var (
	// ErrMonitorNotFound implies the requested device name matches no attached
	// monitor. No configuration is written when this is returned.
	ErrMonitorNotFound = screen.ErrMonitorNotFound

	// ErrModeReadFailed implies a monitor's current display mode could not be
	// retrieved during a reassignment.
	ErrModeReadFailed = screen.ErrModeReadFailed

	// ErrConfigWriteFailed implies the OS rejected a staged position update.
	// Stagings issued earlier in the same reassignment are not rolled back.
	ErrConfigWriteFailed = screen.ErrConfigWriteFailed
)
