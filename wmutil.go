package wmutil

import (
	"github.com/lxn/win"
	"go.uber.org/zap"

	"github.com/rpdg/wmutil/screen"
	"github.com/rpdg/wmutil/winapi"
)

// Monitor is a snapshot of one attached display. See the screen package for
// the full type.
type Monitor = screen.Monitor

// BaseDPI is the Windows baseline DPI.
const BaseDPI = screen.BaseDPI

// DPIToScaleFactor converts an effective DPI value to a UI scale factor.
func DPIToScaleFactor(dpi uint32) float64 {
	return screen.DPIToScaleFactor(dpi)
}

// SetLogger routes reassignment logging to the given zap logger. Pass nil to
// silence it again. Not safe to call while a reassignment is in flight.
func SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	screen.DefaultReassigner().Log = log
}

// EnumerateMonitors returns a snapshot of every attached monitor.
func EnumerateMonitors() ([]Monitor, error) {
	return screen.DefaultQuery().Monitors()
}

// GetPrimaryMonitor returns the monitor at the virtual-desktop origin.
func GetPrimaryMonitor() (Monitor, error) {
	return screen.DefaultQuery().Primary()
}

// GetMonitorFromPoint returns the monitor containing the given
// virtual-desktop point, falling back to the primary monitor.
func GetMonitorFromPoint(x, y int32) (Monitor, error) {
	return screen.DefaultQuery().AtPoint(x, y)
}

// GetWindowMonitor returns the monitor nearest to the given window handle.
func GetWindowMonitor(hwnd uintptr) (Monitor, error) {
	return screen.DefaultQuery().ForWindow(win.HWND(hwnd))
}

// FindWindowMonitor resolves a window by its exact title and returns the
// monitor it lives on.
func FindWindowMonitor(title string) (Monitor, error) {
	hwnd, err := winapi.FindWindowByTitle(title)
	if err != nil {
		return Monitor{}, err
	}
	return GetWindowMonitor(uintptr(hwnd))
}

// SetPrimaryMonitor makes the monitor with the given device name the primary
// display. A false result with a nil error means the OS rejected the final
// commit; see screen.Reassigner.SetPrimary for the full contract.
func SetPrimaryMonitor(device string) (bool, error) {
	return screen.DefaultReassigner().SetPrimary(device)
}
