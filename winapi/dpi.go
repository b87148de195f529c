package winapi

import (
	"unsafe"

	"github.com/lxn/win"
)

// BaseDPI is the Windows baseline DPI; scale factor = effective DPI / BaseDPI.
const BaseDPI = 96

// MDT_EFFECTIVE_DPI asks for the DPI programs should scale to.
const MDT_EFFECTIVE_DPI = 0

// DPIQuery wraps shcore!GetDpiForMonitor, which only exists on Windows 8.1
// and later. The probe runs once in NewDPIQuery; there is no hidden lazy
// lookup behind the call path. Construct it at startup and inject it into
// whatever needs per-monitor DPI.
type DPIQuery struct {
	supported bool
}

func NewDPIQuery() *DPIQuery {
	return &DPIQuery{supported: ProcGetDpiForMonitor.Find() == nil}
}

// Supported reports whether the OS exposes per-monitor DPI at all.
func (q *DPIQuery) Supported() bool {
	return q.supported
}

// MonitorDPI returns the effective DPI for a monitor. ok is false when the OS
// cannot report it; callers fall back to BaseDPI.
func (q *DPIQuery) MonitorDPI(h win.HMONITOR) (dpi uint32, ok bool) {
	if !q.supported {
		return 0, false
	}

	var dx, dy uint32
	ret, _, _ := ProcGetDpiForMonitor.Call(
		uintptr(h),
		MDT_EFFECTIVE_DPI,
		uintptr(unsafe.Pointer(&dx)),
		uintptr(unsafe.Pointer(&dy)),
	)
	if ret != 0 { // S_OK only
		return 0, false
	}
	// X and Y are documented to be identical; keep X.
	return dx, true
}
