package screen

import (
	"fmt"

	"github.com/lxn/win"

	"github.com/rpdg/wmutil/winapi"
)

// DisplayQuery reads monitor state from user32/shcore. The per-monitor DPI
// capability is probed once and injected, so the Windows 8.1+ code path is
// explicit rather than hidden behind a cached function lookup.
type DisplayQuery struct {
	dpi *winapi.DPIQuery
}

func NewDisplayQuery(dpi *winapi.DPIQuery) *DisplayQuery {
	if dpi == nil {
		dpi = winapi.NewDPIQuery()
	}
	return &DisplayQuery{dpi: dpi}
}

// Monitors returns a snapshot of every attached monitor, in enumeration
// order. A monitor that cannot report its info is skipped; enumeration of the
// rest continues.
func (q *DisplayQuery) Monitors() ([]Monitor, error) {
	handles, err := winapi.EnumHMonitors()
	if err != nil {
		return nil, err
	}

	monitors := make([]Monitor, 0, len(handles))
	for _, h := range handles {
		if m, ok := q.snapshot(h); ok {
			monitors = append(monitors, m)
		}
	}
	return monitors, nil
}

// Primary returns the monitor at the virtual-desktop origin.
func (q *DisplayQuery) Primary() (Monitor, error) {
	return q.AtPoint(0, 0)
}

// AtPoint returns the monitor containing the given virtual-desktop point,
// falling back to the primary monitor for points outside every rectangle.
func (q *DisplayQuery) AtPoint(x, y int32) (Monitor, error) {
	h := winapi.MonitorFromPoint(x, y, win.MONITOR_DEFAULTTOPRIMARY)
	m, ok := q.snapshot(h)
	if !ok {
		return Monitor{}, fmt.Errorf("no monitor info at point (%d, %d)", x, y)
	}
	return m, nil
}

// ForWindow returns the monitor nearest to the given window.
func (q *DisplayQuery) ForWindow(hwnd win.HWND) (Monitor, error) {
	h := win.MonitorFromWindow(hwnd, win.MONITOR_DEFAULTTONEAREST)
	m, ok := q.snapshot(h)
	if !ok {
		return Monitor{}, fmt.Errorf("no monitor info for window %#x", uintptr(hwnd))
	}
	return m, nil
}

// snapshot builds one Monitor value. DPI and refresh-rate lookups fail soft:
// a missing value never fails the snapshot.
func (q *DisplayQuery) snapshot(h win.HMONITOR) (Monitor, bool) {
	mi, err := winapi.MonitorInfoEx(h)
	if err != nil {
		return Monitor{}, false
	}

	m := Monitor{
		Handle:      uintptr(h),
		DeviceName:  winapi.DeviceName(&mi),
		Bounds:      rectFromWin(mi.RcMonitor),
		WorkArea:    rectFromWin(mi.RcWork),
		Primary:     mi.DwFlags&win.MONITORINFOF_PRIMARY != 0,
		ScaleFactor: 1.0,
	}

	if dpi, ok := q.dpi.MonitorDPI(h); ok {
		m.ScaleFactor = DPIToScaleFactor(dpi)
	}
	if mode, err := winapi.CurrentDevMode(m.DeviceName); err == nil {
		m.RefreshRateMHz = mode.DisplayFrequency * 1000
	}
	return m, true
}

func rectFromWin(r win.RECT) Rect {
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
