package screen

import "github.com/rpdg/wmutil/winapi"

// BaseDPI is the Windows baseline DPI.
const BaseDPI = winapi.BaseDPI

// DPIToScaleFactor converts an effective DPI value to a UI scale factor,
// e.g. 144 DPI is 1.5.
func DPIToScaleFactor(dpi uint32) float64 {
	return float64(dpi) / float64(BaseDPI)
}

// Point is a point in the virtual-desktop coordinate system. Coordinates can
// be negative (e.g. a monitor left of the primary).
type Point struct {
	X int32
	Y int32
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Size is a monitor extent in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Rect is a rectangle in the virtual-desktop coordinate system.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.Left, Y: r.Top}
}

func (r Rect) Size() Size {
	return Size{
		Width:  uint32(r.Right - r.Left),
		Height: uint32(r.Bottom - r.Top),
	}
}

// Monitor is a snapshot of one attached display. Snapshots carry no live OS
// resource; Handle is an opaque session-scoped identifier and DeviceName is
// the durable key used when reconfiguring the display.
type Monitor struct {
	Handle     uintptr
	DeviceName string
	Bounds     Rect
	WorkArea   Rect // excludes taskbar
	Primary    bool

	// ScaleFactor is effective DPI / 96; 1.0 when the OS cannot report DPI.
	ScaleFactor float64

	// RefreshRateMHz is the refresh rate in millihertz, 0 when unknown.
	RefreshRateMHz uint32
}

// Position returns the top-left corner of the monitor rectangle. The primary
// monitor sits at (0, 0) by OS convention.
func (m Monitor) Position() Point {
	return m.Bounds.Origin()
}

func (m Monitor) Size() Size {
	return m.Bounds.Size()
}

// RefreshRateMillihertz reports the refresh rate; ok is false when the driver
// could not report one.
func (m Monitor) RefreshRateMillihertz() (rate uint32, ok bool) {
	if m.RefreshRateMHz == 0 {
		return 0, false
	}
	return m.RefreshRateMHz, true
}
