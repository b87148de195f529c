// Package wmutil provides Windows display-monitor utilities: enumeration,
// geometry, per-monitor scale factor and refresh rate, and primary-monitor
// reassignment.
//
// Key Features:
// - Monitor snapshots (position, size, work area, DPI scale, refresh rate)
// - Lookup by point or by window
// - Primary reassignment via the staged ChangeDisplaySettingsEx protocol
// - Per-monitor screen capture
//
// Example:
//
//	monitors, err := wmutil.EnumerateMonitors()
//	if err != nil {
//	    panic(err)
//	}
//
//	for _, m := range monitors {
//	    fmt.Println(m.DeviceName, m.Position(), m.ScaleFactor)
//	}
//
//	ok, err := wmutil.SetPrimaryMonitor(`\\.\DISPLAY2`)
package wmutil
