package winapi

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// EnumHMonitors returns the handle of every monitor attached to the virtual
// desktop, in enumeration order. Handles are opaque and valid only for the
// current session.
func EnumHMonitors() ([]win.HMONITOR, error) {
	var handles []win.HMONITOR

	cb := syscall.NewCallback(func(hMonitor uintptr, hdcMonitor uintptr, lprcMonitor uintptr, dwData uintptr) uintptr {
		handles = append(handles, win.HMONITOR(hMonitor))
		return 1 // continue enumeration
	})

	ret, _, _ := ProcEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed")
	}
	return handles, nil
}

// MonitorInfoEx fetches MONITORINFOEXW for a monitor handle.
func MonitorInfoEx(h win.HMONITOR) (MonitorInfoExW, error) {
	var mi MonitorInfoExW
	mi.CbSize = uint32(unsafe.Sizeof(mi))

	ret, _, _ := ProcGetMonitorInfoW.Call(uintptr(h), uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return mi, fmt.Errorf("GetMonitorInfoW failed for monitor %#x", uintptr(h))
	}
	return mi, nil
}

// DeviceName decodes the NUL-terminated szDevice field, e.g. `\\.\DISPLAY1`.
func DeviceName(mi *MonitorInfoExW) string {
	return windows.UTF16ToString(mi.SzDevice[:])
}

// MonitorFromPoint resolves the monitor containing the given virtual-desktop
// point. lxn/win does not export this entry point.
func MonitorFromPoint(x, y int32, flags uint32) win.HMONITOR {
	// POINT is 8 bytes, so win64 passes it by value in a single register.
	pt := uintptr(uint32(x)) | uintptr(uint32(y))<<32
	ret, _, _ := ProcMonitorFromPoint.Call(pt, uintptr(flags))
	return win.HMONITOR(ret)
}

// FindWindowByTitle resolves a top-level window handle by its exact title.
func FindWindowByTitle(title string) (win.HWND, error) {
	ret, _, _ := ProcFindWindowW.Call(
		0,
		uintptr(unsafe.Pointer(utf16Ptr(title))),
	)
	if ret == 0 {
		return 0, fmt.Errorf("window not found with title: %s", title)
	}
	return win.HWND(ret), nil
}
