package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	ProcEnumDisplayMonitors      = user32.NewProc("EnumDisplayMonitors")
	ProcGetMonitorInfoW          = user32.NewProc("GetMonitorInfoW")
	ProcMonitorFromPoint         = user32.NewProc("MonitorFromPoint")
	ProcEnumDisplaySettingsExW   = user32.NewProc("EnumDisplaySettingsExW")
	ProcChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
	ProcFindWindowW              = user32.NewProc("FindWindowW")

	ProcGetDpiForMonitor = shcore.NewProc("GetDpiForMonitor") // Win8.1+
)

func utf16Ptr(s string) *uint16 {
	ptr, _ := windows.UTF16PtrFromString(s)
	return ptr
}
