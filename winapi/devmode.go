package winapi

import (
	"fmt"
	"unsafe"
)

// CurrentDevMode reads the active display mode for a device name. The
// returned record is a value snapshot; callers mutate it and hand it back to
// StageDevMode.
func CurrentDevMode(device string) (DevModeW, error) {
	var mode DevModeW
	mode.Size = uint16(unsafe.Sizeof(mode))

	ret, _, _ := ProcEnumDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(utf16Ptr(device))),
		ENUM_CURRENT_SETTINGS,
		uintptr(unsafe.Pointer(&mode)),
		0,
	)
	if ret == 0 {
		return mode, fmt.Errorf("EnumDisplaySettingsExW failed for %s", device)
	}
	return mode, nil
}

// StageDevMode submits a modified mode for one device without activating it.
// Pass CDS_NORESET so the change only lands in the registry until
// CommitDisplayChanges runs. Returns a DISP_CHANGE_* code.
func StageDevMode(device string, mode *DevModeW, flags uint32) int32 {
	ret, _, _ := ProcChangeDisplaySettingsExW.Call(
		uintptr(unsafe.Pointer(utf16Ptr(device))),
		uintptr(unsafe.Pointer(mode)),
		0,
		uintptr(flags),
		0,
	)
	return int32(ret)
}

// CommitDisplayChanges activates every staged change in one call: a NULL
// device and NULL mode tell the OS to apply what the registry holds.
// Returns a DISP_CHANGE_* code.
func CommitDisplayChanges() int32 {
	ret, _, _ := ProcChangeDisplaySettingsExW.Call(0, 0, 0, 0, 0)
	return int32(ret)
}
