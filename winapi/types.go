package winapi

import (
	"github.com/lxn/win"
)

// CCHDEVICENAME is the fixed length of a GDI device name buffer.
const CCHDEVICENAME = 32

// MonitorInfoExW mirrors MONITORINFOEXW. lxn/win only declares the plain
// MONITORINFO, which lacks szDevice; the device string is our join key
// between monitor enumeration and display-mode configuration.
type MonitorInfoExW struct {
	CbSize    uint32
	RcMonitor win.RECT
	RcWork    win.RECT
	DwFlags   uint32
	SzDevice  [CCHDEVICENAME]uint16
}

// PointL mirrors POINTL (dmPosition).
type PointL struct {
	X int32
	Y int32
}

// DevModeW mirrors DEVMODEW with the display union flattened: dmPosition,
// dmDisplayOrientation and dmDisplayFixedOutput instead of the printer
// fields. lxn/win's DEVMODE carries the printer variant and cannot address
// a monitor's virtual-desktop position.
type DevModeW struct {
	DeviceName         [CCHDEVICENAME]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	Position           PointL
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

const (
	// ENUM_CURRENT_SETTINGS asks EnumDisplaySettingsExW for the mode that is
	// active right now, not a mode table index.
	ENUM_CURRENT_SETTINGS = 0xFFFFFFFF

	DM_POSITION = 0x00000020

	CDS_UPDATEREGISTRY = 0x00000001
	CDS_SET_PRIMARY    = 0x00000010
	CDS_NORESET        = 0x10000000

	DISP_CHANGE_SUCCESSFUL  = 0
	DISP_CHANGE_RESTART     = 1
	DISP_CHANGE_FAILED      = -1
	DISP_CHANGE_BADMODE     = -2
	DISP_CHANGE_NOTUPDATED  = -3
	DISP_CHANGE_BADFLAGS    = -4
	DISP_CHANGE_BADPARAM    = -5
	DISP_CHANGE_BADDUALVIEW = -6
)
