package winapi

import (
	"testing"
	"unsafe"
)

// The structs below are handed to user32 by pointer, so their layout must
// match the C declarations byte for byte.

func TestDevModeWLayout(t *testing.T) {
	var m DevModeW

	if got := unsafe.Sizeof(m); got != 220 {
		t.Fatalf("sizeof(DevModeW) = %d, want 220", got)
	}
	if got := unsafe.Offsetof(m.Fields); got != 72 {
		t.Errorf("offsetof(Fields) = %d, want 72", got)
	}
	if got := unsafe.Offsetof(m.Position); got != 76 {
		t.Errorf("offsetof(Position) = %d, want 76", got)
	}
	if got := unsafe.Offsetof(m.BitsPerPel); got != 168 {
		t.Errorf("offsetof(BitsPerPel) = %d, want 168", got)
	}
	if got := unsafe.Offsetof(m.DisplayFrequency); got != 184 {
		t.Errorf("offsetof(DisplayFrequency) = %d, want 184", got)
	}
}

func TestMonitorInfoExWLayout(t *testing.T) {
	var mi MonitorInfoExW

	if got := unsafe.Sizeof(mi); got != 104 {
		t.Fatalf("sizeof(MonitorInfoExW) = %d, want 104", got)
	}
	if got := unsafe.Offsetof(mi.DwFlags); got != 36 {
		t.Errorf("offsetof(DwFlags) = %d, want 36", got)
	}
	if got := unsafe.Offsetof(mi.SzDevice); got != 40 {
		t.Errorf("offsetof(SzDevice) = %d, want 40", got)
	}
}
