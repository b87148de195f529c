package screen

import (
	"github.com/rpdg/wmutil/winapi"
)

// DevModeStore is the ConfigStore backed by ChangeDisplaySettingsExW. Stage
// with StageNoReset so nothing takes effect until Commit, which activates
// every staged record at once.
type DevModeStore struct{}

func NewDevModeStore() *DevModeStore {
	return &DevModeStore{}
}

// devMode wraps the raw DEVMODEW record. Only the position field is exposed;
// the rest of the record travels through untouched.
type devMode struct {
	raw winapi.DevModeW
}

func (m *devMode) Position() Point {
	return Point{X: m.raw.Position.X, Y: m.raw.Position.Y}
}

func (m *devMode) SetPosition(p Point) {
	m.raw.Position.X = p.X
	m.raw.Position.Y = p.Y
	m.raw.Fields |= winapi.DM_POSITION
}

func (s *DevModeStore) ReadMode(device string) (DisplayMode, error) {
	raw, err := winapi.CurrentDevMode(device)
	if err != nil {
		return nil, err
	}
	return &devMode{raw: raw}, nil
}

func (s *DevModeStore) Stage(device string, mode DisplayMode, flags StageFlags) Status {
	dm, ok := mode.(*devMode)
	if !ok {
		// Foreign DisplayMode implementations carry no DEVMODEW to hand to
		// the OS.
		return StatusBadParam
	}
	return Status(winapi.StageDevMode(device, &dm.raw, uint32(flags)))
}

func (s *DevModeStore) Commit() Status {
	return Status(winapi.CommitDisplayChanges())
}
