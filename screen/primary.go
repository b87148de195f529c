package screen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrMonitorNotFound implies the requested device name matches no
	// enumerated monitor. Returned before any configuration write.
	ErrMonitorNotFound = errors.New("monitor not found")

	// ErrModeReadFailed implies a monitor's current display mode could not be
	// retrieved.
	ErrModeReadFailed = errors.New("failed to read display mode")

	// ErrConfigWriteFailed implies staging a monitor's new position was
	// rejected by the OS.
	ErrConfigWriteFailed = errors.New("failed to stage display configuration")
)

// StageFlags select how a staged mode change is recorded. Values mirror the
// CDS_* flags of ChangeDisplaySettingsExW.
type StageFlags uint32

const (
	StageUpdateRegistry StageFlags = 0x00000001 // CDS_UPDATEREGISTRY
	StageSetPrimary     StageFlags = 0x00000010 // CDS_SET_PRIMARY
	StageNoReset        StageFlags = 0x10000000 // CDS_NORESET
)

// Status is a display-configuration result code, mirroring DISP_CHANGE_*.
type Status int32

const (
	StatusSuccessful Status = 0
	StatusRestart    Status = 1
	StatusFailed     Status = -1
	StatusBadMode    Status = -2
	StatusNotUpdated Status = -3
	StatusBadFlags   Status = -4
	StatusBadParam   Status = -5
)

// Query lists the currently attached monitors.
type Query interface {
	Monitors() ([]Monitor, error)
}

// DisplayMode is an opaque per-monitor configuration record with a mutable
// virtual-desktop position. Read it, move it, hand it back to the store.
type DisplayMode interface {
	Position() Point
	SetPosition(Point)
}

// ConfigStore stages display-mode changes per device and activates all of
// them with one Commit.
type ConfigStore interface {
	ReadMode(device string) (DisplayMode, error)
	Stage(device string, mode DisplayMode, flags StageFlags) Status
	Commit() Status
}

// Reassigner makes a chosen monitor the primary display by translating every
// monitor so the target lands on the virtual-desktop origin.
type Reassigner struct {
	Query Query
	Store ConfigStore
	Log   *zap.Logger
}

func NewReassigner(q Query, s ConfigStore, log *zap.Logger) *Reassigner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reassigner{Query: q, Store: s, Log: log}
}

// SetPrimary shifts the whole virtual desktop so the monitor named device
// sits at (0, 0) and is marked primary.
//
// The bool result distinguishes two failure shapes: errors cover precondition
// and staging failures, while a rejection of the final commit by the OS comes
// back as (false, nil). (true, nil) means the layout is active or was already
// correct.
//
// All non-target monitors are staged first, then the target, then one commit
// activates everything; the OS requires this order. If staging fails halfway,
// records already staged are not rolled back. Callers must not run two
// reassignments concurrently; nothing here serializes them.
func (r *Reassigner) SetPrimary(device string) (bool, error) {
	monitors, err := r.Query.Monitors()
	if err != nil {
		return false, err
	}

	idx := -1
	for i, m := range monitors {
		if m.DeviceName != device {
			continue
		}
		if idx >= 0 {
			// Device names are unique per OS contract. If that breaks, the
			// first enumerated match wins.
			r.Log.Warn("duplicate device name, keeping first match",
				zap.String("device", device))
			break
		}
		idx = i
	}
	if idx < 0 {
		return false, fmt.Errorf("%w: %s", ErrMonitorNotFound, device)
	}
	target := monitors[idx]

	origin := Point{}
	tp := target.Position()
	if tp == origin {
		// Already primary; nothing to stage.
		return true, nil
	}
	offset := Point{X: -tp.X, Y: -tp.Y}

	for _, m := range monitors {
		if m.DeviceName == device {
			continue
		}
		mode, err := r.Store.ReadMode(m.DeviceName)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %v", ErrModeReadFailed, m.DeviceName, err)
		}
		pos := mode.Position().Add(offset)
		mode.SetPosition(pos)
		if st := r.Store.Stage(m.DeviceName, mode, StageUpdateRegistry|StageNoReset); st != StatusSuccessful {
			return false, fmt.Errorf("%w: %s: status %d", ErrConfigWriteFailed, m.DeviceName, st)
		}
		r.Log.Debug("staged monitor position",
			zap.String("device", m.DeviceName),
			zap.Int32("x", pos.X),
			zap.Int32("y", pos.Y))
	}

	mode, err := r.Store.ReadMode(target.DeviceName)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrModeReadFailed, target.DeviceName, err)
	}
	mode.SetPosition(origin)
	if st := r.Store.Stage(target.DeviceName, mode, StageUpdateRegistry|StageSetPrimary|StageNoReset); st != StatusSuccessful {
		return false, fmt.Errorf("%w: %s: status %d", ErrConfigWriteFailed, target.DeviceName, st)
	}

	if st := r.Store.Commit(); st != StatusSuccessful {
		// The OS declined the staged layout without raising an error
		// condition; report it as data, not as an error.
		r.Log.Warn("display commit rejected",
			zap.String("device", target.DeviceName),
			zap.Int32("status", int32(st)))
		return false, nil
	}

	r.Log.Info("primary monitor changed", zap.String("device", target.DeviceName))
	return true, nil
}
