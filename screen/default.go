package screen

import (
	"sync"

	"github.com/rpdg/wmutil/winapi"
)

var (
	defaultOnce  sync.Once
	defaultQuery *DisplayQuery
	defaultRe    *Reassigner
)

func initDefaults() {
	defaultQuery = NewDisplayQuery(winapi.NewDPIQuery())
	defaultRe = NewReassigner(defaultQuery, NewDevModeStore(), nil)
}

// DefaultQuery returns the process-wide DisplayQuery, built on first use.
func DefaultQuery() *DisplayQuery {
	defaultOnce.Do(initDefaults)
	return defaultQuery
}

// DefaultReassigner returns the process-wide Reassigner, built on first use.
func DefaultReassigner() *Reassigner {
	defaultOnce.Do(initDefaults)
	return defaultRe
}

// SetPrimary makes this monitor the primary display. See Reassigner.SetPrimary.
func (m Monitor) SetPrimary() (bool, error) {
	return DefaultReassigner().SetPrimary(m.DeviceName)
}
