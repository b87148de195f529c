package screen

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Capture grabs the monitor's current contents as an RGBA image.
func (m Monitor) Capture() (*image.RGBA, error) {
	b := m.Bounds
	return screenshot.CaptureRect(image.Rect(
		int(b.Left), int(b.Top), int(b.Right), int(b.Bottom),
	))
}
