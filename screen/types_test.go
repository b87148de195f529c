package screen

import "testing"

func TestDPIToScaleFactor(t *testing.T) {
	cases := []struct {
		dpi  uint32
		want float64
	}{
		{96, 1.0},
		{120, 1.25},
		{144, 1.5},
		{192, 2.0},
	}
	for _, tc := range cases {
		if got := DPIToScaleFactor(tc.dpi); got != tc.want {
			t.Errorf("DPIToScaleFactor(%d) = %v, want %v", tc.dpi, got, tc.want)
		}
	}
}

func TestRectGeometry(t *testing.T) {
	r := Rect{Left: -1280, Top: 200, Right: 0, Bottom: 1224}

	if got := r.Origin(); (got != Point{X: -1280, Y: 200}) {
		t.Errorf("Origin() = %+v", got)
	}
	if got := r.Size(); (got != Size{Width: 1280, Height: 1024}) {
		t.Errorf("Size() = %+v", got)
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 1920, Y: 0}.Add(Point{X: -3200, Y: 200})
	if (p != Point{X: -1280, Y: 200}) {
		t.Errorf("Add = %+v", p)
	}
}

func TestRefreshRateMillihertz(t *testing.T) {
	m := Monitor{RefreshRateMHz: 59940}
	if rate, ok := m.RefreshRateMillihertz(); !ok || rate != 59940 {
		t.Errorf("RefreshRateMillihertz() = (%d, %v)", rate, ok)
	}

	var unknown Monitor
	if _, ok := unknown.RefreshRateMillihertz(); ok {
		t.Error("expected absent refresh rate")
	}
}
