package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/impcton/wheel"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// MockSurface records cells written to it
type MockSurface struct {
	width, height int
	cells         map[[2]int]cell
	writes        int
}

func NewMockSurface(width, height int) *MockSurface {
	return &MockSurface{width: width, height: height, cells: make(map[[2]int]cell)}
}

func (m *MockSurface) Size() (int, int) { return m.width, m.height }

func (m *MockSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	m.writes++
	m.cells[[2]int{x, y}] = cell{ch: primary, style: style}
}

func (m *MockSurface) At(x, y int) (cell, bool) {
	c, ok := m.cells[[2]int{x, y}]
	return c, ok
}

func (m *MockSurface) Row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		c, ok := m.At(x, y)
		if !ok || c.ch == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.ch)
	}
	return b.String()
}

func background(c cell) tcell.Color {
	_, bg, _ := c.style.Decompose()
	return bg
}

func TestLayoutWheel(t *testing.T) {
	tests := []struct {
		name   string
		area   Rect
		ok     bool
		radius int
	}{
		{"empty", Rect{}, false, 0},
		{"too short", Rect{Width: 80, Height: 6}, false, 0},
		{"too narrow", Rect{Width: 10, Height: 40}, false, 0},
		{"height bound", Rect{Width: 80, Height: 20}, true, 9},
		{"width bound", Rect{Width: 33, Height: 40}, true, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo, ok := LayoutWheel(tt.area)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && geo.Radius != tt.radius {
				t.Errorf("radius = %d, want %d", geo.Radius, tt.radius)
			}
		})
	}
}

func TestLayoutWheel_FitsArea(t *testing.T) {
	area := Rect{X: 3, Y: 2, Width: 61, Height: 25}
	geo, ok := LayoutWheel(area)
	if !ok {
		t.Fatal("expected a layout")
	}
	pointerY := geo.CenterY - geo.Radius - 1
	if pointerY != area.Y {
		t.Errorf("pointer row = %d, want %d", pointerY, area.Y)
	}
	if !area.Contains(geo.CenterX, geo.CenterY+geo.Radius) {
		t.Error("bottom rim outside area")
	}
	halfWidth := int(float64(geo.Radius) * 2)
	if !area.Contains(geo.CenterX-halfWidth, geo.CenterY) || !area.Contains(geo.CenterX+halfWidth, geo.CenterY) {
		t.Error("horizontal rim outside area")
	}
}

func TestScreenAngle(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   float64
	}{
		{0, -5, 0},
		{10, 0, 90},
		{0, 5, 180},
		{-10, 0, 270},
	}
	for _, tt := range tests {
		if got := ScreenAngle(tt.dx, tt.dy); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ScreenAngle(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestSliceAt_PointerMatchesSelector(t *testing.T) {
	for _, rot := range []float64{0, 10, 44.9, 45, 200, 3607, 3262.5} {
		if got, want := SliceAt(0, rot, 8), wheel.SelectSegment(rot, 8); got != want {
			t.Errorf("rotation %v: SliceAt = %d, SelectSegment = %d", rot, got, want)
		}
	}
}

func TestDrawWheel_NoOp(t *testing.T) {
	segs := wheel.DefaultSegments()

	// Nil surface must not panic
	DrawWheel(nil, Rect{Width: 80, Height: 24}, 0, segs)
	(&WheelRenderer{}).Draw(nil, 0, segs)

	small := NewMockSurface(8, 4)
	DrawWheel(small, FullRect(small), 0, segs)
	if small.writes != 0 {
		t.Errorf("small surface got %d writes, want 0", small.writes)
	}

	empty := NewMockSurface(80, 24)
	DrawWheel(empty, FullRect(empty), 0, nil)
	if empty.writes != 0 {
		t.Errorf("empty segments got %d writes, want 0", empty.writes)
	}
}

func TestDrawWheel_PointerAndTopSlice(t *testing.T) {
	segs := wheel.DefaultSegments()
	s := NewMockSurface(80, 24)
	area := FullRect(s)
	geo, _ := LayoutWheel(area)

	tests := []struct {
		name     string
		rotation float64
		want     tcell.Color
	}{
		{"rest", 0, SliceColor(0)},
		{"one slice", 45, SliceColor(1)},
		{"two slices", 90, SliceColor(2)},
		{"many turns", 3607, SliceColor(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			DrawWheel(s, area, tt.rotation, segs)

			pointer, ok := s.At(geo.CenterX, geo.CenterY-geo.Radius-1)
			if !ok || pointer.ch != '▼' {
				t.Fatalf("pointer cell = %q, want ▼", pointer.ch)
			}
			top, ok := s.At(geo.CenterX, geo.CenterY-geo.Radius)
			if !ok {
				t.Fatal("top rim cell not drawn")
			}
			if got := background(top); got != tt.want {
				t.Errorf("top slice color = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawWheel_Labels(t *testing.T) {
	segs := wheel.DefaultSegments()
	s := NewMockSurface(100, 30)
	DrawWheel(s, FullRect(s), 0, segs)

	var screen strings.Builder
	for y := 0; y < 30; y++ {
		screen.WriteString(s.Row(y))
		screen.WriteByte('\n')
	}
	for _, seg := range segs {
		if !strings.Contains(screen.String(), seg.Label) {
			t.Errorf("label %q not drawn", seg.Label)
		}
	}
}

func TestDrawWheel_ClipsToArea(t *testing.T) {
	s := NewMockSurface(80, 24)
	area := Rect{X: 10, Y: 2, Width: 40, Height: 18}
	DrawWheel(s, area, 123, wheel.DefaultSegments())

	for pos := range s.cells {
		if !area.Contains(pos[0], pos[1]) {
			t.Fatalf("cell %v drawn outside area", pos)
		}
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{-time.Second, "00:00"},
		{500 * time.Millisecond, "00:01"},
		{time.Second, "00:01"},
		{59 * time.Second, "00:59"},
		{30 * time.Minute, "30:00"},
		{29*time.Minute + 59*time.Second + 100*time.Millisecond, "30:00"},
		{time.Hour, "60:00"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.d); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDrawTabBar(t *testing.T) {
	s := NewMockSurface(30, 3)
	DrawTabBar(s, 0, []string{" Wheel ", " Wallet "}, 1)

	if got := s.Row(0); !strings.HasPrefix(got, " Wheel   Wallet ") {
		t.Errorf("tab row = %q", got)
	}
	active, _ := s.At(9, 0)
	if background(active) != RgbTabActiveBg {
		t.Error("active tab not highlighted")
	}
	inactive, _ := s.At(1, 0)
	if background(inactive) != RgbTabInactiveBg {
		t.Error("inactive tab highlighted")
	}
}

func TestDrawCooldown(t *testing.T) {
	s := NewMockSurface(60, 2)
	DrawCooldown(s, 0, 0, 10, 0, time.Hour)
	if got := s.Row(0); !strings.Contains(got, "Ready to spin") {
		t.Errorf("ready row = %q", got)
	}

	s = NewMockSurface(60, 2)
	end := DrawCooldown(s, 0, 0, 10, 30*time.Minute, time.Hour)
	if got := s.Row(0); !strings.Contains(got, "Next spin in 30:00") {
		t.Errorf("cooldown row = %q", got)
	}

	barStart := end - 10
	first, _ := s.At(barStart, 0)
	last, _ := s.At(end-1, 0)
	if background(first) == RgbEmptyCell {
		t.Error("first bar cell should be filled at half progress")
	}
	if background(last) != RgbEmptyCell {
		t.Error("last bar cell should be empty at half progress")
	}
}

func TestDrawWalletPanel(t *testing.T) {
	tests := []struct {
		name string
		view WalletView
		want string
	}{
		{"idle", WalletView{}, "Press c to connect"},
		{"connecting", WalletView{Connecting: true}, "Waiting for the wallet"},
		{"connected", WalletView{Accounts: []string{"0x1234…abcd"}}, "0x1234…abcd"},
		{"error", WalletView{Error: "wallet unavailable"}, "wallet unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMockSurface(60, 12)
			DrawWalletPanel(s, FullRect(s), tt.view)

			found := false
			for y := 0; y < 12; y++ {
				if strings.Contains(s.Row(y), tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("%q not drawn", tt.want)
			}
		})
	}
}

func TestCooldownBarColor(t *testing.T) {
	if CooldownBarColor(0) != RgbEmptyCell {
		t.Error("zero progress should be empty")
	}
	if CooldownBarColor(1) != tcell.NewRGBColor(158, 206, 106) {
		t.Error("full progress should be green")
	}
	if CooldownBarColor(2) != CooldownBarColor(1) {
		t.Error("progress should clamp at 1")
	}
}
