package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawing target, satisfied by tcell.Screen
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var _ Surface = tcell.Screen(nil)

// Rect is a region of a surface in cells
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// FullRect returns the rect covering the whole surface
func FullRect(s Surface) Rect {
	w, h := s.Size()
	return Rect{Width: w, Height: h}
}

// setClipped writes a cell only when it is inside both the surface and clip
func setClipped(s Surface, clip Rect, x, y int, ch rune, style tcell.Style) {
	if !clip.Contains(x, y) {
		return
	}
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.SetContent(x, y, ch, nil, style)
}
