package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/wheel"
)

// WheelGeometry is the placement of the wheel inside an area
// Radius is measured in rows; the horizontal radius is Radius*CellAspect columns
type WheelGeometry struct {
	CenterX, CenterY int
	Radius           int
}

// LayoutWheel fits the largest wheel plus its pointer row into area
// Returns false when the area cannot hold a wheel of MinWheelRadius
func LayoutWheel(area Rect) (WheelGeometry, bool) {
	if area.Empty() {
		return WheelGeometry{}, false
	}

	// Pointer row above the rim, then 2R+1 wheel rows
	radius := (area.Height - 2) / 2
	byWidth := int(float64(area.Width-1) / (2 * constants.CellAspect))
	if byWidth < radius {
		radius = byWidth
	}
	if radius < constants.MinWheelRadius {
		return WheelGeometry{}, false
	}

	return WheelGeometry{
		CenterX: area.X + area.Width/2,
		CenterY: area.Y + 1 + radius,
		Radius:  radius,
	}, true
}

// ScreenAngle returns the clockwise angle in degrees from 12 o'clock of a
// cell offset, correcting for the cell aspect ratio
func ScreenAngle(dx, dy int) float64 {
	fx := float64(dx) / constants.CellAspect
	fy := float64(dy)
	return wheel.NormalizeAngle(math.Atan2(fx, -fy) * 180 / math.Pi)
}

// SliceAt returns the segment index drawn at a screen angle for a rotation
// The pointer sits at screen angle 0, so SliceAt(0, r, n) matches
// wheel.SelectSegment(r, n)
func SliceAt(screenAngle, rotation float64, count int) int {
	return wheel.SelectSegment(screenAngle+rotation, count)
}

// DrawWheel draws segments as equal pie slices rotated by rotation degrees
// Slices alternate two fills and carry their label on the bisector; the
// pointer marks the top. A nil surface or an area too small is a no-op
func DrawWheel(s Surface, area Rect, rotation float64, segments []wheel.Segment) {
	if s == nil || len(segments) == 0 {
		return
	}
	geo, ok := LayoutWheel(area)
	if !ok {
		return
	}

	count := len(segments)
	r := float64(geo.Radius)
	halfWidth := int(r * constants.CellAspect)

	// Slices
	for y := geo.CenterY - geo.Radius; y <= geo.CenterY+geo.Radius; y++ {
		dy := y - geo.CenterY
		for x := geo.CenterX - halfWidth; x <= geo.CenterX+halfWidth; x++ {
			dx := x - geo.CenterX
			if math.Hypot(float64(dx)/constants.CellAspect, float64(dy)) > r+0.3 {
				continue
			}
			index := SliceAt(ScreenAngle(dx, dy), rotation, count)
			style := tcell.StyleDefault.Background(SliceColor(index)).Foreground(RgbSliceLabel)
			setClipped(s, area, x, y, ' ', style)
		}
	}

	// Labels on each bisector
	labelR := r * constants.WheelLabelRadius
	width := wheel.SegmentWidth(count)
	for i, seg := range segments {
		theta := ((float64(i)+0.5)*width - rotation) * math.Pi / 180
		lx := float64(geo.CenterX) + math.Sin(theta)*labelR*constants.CellAspect
		ly := float64(geo.CenterY) - math.Cos(theta)*labelR

		runes := []rune(seg.Label)
		startX := int(math.Round(lx)) - len(runes)/2
		y := int(math.Round(ly))
		style := tcell.StyleDefault.Background(SliceColor(i)).Foreground(RgbSliceLabel).Bold(true)
		for j, ch := range runes {
			setClipped(s, area, startX+j, y, ch, style)
		}
	}

	// Hub and pointer
	setClipped(s, area, geo.CenterX, geo.CenterY, '●', tcell.StyleDefault.Background(SliceColor(SliceAt(0, rotation, count))).Foreground(RgbHub))
	setClipped(s, area, geo.CenterX, geo.CenterY-geo.Radius-1, '▼', tcell.StyleDefault.Background(RgbBackground).Foreground(RgbPointer))
}

// WheelRenderer draws a wheel into a fixed area of a surface
// Area is updated by the host on resize; an empty Area means the whole surface
type WheelRenderer struct {
	Area Rect
}

// Draw renders segments at rotation onto s
func (r *WheelRenderer) Draw(s Surface, rotation float64, segments []wheel.Segment) {
	if s == nil {
		return
	}
	area := r.Area
	if area.Empty() {
		area = FullRect(s)
	}
	DrawWheel(s, area, rotation, segments)
}
