package render

import "github.com/gdamore/tcell/v2"

// Palette, Tokyo Night based
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)
	RgbText       = tcell.NewRGBColor(192, 202, 245)
	RgbDimText    = tcell.NewRGBColor(86, 95, 137)

	RgbSliceA     = tcell.NewRGBColor(247, 118, 142) // Rose
	RgbSliceB     = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbSliceLabel = tcell.NewRGBColor(16, 16, 24)
	RgbPointer    = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbHub        = tcell.NewRGBColor(255, 255, 255)

	RgbTabActiveBg   = tcell.NewRGBColor(224, 175, 104)
	RgbTabActiveFg   = tcell.NewRGBColor(16, 16, 24)
	RgbTabInactiveBg = tcell.NewRGBColor(41, 46, 66)

	RgbBalance   = tcell.NewRGBColor(158, 206, 106) // Green
	RgbReady     = tcell.NewRGBColor(158, 206, 106)
	RgbCooldown  = tcell.NewRGBColor(255, 158, 100) // Orange
	RgbError     = tcell.NewRGBColor(247, 118, 142)
	RgbEmptyCell = tcell.NewRGBColor(0, 0, 0)
)

// SliceColor returns the fill for segment index, alternating two colors
func SliceColor(index int) tcell.Color {
	if index%2 == 0 {
		return RgbSliceA
	}
	return RgbSliceB
}

// CooldownBarColor grades the refill bar from red through amber to green
// progress 0 is a fresh cooldown, 1 is ready
func CooldownBarColor(progress float64) tcell.Color {
	if progress <= 0 {
		return RgbEmptyCell
	}
	if progress > 1 {
		progress = 1
	}

	if progress < 0.5 { // Red to Amber
		t := progress / 0.5
		r := int32(247 - (247-224)*t)
		g := int32(118 + (175-118)*t)
		b := int32(142 - (142-104)*t)
		return tcell.NewRGBColor(r, g, b)
	}
	// Amber to Green
	t := (progress - 0.5) / 0.5
	r := int32(224 - (224-158)*t)
	g := int32(175 + (206-175)*t)
	b := int32(104 + (106-104)*t)
	return tcell.NewRGBColor(r, g, b)
}
