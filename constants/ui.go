package constants

import "time"

// Screen layout
const (
	// TabBarHeight is the row count reserved for the tab bar
	TabBarHeight = 1

	// StatusBarHeight is the row count reserved for balance and countdown lines
	StatusBarHeight = 2

	// MinWheelRadius is the smallest wheel radius in rows worth drawing
	MinWheelRadius = 3

	// WheelLabelRadius places labels at this fraction of the radius
	WheelLabelRadius = 0.62

	// CellAspect is how many columns span the height of one row
	CellAspect = 2.0
)

// Message timing
const (
	// StatusMessageTimeout is how long transient messages stay on screen
	StatusMessageTimeout = 3 * time.Second
)

// Tab titles
const (
	TabTitleWheel  = " Wheel "
	TabTitleWallet = " Wallet "
)
