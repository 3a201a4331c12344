package constants

import "time"

// Tick sound timing, played when a segment boundary passes the pointer
const (
	TickSoundDuration = 25 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 15 * time.Millisecond
)

// Coin sound timing, played on credit
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Denied sound timing, played on a rejected spin
const (
	DeniedSoundDuration = 150 * time.Millisecond
	DeniedSoundAttack   = 5 * time.Millisecond
	DeniedSoundRelease  = 40 * time.Millisecond
)

// MinTickGap throttles tick sounds during the fastest part of a spin
const MinTickGap = 40 * time.Millisecond
