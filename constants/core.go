package constants

import "time"

// Main loop timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CooldownTickInterval is how often the cooldown countdown is refreshed
	CooldownTickInterval = time.Second

	// EventChannelSize buffers terminal events between the poller and the loop
	EventChannelSize = 256
)

// Wallet timing
const (
	// WalletRequestTimeout bounds a connect request, including user approval in the wallet
	WalletRequestTimeout = 60 * time.Second

	// WalletQueryTimeout bounds the silent connected-accounts query at startup
	WalletQueryTimeout = 3 * time.Second
)
