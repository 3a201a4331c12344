package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DrawText writes text starting at (x, y) clipped to the surface
// Returns the column after the last rune
func DrawText(s Surface, x, y int, text string, style tcell.Style) int {
	if s == nil {
		return x
	}
	clip := FullRect(s)
	for _, ch := range text {
		setClipped(s, clip, x, y, ch, style)
		x++
	}
	return x
}

// FillRow paints a full row with spaces in style
func FillRow(s Surface, y int, style tcell.Style) {
	if s == nil {
		return
	}
	w, _ := s.Size()
	clip := FullRect(s)
	for x := 0; x < w; x++ {
		setClipped(s, clip, x, y, ' ', style)
	}
}

// DrawTabBar renders tab titles on row y, highlighting active
func DrawTabBar(s Surface, y int, titles []string, active int) {
	if s == nil {
		return
	}
	FillRow(s, y, tcell.StyleDefault.Background(RgbTabInactiveBg))

	x := 0
	for i, title := range titles {
		style := tcell.StyleDefault.Background(RgbTabInactiveBg).Foreground(RgbDimText)
		if i == active {
			style = tcell.StyleDefault.Background(RgbTabActiveBg).Foreground(RgbTabActiveFg).Bold(true)
		}
		x = DrawText(s, x, y, title, style)
		x++
	}
}

// FormatCountdown renders a wait as MM:SS, rounding partial seconds up
// so 00:00 only shows once the wait is over
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return "00:00"
	}
	secs := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// FormatBalance renders the token balance readout
func FormatBalance(balance int64) string {
	return fmt.Sprintf("Balance: %d IMP", balance)
}

// DrawBalance writes the balance readout at (x, y)
func DrawBalance(s Surface, x, y int, balance int64) int {
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBalance).Bold(true)
	return DrawText(s, x, y, FormatBalance(balance), style)
}

// DrawCooldown writes the countdown and a refill bar of barWidth cells
// A zero remaining shows the ready state instead
func DrawCooldown(s Surface, x, y, barWidth int, remaining, cooldown time.Duration) int {
	if s == nil {
		return x
	}
	if remaining <= 0 {
		style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbReady).Bold(true)
		return DrawText(s, x, y, "Ready to spin", style)
	}

	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCooldown)
	x = DrawText(s, x, y, "Next spin in "+FormatCountdown(remaining)+" ", style)

	if barWidth <= 0 || cooldown <= 0 {
		return x
	}
	progress := 1 - float64(remaining)/float64(cooldown)
	filled := int(progress * float64(barWidth))
	clip := FullRect(s)
	for i := 0; i < barWidth; i++ {
		bg := RgbEmptyCell
		if i < filled {
			bg = CooldownBarColor(float64(i+1) / float64(barWidth))
		}
		setClipped(s, clip, x+i, y, ' ', tcell.StyleDefault.Background(bg))
	}
	return x + barWidth
}

// MessageKind selects the color of a message line
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageSuccess
	MessageError
)

// DrawMessage fills row y and writes a transient message
func DrawMessage(s Surface, y int, text string, kind MessageKind) {
	if s == nil {
		return
	}
	FillRow(s, y, tcell.StyleDefault.Background(RgbBackground))
	fg := RgbText
	switch kind {
	case MessageSuccess:
		fg = RgbReady
	case MessageError:
		fg = RgbError
	}
	DrawText(s, 1, y, text, tcell.StyleDefault.Background(RgbBackground).Foreground(fg))
}

// WalletView is the display state of the wallet tab
type WalletView struct {
	Connecting bool
	Accounts   []string
	Error      string
}

// DrawWalletPanel renders the wallet tab inside area
// Accounts are expected pre-shortened for display
func DrawWalletPanel(s Surface, area Rect, view WalletView) {
	if s == nil || area.Empty() {
		return
	}
	text := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	dim := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbDimText)
	y := area.Y + 1
	x := area.X + 2

	DrawText(s, x, y, "Wallet", text.Bold(true))
	y += 2

	switch {
	case view.Connecting:
		DrawText(s, x, y, "Waiting for the wallet to approve...", dim)
	case len(view.Accounts) > 0:
		DrawText(s, x, y, "Connected accounts:", text)
		for _, acct := range view.Accounts {
			y++
			if y >= area.Y+area.Height {
				return
			}
			DrawText(s, x+2, y, acct, tcell.StyleDefault.Background(RgbBackground).Foreground(RgbBalance))
		}
	default:
		DrawText(s, x, y, "Not connected. Press c to connect.", dim)
	}

	if view.Error != "" && y+2 < area.Y+area.Height {
		DrawText(s, x, y+2, view.Error, tcell.StyleDefault.Background(RgbBackground).Foreground(RgbError))
	}
}

// Clear fills the whole surface with the background
func Clear(s Surface) {
	if s == nil {
		return
	}
	_, h := s.Size()
	style := tcell.StyleDefault.Background(RgbBackground)
	for y := 0; y < h; y++ {
		FillRow(s, y, style)
	}
}
