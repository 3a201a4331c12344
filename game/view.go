package game

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/impcton/audio"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/core"
	"github.com/lixenwraith/impcton/render"
	"github.com/lixenwraith/impcton/wheel"
)

const helpText = "Space spin  Tab switch  c connect  q quit"

// startWalletRequest runs wallet calls off the loop, swapped in tests
var startWalletRequest = core.Go

// layout splits the screen into tab bar, content and status rows
type layout struct {
	content  render.Rect
	statusY  int
	helpY    int
	messageY int
}

func (a *App) layout() layout {
	w, h := a.display.Size()
	contentH := h - constants.TabBarHeight - constants.StatusBarHeight - 1
	if contentH < 0 {
		contentH = 0
	}
	return layout{
		content:  render.Rect{X: 0, Y: constants.TabBarHeight, Width: w, Height: contentH},
		statusY:  h - 3,
		helpY:    h - 2,
		messageY: h - 1,
	}
}

// renderWheel is the wheel's renderer, called on every animation frame
func (a *App) renderWheel(rotation float64, segments []wheel.Segment) {
	index := wheel.SelectSegment(rotation, len(segments))
	if index != a.lastPointer && a.wheel != nil && a.wheel.Spinning() {
		a.sound.Play(audio.SoundTick)
	}
	a.lastPointer = index

	if a.tab != TabWheel {
		return
	}
	a.wheelRenderer.Area = a.layout().content
	a.wheelRenderer.Draw(a.display, rotation, segments)
}

// draw repaints the whole screen
func (a *App) draw() {
	l := a.layout()
	render.Clear(a.display)
	render.DrawTabBar(a.display, 0, []string{constants.TabTitleWheel, constants.TabTitleWallet}, int(a.tab))

	switch a.tab {
	case TabWheel:
		a.wheel.Draw()
	case TabWallet:
		render.DrawWalletPanel(a.display, l.content, a.walletView)
	}

	x := render.DrawBalance(a.display, 1, l.statusY, a.ledger.Balance())
	render.DrawCooldown(a.display, x+3, l.statusY, 20, a.gate.Remaining(), a.gate.Cooldown())
	render.DrawText(a.display, 1, l.helpY, helpText, tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbDimText))

	if a.message != "" && a.clock.Now().Before(a.messageUntil) {
		render.DrawMessage(a.display, l.messageY, a.message, a.messageKind)
	}

	a.display.Show()
}
