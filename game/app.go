// Package game hosts the reward wheel in a tabbed terminal screen
//
// All App state is owned by the goroutine running Run. Terminal events, frame
// ticks, cooldown ticks and wallet results are multiplexed onto that goroutine,
// so the wheel, the gate and the views are never touched concurrently.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/impcton/audio"
	"github.com/lixenwraith/impcton/balance"
	"github.com/lixenwraith/impcton/config"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/engine"
	"github.com/lixenwraith/impcton/render"
	"github.com/lixenwraith/impcton/storage"
	"github.com/lixenwraith/impcton/wallet"
	"github.com/lixenwraith/impcton/wheel"
	"github.com/rs/zerolog"
)

// Display is the terminal the app draws on, satisfied by tcell.Screen
type Display interface {
	render.Surface
	Show()
}

// Tab identifies a screen tab
type Tab int

const (
	TabWheel Tab = iota
	TabWallet
	tabCount
)

func (t Tab) next() Tab {
	return (t + 1) % tabCount
}

// Deps are the collaborators injected into App
// Only Display is required
type Deps struct {
	Display Display
	Store   storage.Store
	Clock   engine.TimeProvider
	Random  engine.Random
	Wallet  wallet.AccountProvider
	Sound   audio.Player
	Logger  zerolog.Logger
}

type walletResult struct {
	accounts []string
	err      error
	silent   bool
}

// App is the host application
type App struct {
	cfg     config.Config
	display Display
	store   storage.Store
	clock   engine.TimeProvider
	sound   audio.Player
	log     zerolog.Logger

	frames *engine.FrameScheduler
	ledger *balance.Ledger
	gate   *wheel.Gate
	wheel  *wheel.Wheel

	wheelRenderer render.WheelRenderer
	lastPointer   int

	tab          Tab
	message      string
	messageKind  render.MessageKind
	messageUntil time.Time

	provider      wallet.AccountProvider
	walletView    render.WalletView
	walletResults chan walletResult

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New wires the wheel, gate and ledger for cfg
func New(cfg config.Config, d Deps) (*App, error) {
	if d.Display == nil {
		return nil, errors.New("game: display required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if d.Clock == nil {
		d.Clock = engine.NewMonotonicTimeProvider()
	}
	if d.Store == nil {
		d.Store = storage.NewMemoryStore()
	}
	if d.Sound == nil {
		d.Sound = audio.NopPlayer{}
	}
	if d.Random == nil && cfg.Seed != 0 {
		d.Random = engine.NewRandom(cfg.Seed)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		cfg:           cfg,
		display:       d.Display,
		store:         d.Store,
		clock:         d.Clock,
		sound:         d.Sound,
		log:           d.Logger,
		frames:        engine.NewFrameScheduler(),
		ledger:        balance.NewLedger(cfg.InitialBalance),
		provider:      d.Wallet,
		walletResults: make(chan walletResult),
		ctx:           ctx,
		cancel:        cancel,
	}

	a.gate = wheel.NewGate(d.Store, d.Clock, cfg.Cooldown.Duration, d.Logger.With().Str("component", "gate").Logger())

	w, err := wheel.New(wheel.Options{
		Segments: wheel.SegmentsFromValues(cfg.Segments),
		Duration: cfg.SpinDuration.Duration,
		Gate:     a.gate,
		Balance:  a.ledger,
		Frames:   a.frames,
		Clock:    d.Clock,
		Random:   d.Random,
		Renderer: wheel.RendererFunc(a.renderWheel),
		OnResult: a.onSpinResult,
		Logger:   d.Logger.With().Str("component", "wheel").Logger(),
	})
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "create wheel")
	}
	a.wheel = w
	a.lastPointer = w.PointerIndex()

	a.log.Info().
		Int("segments", len(cfg.Segments)).
		Dur("cooldown", a.gate.Cooldown()).
		Bool("can_spin", a.gate.CanSpin()).
		Dur("remaining", a.gate.Remaining()).
		Msg("app created")
	return a, nil
}

// Run is the main loop; it returns when the user quits, events close or ctx ends
func (a *App) Run(ctx context.Context, events <-chan tcell.Event) error {
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()
	cooldownTicker := time.NewTicker(constants.CooldownTickInterval)
	defer cooldownTicker.Stop()

	a.requestWallet(true)
	a.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-frameTicker.C:
			a.Frame()

		case <-cooldownTicker.C:
			a.CooldownTick()

		case res := <-a.walletResults:
			a.applyWallet(res)
			a.draw()
		}
	}
}

// HandleEvent applies one terminal event, returning false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	if key, ok := ev.(*tcell.EventKey); ok && !a.handleKey(key) {
		return false
	}
	// Resize and any key both repaint
	a.draw()
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab, tcell.KeyBacktab:
		a.switchTab(a.tab.next())
	case tcell.KeyEnter:
		if a.tab == TabWheel {
			a.spin()
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case '1':
			a.switchTab(TabWheel)
		case '2':
			a.switchTab(TabWallet)
		case ' ':
			if a.tab == TabWheel {
				a.spin()
			}
		case 'c', 'C':
			if a.tab == TabWallet {
				a.requestWallet(false)
			}
		}
	}
	return true
}

// Frame runs pending frame callbacks at the current time and redraws
func (a *App) Frame() {
	a.frames.RunFrame(a.clock.Now())
	a.draw()
}

// CooldownTick refreshes the gate once per second
func (a *App) CooldownTick() {
	if a.gate.Tick() {
		a.setMessage("Wheel ready", render.MessageSuccess)
	}
}

// Close cancels any spin, stops wallet requests and releases the store and audio
// The terminal itself is restored by the caller
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	a.wheel.Close()
	a.cancel()

	if c, ok := a.sound.(interface{ Cleanup() }); ok {
		c.Cleanup()
	}

	var err error
	if a.store != nil {
		err = errors.Wrap(a.store.Close(), "close store")
	}
	a.log.Info().Int64("balance", a.ledger.Balance()).Msg("app closed")
	return err
}

// Balance returns the current token balance
func (a *App) Balance() int64 {
	return a.ledger.Balance()
}

// Tab returns the active tab
func (a *App) Tab() Tab {
	return a.tab
}

// Wheel returns the reward wheel
func (a *App) Wheel() *wheel.Wheel {
	return a.wheel
}

func (a *App) switchTab(t Tab) {
	if t == a.tab {
		return
	}
	a.tab = t
	a.log.Debug().Int("tab", int(t)).Msg("tab switched")
}

func (a *App) spin() {
	_, err := a.wheel.Spin()
	switch {
	case err == nil:
		a.message = ""
	case errors.Is(err, wheel.ErrSpinning):
		// Repeated trigger while the wheel turns
	case errors.Is(err, wheel.ErrCooldown):
		a.sound.Play(audio.SoundDenied)
		a.setMessage("Next spin in "+render.FormatCountdown(a.gate.Remaining()), render.MessageInfo)
	default:
		a.setMessage(err.Error(), render.MessageError)
	}
}

func (a *App) onSpinResult(res wheel.SpinResult) {
	a.sound.Play(audio.SoundCoin)
	a.setMessage(fmt.Sprintf("You won %d IMP!", res.Segment.Value), render.MessageSuccess)
}

func (a *App) setMessage(text string, kind render.MessageKind) {
	a.message = text
	a.messageKind = kind
	a.messageUntil = a.clock.Now().Add(constants.StatusMessageTimeout)
}

// requestWallet asks the provider for accounts on a helper goroutine
// silent queries already authorized accounts without prompting or reporting errors
func (a *App) requestWallet(silent bool) {
	if !silent {
		if a.walletView.Connecting {
			return
		}
		a.walletView.Connecting = true
		a.walletView.Error = ""
	}

	provider := a.provider
	timeout := a.cfg.WalletTimeout.Duration
	if silent {
		timeout = constants.WalletQueryTimeout
	}
	parent := a.ctx
	results := a.walletResults

	startWalletRequest(func() {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		res := walletResult{silent: silent}
		switch {
		case provider == nil:
			res.err = wallet.ErrProviderUnavailable
		case silent:
			res.accounts, res.err = provider.ConnectedAccounts(ctx)
		default:
			res.accounts, res.err = provider.RequestAccounts(ctx)
		}

		select {
		case results <- res:
		case <-parent.Done():
		}
	})
}

func (a *App) applyWallet(res walletResult) {
	if res.silent {
		if res.err != nil {
			a.log.Debug().Err(res.err).Msg("wallet query failed")
			return
		}
		if len(res.accounts) > 0 {
			a.walletView.Accounts = wallet.ShortAddresses(res.accounts)
		}
		return
	}

	a.walletView.Connecting = false
	if res.err != nil {
		a.log.Warn().Err(res.err).Msg("wallet connect failed")
		a.walletView.Error = wallet.Describe(res.err)
		a.setMessage(a.walletView.Error, render.MessageError)
		return
	}
	if len(res.accounts) == 0 {
		a.walletView.Error = "Wallet returned no accounts"
		return
	}

	a.walletView.Error = ""
	a.walletView.Accounts = wallet.ShortAddresses(res.accounts)
	a.log.Info().Int("accounts", len(res.accounts)).Msg("wallet connected")
	a.setMessage("Wallet connected", render.MessageSuccess)
}
