// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/cli/styles"
	"github.com/bnema/dumbtip/internal/domain/entity"
	"github.com/bnema/dumbtip/internal/infrastructure/config"
	"github.com/bnema/dumbtip/internal/infrastructure/overlay"
	"github.com/bnema/dumbtip/internal/logging"
	"github.com/bnema/dumbtip/internal/ui/input"
	"github.com/bnema/dumbtip/internal/ui/mainloop"
	"github.com/bnema/dumbtip/internal/ui/tooltip"
)

const (
	// cellPixels converts configured pixel offsets into terminal cells.
	cellPixels = 8.0
	// hostRowGap is the number of document rows between host tops.
	hostRowGap = 7
)

// timerMsg carries an expired timer callback onto the Update goroutine.
type timerMsg struct{ fn func() }

// ReloadMsg asks the playground to rebuild its tooltips from Config, or
// reports why that config could not be read.
type ReloadMsg struct {
	Config *config.Config
	Err    error
}

// PlaygroundOptions configures a PlaygroundModel.
type PlaygroundOptions struct {
	Config *config.Config
	// Send delivers a message to the running program, typically
	// (*tea.Program).Send. Timer callbacks go through it.
	Send func(tea.Msg)
	// Reload rereads the configuration for the reload key. Optional. It
	// may return a nil config when the new one arrives via ConfigChanged.
	Reload func() (*config.Config, error)
}

type demoHost struct {
	label string
	rect  entity.Rect
}

// PlaygroundModel lays out demo hosts in a scrollable document and
// shows a tooltip for whichever one the mouse hovers.
type PlaygroundModel struct {
	ctx    context.Context
	log    *zerolog.Logger
	cfg    *config.Config
	theme  *styles.Theme
	keys   styles.PlaygroundKeyMap
	help   help.Model
	reload func() (*config.Config, error)

	sched    *mainloop.TimerScheduler
	reloads  *mainloop.Latest[*config.Config]
	registry *tooltip.Registry
	hover    *input.HoverTracker
	overlay  *overlay.Terminal
	hosts    []*demoHost
	tips     []*tooltip.Tooltip

	width     int
	height    int
	scroll    int
	docHeight int

	pointerX, pointerY int
	hasPointer         bool
	status             string
	quitting           bool
}

// NewPlaygroundModel creates a playground. Tooltips are built on the
// first WindowSizeMsg, once the layout is known.
func NewPlaygroundModel(ctx context.Context, opts PlaygroundOptions) *PlaygroundModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	send := opts.Send
	if send == nil {
		send = func(tea.Msg) {}
	}
	ctx = logging.WithComponent(ctx, "playground")
	theme := styles.NewTheme(cfg)
	post := func(fn func()) { send(timerMsg{fn: fn}) }

	m := &PlaygroundModel{
		ctx:      ctx,
		log:      logging.FromContext(ctx),
		cfg:      cfg,
		theme:    theme,
		keys:     styles.DefaultPlaygroundKeyMap(),
		help:     styles.NewStyledHelp(theme),
		reload:   opts.Reload,
		sched:    mainloop.NewTimerScheduler(post),
		registry: tooltip.NewRegistry(ctx),
		hover:    input.NewHoverTracker(ctx),
		width:    80,
		height:   24,
	}
	m.reloads = mainloop.NewLatest(post, m.configArrived)
	return m
}

// Init implements tea.Model.
func (m *PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.tips == nil {
			m.build()
		} else {
			m.layout()
		}
		m.clampScroll()

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case timerMsg:
		msg.fn()

	case ReloadMsg:
		m.onReload(msg)
	}
	return m, nil
}

// ConfigChanged schedules a rebuild with cfg. It may be called from any
// goroutine; a burst of changes results in one rebuild with the last.
func (m *PlaygroundModel) ConfigChanged(cfg *config.Config) {
	m.reloads.Offer(cfg)
}

func (m *PlaygroundModel) configArrived(cfg *config.Config, merged int) {
	if merged > 0 {
		m.log.Debug().Int("merged", merged).Msg("config changes merged")
	}
	m.onReload(ReloadMsg{Config: cfg})
}

func (m *PlaygroundModel) onReload(msg ReloadMsg) {
	if m.quitting {
		return
	}
	if msg.Err != nil {
		m.status = "reload failed: " + msg.Err.Error()
		m.log.Warn().Err(msg.Err).Msg("config reload failed")
		return
	}
	if msg.Config != nil {
		m.apply(msg.Config)
		m.status = "config reloaded"
	}
}

func (m *PlaygroundModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	step := max(m.cfg.Playground.ScrollStep, 1)
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-step)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(step)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewHeight())
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewHeight())
	case key.Matches(msg, m.keys.Top):
		m.scrollBy(-m.scroll)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			return nil
		}
		reload := m.reload
		return func() tea.Msg {
			cfg, err := reload()
			return ReloadMsg{Config: cfg, Err: err}
		}
	}
	return nil
}

// handleMouse feeds pointer motion to the hover tracker in document
// coordinates. The footer counts as outside the document.
func (m *PlaygroundModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return
	}

	m.pointerX, m.pointerY = msg.X, msg.Y
	m.hasPointer = true
	m.track()
}

func (m *PlaygroundModel) track() {
	if !m.hasPointer {
		return
	}
	if m.pointerY >= m.viewHeight() || m.pointerX < 0 || m.pointerY < 0 {
		m.hover.Exit()
		return
	}
	m.hover.Move(float64(m.pointerX), float64(m.pointerY+m.scroll))
}

func (m *PlaygroundModel) scrollBy(rows int) {
	m.scroll += rows
	m.clampScroll()
	// the pointer stays put on screen while the document moves under it
	m.track()
}

func (m *PlaygroundModel) clampScroll() {
	m.scroll = min(m.scroll, max(m.docHeight-m.viewHeight(), 0))
	m.scroll = max(m.scroll, 0)
}

// viewHeight is the number of document rows on screen: everything but
// the status line and the help.
func (m *PlaygroundModel) viewHeight() int {
	return max(m.height-1-lipgloss.Height(m.help.View(m.keys)), 1)
}

// apply replaces the configuration and rebuilds every tooltip. Options
// are fixed per instance, so a reload means new instances.
func (m *PlaygroundModel) apply(cfg *config.Config) {
	m.cfg = cfg
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewStyledHelp(m.theme)
	m.help.Width = m.width
	m.teardown()
	m.build()
	m.clampScroll()
	m.track()
}

// build creates the hosts and one tooltip per host. Sides cycle through
// every placement starting at the configured one.
func (m *PlaygroundModel) build() {
	eff := m.cfg.Tooltip.Effective()
	sides := entity.AllSides()
	start := 0
	for i, s := range sides {
		if s == eff.Side {
			start = i
		}
	}

	m.overlay = overlay.NewTerminal(m.theme.Bubble)
	n := min(max(m.cfg.Playground.Hosts, config.MinHosts), config.MaxHosts)
	m.hosts = make([]*demoHost, n)
	m.tips = make([]*tooltip.Tooltip, n)

	for i := range n {
		side := sides[(start+i)%len(sides)]
		host := &demoHost{label: fmt.Sprintf("host %d (%s)", i+1, side)}
		m.hosts[i] = host

		tip := tooltip.New(m.ctx, tooltip.Options{
			Text:      fmt.Sprintf("tooltip %d\nprefers %s", i+1, side),
			Side:      side,
			ShowDelay: eff.ShowDelay,
			HideDelay: eff.HideDelay,
			Offset:    math.Ceil(eff.Offset / cellPixels),
		}, tooltip.Deps{
			Registry:  m.registry,
			Scheduler: m.sched,
			Overlay:   m.overlay,
			Host:      m.onScreen(host),
			Viewport:  port.ViewportFunc(m.viewport),
		})
		m.tips[i] = tip
		m.hover.Add(tip.ID(), func() entity.Rect { return host.rect }, tip)
	}
	m.layout()

	m.log.Debug().Int("hosts", n).Str("side", string(eff.Side)).Msg("playground built")
}

// layout places hosts in three columns down a document taller than the
// screen.
func (m *PlaygroundModel) layout() {
	for i, h := range m.hosts {
		box := m.theme.HostBox.Render(h.label)
		w := float64(lipgloss.Width(box))
		var left float64
		switch i % 3 {
		case 0:
			left = 2
		case 1:
			left = math.Floor((float64(m.width) - w) / 2)
		default:
			left = float64(m.width) - w - 2
		}
		h.rect = entity.Rect{
			Top:    float64(3 + i*hostRowGap),
			Left:   max(left, 0),
			Width:  w,
			Height: float64(lipgloss.Height(box)),
		}
	}

	last := 0
	if len(m.hosts) > 0 {
		r := m.hosts[len(m.hosts)-1].rect
		last = int(r.Top + r.Height)
	}
	m.docHeight = max(last+hostRowGap, m.viewHeight()*2)
}

// onScreen reports h relative to the visible rows. Host rects are kept
// in document rows for hit testing.
func (m *PlaygroundModel) onScreen(h *demoHost) port.HostGeometryFunc {
	return func() entity.Rect {
		return h.rect.Translate(0, -float64(m.scroll))
	}
}

func (m *PlaygroundModel) viewport() entity.Viewport {
	return entity.Viewport{
		Width:     float64(m.width),
		Height:    float64(m.viewHeight()),
		ScrollTop: float64(m.scroll),
	}
}

func (m *PlaygroundModel) teardown() {
	for _, tip := range m.tips {
		tip.Teardown()
	}
	m.tips = nil
	m.hosts = nil
	m.hover.Clear()
}

// Close tears every tooltip down and stops the scheduler. It is safe to
// call more than once.
func (m *PlaygroundModel) Close() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.teardown()
	m.sched.Destroy()
	m.reloads.Destroy()
	m.log.Debug().Msg("playground closed")
}

// View implements tea.Model.
func (m *PlaygroundModel) View() string {
	if m.quitting {
		return ""
	}

	rows := m.viewHeight()
	frame := make([]string, rows)
	for i := range frame {
		frame[i] = m.fillerLine(m.scroll + i)
	}

	hovered, _ := m.hover.Hovered()
	for i, h := range m.hosts {
		style := m.theme.HostBox
		if m.tips[i].ID() == hovered {
			style = m.theme.HostBoxHover
		}
		overlay.Paint(frame, style.Render(h.label), int(h.rect.Top)-m.scroll, int(h.rect.Left), m.width)
	}
	frame = m.overlay.Compose(frame, m.scroll, m.width)

	return strings.Join(frame, "\n") + "\n" + m.footer()
}

// fillerLine draws a faint ruler so scrolling is visible.
func (m *PlaygroundModel) fillerLine(docRow int) string {
	if docRow%5 != 0 {
		return ""
	}
	label := fmt.Sprintf("%4d ", docRow)
	dots := max(m.width-len(label), 0)
	return m.theme.Filler.Render(label + strings.Repeat("·", dots/2))
}

func (m *PlaygroundModel) footer() string {
	status := fmt.Sprintf("scroll %d/%d", m.scroll, max(m.docHeight-m.viewHeight(), 0))
	if active, ok := m.registry.Active(); ok {
		status += "  active " + active
	}
	if m.status != "" {
		status += "  " + m.status
	}
	return m.theme.StatusBar.Render(status) + "\n" + m.help.View(m.keys)
}
