package overlay

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/domain/entity"
)

type termNode struct {
	text     string
	top      float64
	left     float64
	side     entity.Side
	attached bool
	seq      int
}

// Terminal is an overlay host for text UIs. One cell is one unit of the
// coordinate space. Bubbles are drawn with lipgloss and composited over
// an already rendered frame by Compose.
type Terminal struct {
	style lipgloss.Style

	next    port.OverlayHandle
	seq     int
	nodes   map[port.OverlayHandle]*termNode
	changed func()
}

// NewTerminal creates a host drawing bubbles with style. The style's
// border is replaced per side, so only its colors and padding matter.
func NewTerminal(style lipgloss.Style) *Terminal {
	return &Terminal{
		style: style,
		nodes: make(map[port.OverlayHandle]*termNode),
	}
}

// OnChange registers fn to run whenever an attached bubble changes.
func (t *Terminal) OnChange(fn func()) {
	t.changed = fn
}

// Create implements port.OverlayHost.
func (t *Terminal) Create(text string) port.OverlayHandle {
	t.next++
	t.nodes[t.next] = &termNode{text: text}
	return t.next
}

// Measure implements port.OverlayHost.
func (t *Terminal) Measure(h port.OverlayHandle) entity.Rect {
	n, ok := t.nodes[h]
	if !ok {
		return entity.Rect{}
	}
	rendered := t.render(n)
	return entity.Rect{
		Top:    n.top,
		Left:   n.left,
		Width:  float64(lipgloss.Width(rendered)),
		Height: float64(lipgloss.Height(rendered)),
	}
}

// SetPosition implements port.OverlayHost.
func (t *Terminal) SetPosition(h port.OverlayHandle, top, left float64) {
	if n, ok := t.nodes[h]; ok {
		n.top, n.left = top, left
		t.notify(n)
	}
}

// MarkSide implements port.SideMarker. The border edge facing the host
// is drawn heavier; the bubble keeps its measured size.
func (t *Terminal) MarkSide(h port.OverlayHandle, side entity.Side) {
	if n, ok := t.nodes[h]; ok {
		n.side = side
		t.notify(n)
	}
}

// Attach implements port.OverlayHost.
func (t *Terminal) Attach(h port.OverlayHandle) {
	if n, ok := t.nodes[h]; ok && !n.attached {
		t.seq++
		n.attached = true
		n.seq = t.seq
		t.notify(n)
	}
}

// Detach implements port.OverlayHost.
func (t *Terminal) Detach(h port.OverlayHandle) {
	if n, ok := t.nodes[h]; ok && n.attached {
		n.attached = false
		if t.changed != nil {
			t.changed()
		}
	}
}

// Destroy implements port.OverlayHost.
func (t *Terminal) Destroy(h port.OverlayHandle) {
	delete(t.nodes, h)
}

// Attached returns the number of attached bubbles.
func (t *Terminal) Attached() int {
	n := 0
	for _, node := range t.nodes {
		if node.attached {
			n++
		}
	}
	return n
}

// Compose draws every attached bubble over frame, whose first line is
// document row scrollTop. Bubbles are clipped to the frame and drawn in
// attach order.
func (t *Terminal) Compose(frame []string, scrollTop, width int) []string {
	out := make([]string, len(frame))
	copy(out, frame)

	nodes := make([]*termNode, 0, len(t.nodes))
	for _, n := range t.nodes {
		if n.attached {
			nodes = append(nodes, n)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].seq < nodes[j].seq })

	for _, n := range nodes {
		Paint(out, t.render(n), int(math.Round(n.top))-scrollTop, int(math.Round(n.left)), width)
	}
	return out
}

// Paint draws a multi-line block over frame in place, its top-left
// corner at row, col. Lines falling outside the frame are skipped and
// columns are clipped to width.
func Paint(frame []string, block string, row, col, width int) {
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 0 || r >= len(frame) {
			continue
		}
		frame[r] = overlayLine(frame[r], line, col, width)
	}
}

func (t *Terminal) render(n *termNode) string {
	return t.style.Border(sideBorder(n.side)).Render(n.text)
}

func (t *Terminal) notify(n *termNode) {
	if n.attached && t.changed != nil {
		t.changed()
	}
}

// sideBorder returns a rounded border whose edge facing the host is heavy.
func sideBorder(side entity.Side) lipgloss.Border {
	b := lipgloss.RoundedBorder()
	switch {
	case side.IsBottom():
		b.Top = "━"
	case side.IsTop():
		b.Bottom = "━"
	case side == entity.SideRight:
		b.Left = "┃"
	case side == entity.SideLeft:
		b.Right = "┃"
	}
	return b
}

// overlayLine writes fg over bg starting at column col, clipped to width.
func overlayLine(bg, fg string, col, width int) string {
	if col < 0 {
		fg = ansi.TruncateLeft(fg, -col, "")
		col = 0
	}
	if width > 0 && col+ansi.StringWidth(fg) > width {
		fg = ansi.Truncate(fg, width-col, "")
	}
	fw := ansi.StringWidth(fg)
	if fw == 0 {
		return bg
	}

	left := ansi.Truncate(bg, col, "")
	if pad := col - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(bg, col+fw, "")
	return left + fg + right
}

var (
	_ port.OverlayHost = (*Terminal)(nil)
	_ port.SideMarker  = (*Terminal)(nil)
)
