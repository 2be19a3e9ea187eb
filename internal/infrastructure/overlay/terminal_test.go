package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtip/internal/domain/entity"
)

func blankFrame(rows, cols int) []string {
	frame := make([]string, rows)
	for i := range frame {
		frame[i] = strings.Repeat(".", cols)
	}
	return frame
}

func newPlainTerminal() *Terminal {
	return NewTerminal(lipgloss.NewStyle().Padding(0, 1))
}

func TestTerminal_MeasureIncludesBorderAndPadding(t *testing.T) {
	term := newPlainTerminal()
	h := term.Create("hi")

	r := term.Measure(h)
	assert.Equal(t, 6.0, r.Width)
	assert.Equal(t, 3.0, r.Height)
}

func TestTerminal_MeasureUnknownHandle(t *testing.T) {
	term := newPlainTerminal()
	assert.Equal(t, entity.Rect{}, term.Measure(42))
}

func TestTerminal_ComposeDrawsAttachedOnly(t *testing.T) {
	term := newPlainTerminal()
	h := term.Create("hi")
	term.SetPosition(h, 1, 2)

	frame := blankFrame(5, 10)
	assert.Equal(t, frame, term.Compose(frame, 0, 10), "detached bubble must not be drawn")

	term.Attach(h)
	out := term.Compose(frame, 0, 10)
	assert.Equal(t, "..........", out[0])
	assert.Equal(t, "..╭────╮..", out[1])
	assert.Equal(t, "..│ hi │..", out[2])
	assert.Equal(t, "..╰────╯..", out[3])
	assert.Equal(t, "..........", out[4])
	assert.Equal(t, "..........", frame[1], "input frame is not modified")
}

func TestTerminal_MarkSideKeepsSize(t *testing.T) {
	term := newPlainTerminal()
	h := term.Create("hi")
	before := term.Measure(h)

	term.MarkSide(h, entity.SideBottom)
	term.Attach(h)
	assert.Equal(t, before, term.Measure(h))

	out := term.Compose(blankFrame(3, 6), 0, 6)
	assert.Equal(t, "╭━━━━╮", out[0])
}

func TestTerminal_ComposeHonorsScroll(t *testing.T) {
	term := newPlainTerminal()
	h := term.Create("hi")
	term.SetPosition(h, 11, 0)
	term.Attach(h)

	out := term.Compose(blankFrame(3, 8), 10, 8)
	assert.Equal(t, "........", out[0])
	assert.Equal(t, "╭────╮..", out[1])
	assert.Equal(t, "│ hi │..", out[2])
}

func TestTerminal_ComposeClipsHorizontally(t *testing.T) {
	term := newPlainTerminal()
	h := term.Create("hi")
	term.Attach(h)

	term.SetPosition(h, 0, 7)
	out := term.Compose(blankFrame(1, 10), 0, 10)
	assert.Equal(t, ".......╭──", out[0])

	term.SetPosition(h, 0, -2)
	out = term.Compose(blankFrame(1, 10), 0, 10)
	assert.Equal(t, "───╮......", out[0])
}

func TestTerminal_DetachAndDestroy(t *testing.T) {
	term := newPlainTerminal()
	var changes int
	term.OnChange(func() { changes++ })

	h := term.Create("hi")
	term.SetPosition(h, 0, 0)
	assert.Zero(t, changes, "changes to detached bubbles are silent")

	term.Attach(h)
	require.Equal(t, 1, term.Attached())
	term.Detach(h)
	term.Destroy(h)

	assert.Zero(t, term.Attached())
	assert.Equal(t, 2, changes)
	assert.Equal(t, entity.Rect{}, term.Measure(h))
}

func TestPaint_ClipsRowsAndPadsShortLines(t *testing.T) {
	frame := []string{"....", ".."}
	Paint(frame, "ab\ncd\nef", 0, 3, 6)

	assert.Equal(t, "...ab", frame[0])
	assert.Equal(t, ".. cd", frame[1], "short lines are padded up to the column")
}
