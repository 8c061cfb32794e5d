package cli

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/timewheel/internal/clock"
	"github.com/alexanderramin/timewheel/internal/domain"
	"github.com/alexanderramin/timewheel/internal/page"
	"github.com/alexanderramin/timewheel/internal/teatest"
	"github.com/alexanderramin/timewheel/internal/wheel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func newPreviewDriver(t *testing.T, writePath string) (*teatest.Driver, *page.Session, *clock.Manual) {
	t.Helper()
	c := clock.NewManual(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	sess := page.NewSession(domain.DefaultLayout(), page.WithClock(c))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, sess.Ready(ctx))
	d := teatest.New(t, newPreviewModel(sess, writePath, 0), teatest.WithSize(100, 40))
	return d, sess, c
}

func TestPreview_ArrowsTurnWheel(t *testing.T) {
	d, sess, c := newPreviewDriver(t, "")

	d.PressRight()
	assert.Equal(t, 1, sess.Rotation().Steps())
	assert.Contains(t, stripANSI(d.View()), "rotateZ(0.26179938779914")

	c.Advance(200 * time.Millisecond)
	d.PressKey('h')
	c.Advance(200 * time.Millisecond)
	d.PressLeft()
	assert.Equal(t, -1, sess.Rotation().Steps())
	assert.Contains(t, stripANSI(d.View()), "-1 wedges")
}

func TestPreview_ThrottledPressIsDropped(t *testing.T) {
	d, sess, c := newPreviewDriver(t, "")

	d.PressRight()
	c.Advance(50 * time.Millisecond)
	d.PressRight()
	assert.Equal(t, 1, sess.Rotation().Steps())

	view := stripANSI(d.View())
	assert.Contains(t, view, "throttled")
	assert.Contains(t, view, "1 dropped")

	c.Advance(150 * time.Millisecond)
	d.PressRight()
	assert.Equal(t, 2, sess.Rotation().Steps())
	assert.NotContains(t, stripANSI(d.View()), "throttled")
}

func TestPreview_OtherKeysConsumeWindow(t *testing.T) {
	d, sess, c := newPreviewDriver(t, "")

	d.PressKey('x')
	assert.Equal(t, 88, d.Model.(previewModel).lastKey)
	c.Advance(100 * time.Millisecond)
	d.PressRight()
	assert.Equal(t, 0, sess.Rotation().Steps())
}

func TestPreview_WritePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	d, _, _ := newPreviewDriver(t, path)

	d.PressRight()
	d.PressKey('w')
	assert.Contains(t, stripANSI(d.View()), "wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotateZ(0.26179938779914")
}

func TestPreview_Quit(t *testing.T) {
	d, _, _ := newPreviewDriver(t, "")
	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Goodbye.")
}

func TestKeyCode(t *testing.T) {
	keys := newPreviewKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, wheel.KeyLeft},
		{"h", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, wheel.KeyLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, wheel.KeyRight},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, wheel.KeyRight},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, 38},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 40},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, 13},
		{"lowercase rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, 65},
		{"digit", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}}, 55},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyCode(tt.msg, keys))
		})
	}
}
