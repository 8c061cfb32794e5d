package cli

import (
	"github.com/alexanderramin/timewheel/internal/wheel"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// previewKeyMap lists the bindings shown in the preview footer.
type previewKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Write key.Binding
	Quit  key.Binding
}

func newPreviewKeyMap() previewKeyMap {
	return previewKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "turn right"),
		),
		Write: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write page"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k previewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Write, k.Quit}
}

func (k previewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// keyCode maps a terminal key press to the page key code it stands for.
// Keys with no page equivalent map to 0; they still reach the throttle.
func keyCode(msg tea.KeyMsg, keys previewKeyMap) int {
	switch {
	case key.Matches(msg, keys.Left):
		return wheel.KeyLeft
	case key.Matches(msg, keys.Right):
		return wheel.KeyRight
	}
	switch msg.Type {
	case tea.KeyUp:
		return 38
	case tea.KeyDown:
		return 40
	case tea.KeyEnter:
		return 13
	case tea.KeySpace:
		return 32
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			r := msg.Runes[0]
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			return int(r)
		}
	}
	return 0
}
