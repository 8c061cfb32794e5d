package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/timewheel/internal/cli/formatter"
	"github.com/alexanderramin/timewheel/internal/page"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pageWrittenMsg reports the outcome of writing the page to disk.
type pageWrittenMsg struct {
	path string
	err  error
}

// previewModel is the bubbletea Model for the interactive wheel. Key
// presses are forwarded to the page session, which throttles them.
type previewModel struct {
	session   *page.Session
	keys      previewKeyMap
	help      help.Model
	faceSize  int
	writePath string

	lastKey  int
	dropped  int
	status   string
	quitting bool
}

func newPreviewModel(sess *page.Session, writePath string, faceSize int) previewModel {
	if faceSize <= 0 {
		faceSize = formatter.DefaultFaceRadius
	}
	return previewModel{
		session:   sess,
		keys:      newPreviewKeyMap(),
		help:      help.New(),
		faceSize:  faceSize,
		writePath: writePath,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case pageWrittenMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("write failed: " + msg.err.Error())
		} else {
			m.status = formatter.StyleGreen.Render("wrote " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Write):
			return m, writePageCmd(m.session, m.writePath)
		}

		code := keyCode(msg, m.keys)
		m.lastKey = code
		if m.session.KeyDown(context.Background(), code) {
			m.status = ""
		} else {
			m.dropped++
			m.status = formatter.Dim("throttled")
		}
		return m, nil
	}
	return m, nil
}

func (m previewModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}

	rot := m.session.Rotation()
	layout := m.session.Layout()

	face := formatter.RenderWheelFace(layout, rot.Angle(), m.faceSize)
	face = strings.TrimSuffix(face, "\n")

	var b strings.Builder
	b.WriteString(formatter.RenderBox("Time wheel", face) + "\n")
	b.WriteString(formatter.RenderLegend(layout))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		formatter.Dim("transform"),
		formatter.Bold(rot.Transform()),
		formatter.Dim(fmt.Sprintf("(%+d wedges, %d dropped)", rot.Steps(), m.dropped)),
	))
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func writePageCmd(sess *page.Session, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return pageWrittenMsg{path: path, err: err}
		}
		if err := sess.Document().WriteHTML(f); err != nil {
			f.Close()
			return pageWrittenMsg{path: path, err: err}
		}
		return pageWrittenMsg{path: path, err: f.Close()}
	}
}
