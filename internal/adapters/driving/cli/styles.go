package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared with the rest of the terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourWarning = lipgloss.Color("#F9E2AF")
	colourError   = lipgloss.Color("#F38BA8")
)

// printer styles command output when it goes to a terminal.
// Redirected output and test buffers get plain text.
type printer struct {
	styled bool

	titleStyle   lipgloss.Style
	mutedStyle   lipgloss.Style
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		styled:       isTerminal(w),
		titleStyle:   lipgloss.NewStyle().Bold(true).Foreground(colourPrimary),
		mutedStyle:   lipgloss.NewStyle().Foreground(colourMuted),
		successStyle: lipgloss.NewStyle().Bold(true).Foreground(colourSuccess),
		warningStyle: lipgloss.NewStyle().Foreground(colourWarning),
		errorStyle:   lipgloss.NewStyle().Foreground(colourError),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p *printer) title(s string) string   { return p.render(p.titleStyle, s) }
func (p *printer) muted(s string) string   { return p.render(p.mutedStyle, s) }
func (p *printer) success(s string) string { return p.render(p.successStyle, s) }
func (p *printer) warning(s string) string { return p.render(p.warningStyle, s) }
func (p *printer) failure(s string) string { return p.render(p.errorStyle, s) }
