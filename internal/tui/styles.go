package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#8BC34A")
	muted   = lipgloss.Color("#6B7280")
	danger  = lipgloss.Color("#E53935")
	info    = lipgloss.Color("#2196F3")
	primary = lipgloss.Color("#F2F2F2")
	cyan    = lipgloss.Color("#00FFFF")
)

type styles struct {
	Title   lipgloss.Style
	Tagline lipgloss.Style
	Button  lipgloss.Style
	Ghost   lipgloss.Style
	Cube    lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Link    lipgloss.Style
	Help    lipgloss.Style
	Toasts  map[ToastKind]lipgloss.Style
}

func defaultStyles() styles {
	toast := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tagline: lipgloss.NewStyle().Foreground(primary),
		Button:  lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#101F38")).Background(accent),
		Ghost:   lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(muted),
		Cube:    lipgloss.NewStyle().Foreground(cyan),
		Section: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(muted),
		Link:    lipgloss.NewStyle().Foreground(info).Underline(true),
		Help:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Toasts: map[ToastKind]lipgloss.Style{
			ToastLoading: toast.Foreground(info),
			ToastSuccess: toast.Foreground(accent),
			ToastError:   toast.Foreground(danger),
		},
	}
}
