package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kurochkinivan/autobiz/internal/domain"
	"github.com/kurochkinivan/autobiz/internal/upload"
)

const (
	Title   = "AutoBiz.AI"
	Tagline = "Automate your business with real AI Agents: Reports, Emails, Dashboards."

	tickInterval = 80 * time.Millisecond
	angleStep    = 0.06

	cubeWidth  = 36
	cubeHeight = 14

	pickerHeight = 8
)

// CSVExtension is the only file type the picker lets through.
const CSVExtension = ".csv"

const msgNotCSV = "Only .csv files can be selected"

type Workflow interface {
	Select(ctx context.Context, file *domain.File) error
	Submit(ctx context.Context) (string, error)
	State() upload.State
}

type keyMap struct {
	Select key.Binding
	Submit key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select file")),
	Submit: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate report")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
}

type (
	tickMsg     time.Time
	selectedMsg struct{ err error }
	reportMsg   struct {
		link string
		err  error
	}
)

// Model is the upload screen: the hero with the rotating cube on top, the
// file picker with its preview and report link below.
type Model struct {
	ctx      context.Context
	workflow Workflow
	toasts   *Toasts
	picker   filepicker.Model
	styles   styles
	angle    float64
	width    int
}

// NewModel starts the file picker in dir.
func NewModel(ctx context.Context, workflow Workflow, toasts *Toasts, dir string) Model {
	picker := filepicker.New()
	picker.CurrentDirectory = dir
	picker.AllowedTypes = []string{CSVExtension}
	picker.Height = pickerHeight
	picker.AutoHeight = false

	return Model{
		ctx:      ctx,
		workflow: workflow,
		toasts:   toasts,
		picker:   picker,
		styles:   defaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.angle += angleStep
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			return m, m.submit()
		}

	case selectedMsg, reportMsg:
		// State lives in the workflow and the toasts; the next render picks it up.
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m, tea.Batch(cmd, m.selectFile(path))
	}

	if ok, _ := m.picker.DidSelectDisabledFile(msg); ok {
		m.toasts.Error(msgNotCSV)
	}

	return m, cmd
}

func (m Model) selectFile(path string) tea.Cmd {
	if path == "" {
		return nil
	}

	return func() tea.Msg {
		file, err := upload.ReadFile(path)
		if err != nil {
			m.toasts.Error("Could not open " + path)
			return selectedMsg{err: err}
		}

		return selectedMsg{err: m.workflow.Select(m.ctx, file)}
	}
}

func (m Model) submit() tea.Cmd {
	return func() tea.Msg {
		link, err := m.workflow.Submit(m.ctx)
		return reportMsg{link: link, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.heroView())
	b.WriteString("\n\n")
	b.WriteString(m.uploadView())
	b.WriteString("\n")

	if toast := m.toasts.Current(); toast.Kind != ToastNone {
		b.WriteString(m.styles.Toasts[toast.Kind].Render(toast.Message))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(strings.Join([]string{
		keys.Select.Help().Key + " " + keys.Select.Help().Desc,
		keys.Submit.Help().Key + " " + keys.Submit.Help().Desc,
		keys.Quit.Help().Key + " " + keys.Quit.Help().Desc,
	}, " | ")))

	return b.String()
}

func (m Model) heroView() string {
	text := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(Title),
		"",
		m.styles.Tagline.Render(Tagline),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Button.Render("Upload CSV"),
			"  ",
			m.styles.Ghost.Render("Talk to Agent"),
		),
	)

	cube := m.styles.Cube.Render(Cube(m.angle, cubeWidth, cubeHeight))

	if m.width > 0 && m.width < lipgloss.Width(text)+cubeWidth+4 {
		return lipgloss.JoinVertical(lipgloss.Left, text, cube)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, text, "    ", cube)
}

func (m Model) uploadView() string {
	state := m.workflow.State()

	lines := []string{
		m.styles.Label.Render("CSV file in ") + m.picker.CurrentDirectory,
		m.picker.View(),
	}

	if state.FileName != "" {
		lines = append(lines, m.styles.Label.Render("Selected: ")+state.FileName)
	}

	if len(state.Preview) > 0 {
		lines = append(lines, "", m.styles.Label.Render("Preview"), PreviewTable(state.Preview))
	}

	if state.ReportLink != "" {
		lines = append(lines, "", m.styles.Label.Render("Report: ")+m.styles.Link.Render(state.ReportLink))
	}

	return m.styles.Section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// PreviewTable renders rows with the first one as header. Short rows are
// padded so every column lines up.
func PreviewTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = append(append([]string(nil), row...), make([]string, columns-len(row))...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers(padded[0]...).
		Rows(padded[1:]...)

	return t.Render()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
