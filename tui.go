package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"keyhook/config"
)

// TUI message types
type TriggeredMsg struct {
	Action string
	At     time.Time
}
type EnabledMsg struct{ On bool }
type ErrorMsg struct{ Text string }
type StatusMsg struct{ Text string }
type UpdateAvailableMsg struct{ Version string }
type ProfileMsg struct {
	Path     string
	Keybinds []keybindRow
	Enabled  bool
}
type tickMsg time.Time

type keybindRow struct {
	ID          string
	Combo       string
	Description string
}

const (
	maxRecent     = 8
	flashDuration = 800 * time.Millisecond
)

type tuiModel struct {
	width, height int
	now           time.Time
	backend       string
	toggleCombo   string
	profilePath   string
	enabled       bool
	keybinds      []keybindRow
	recent        []TriggeredMsg // newest first
	total         int
	lastErr       string
	status        string
	update        string

	onToggle func(bool)
	onReload func()
}

var (
	tuiProgram   *tea.Program
	tuiMu        sync.Mutex
	tuiReady     = make(chan struct{})
	tuiReadyOnce sync.Once
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	onStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	offStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	comboStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	flashStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	updateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true)
)

func newTUIModel(backend, toggleCombo string) tuiModel {
	return tuiModel{
		backend:     backend,
		toggleCombo: toggleCombo,
		enabled:     true,
		now:         time.Now(),
		onToggle:    setEnabled,
		onReload:    reloadProfile,
	}
}

func NewTUIProgram(backend, toggleCombo string) *tea.Program {
	return tea.NewProgram(newTUIModel(backend, toggleCombo), tea.WithAltScreen())
}

// startTUI runs the program in the background and waits for its first frame.
func startTUI(backend, toggleCombo string) {
	tuiMu.Lock()
	tuiProgram = NewTUIProgram(backend, toggleCombo)
	tuiMu.Unlock()

	go func() {
		if _, err := tuiProgram.Run(); err != nil {
			fmt.Printf("TUI error: %v\n", err)
			gracefulShutdown(1)
		}
		gracefulShutdown(0)
	}()

	select {
	case <-tuiReady:
	case <-time.After(2 * time.Second):
	}
}

func tuiSend(msg tea.Msg) {
	tuiMu.Lock()
	p := tuiProgram
	tuiMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func tuiRows(p *config.Profile) []keybindRow {
	var rows []keybindRow
	for _, id := range p.IDs() {
		e := p.Keybinds[id]
		if !e.Enabled {
			continue
		}
		rows = append(rows, keybindRow{ID: id, Combo: e.Key, Description: e.Description})
	}
	return rows
}

func tuiTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tuiReadyOnce.Do(func() { close(tuiReady) })

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "e":
			on := !m.enabled
			fn := m.onToggle
			if fn == nil {
				return m, nil
			}
			// callbacks send back into the program, so they run as commands
			return m, func() tea.Msg { fn(on); return nil }
		case "r":
			fn := m.onReload
			if fn == nil {
				return m, nil
			}
			return m, func() tea.Msg { fn(); return StatusMsg{Text: "profile reload requested"} }
		}

	case tickMsg:
		m.now = time.Time(msg)
		return m, tuiTick()

	case TriggeredMsg:
		m.total++
		m.recent = append([]TriggeredMsg{msg}, m.recent...)
		if len(m.recent) > maxRecent {
			m.recent = m.recent[:maxRecent]
		}

	case EnabledMsg:
		m.enabled = msg.On

	case ErrorMsg:
		m.lastErr = msg.Text

	case StatusMsg:
		m.status = msg.Text

	case UpdateAvailableMsg:
		m.update = msg.Version

	case ProfileMsg:
		m.profilePath = msg.Path
		m.keybinds = msg.Keybinds
		m.enabled = msg.Enabled
		m.lastErr = ""
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var head []string
	state := offStyle.Render("○ KEYBINDS OFF")
	if m.enabled {
		state = onStyle.Render("● KEYBINDS ON")
	}
	head = append(head, titleStyle.Render("keyhook")+"  "+state)
	head = append(head, dimStyle.Render(fmt.Sprintf("hook: %s   triggers: %d", m.backend, m.total)))
	if m.profilePath != "" {
		head = append(head, dimStyle.Render("profile: "+m.profilePath))
	}
	if m.update != "" {
		head = append(head, updateStyle.Render("update available: "+m.update+" (run: keyhook update)"))
	}

	// keybind list
	var left []string
	left = append(left, sectionStyle.Render("Keybinds"))
	if len(m.keybinds) == 0 {
		left = append(left, dimStyle.Render("(none)"))
	}
	comboW := 0
	for _, r := range m.keybinds {
		comboW = max(comboW, len(r.Combo))
	}
	for _, r := range m.keybinds {
		name := r.Description
		if name == "" {
			name = r.ID
		}
		left = append(left, comboStyle.Render(fmt.Sprintf("%-*s", comboW, r.Combo))+"  "+name)
	}

	// recent triggers
	var right []string
	right = append(right, sectionStyle.Render("Recent"))
	if len(m.recent) == 0 {
		right = append(right, dimStyle.Render("waiting for keys..."))
	}
	for i, t := range m.recent {
		line := t.At.Format("15:04:05") + "  " + t.Action
		if i == 0 && m.now.Sub(t.At) < flashDuration {
			line = flashStyle.Render(line)
		}
		right = append(right, line)
	}

	panelW := 0
	if m.width > 8 {
		panelW = (m.width - 8) / 2
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Width(panelW).Render(strings.Join(left, "\n")),
		panelStyle.Width(panelW).Render(strings.Join(right, "\n")),
	)

	var foot []string
	if m.lastErr != "" {
		for _, l := range wrapText("error: "+m.lastErr, max(m.width-2, 1)) {
			foot = append(foot, errorStyle.Render(l))
		}
	}
	if m.status != "" {
		foot = append(foot, dimStyle.Render(m.status))
	}
	foot = append(foot, helpStyle.Render(fmt.Sprintf("e toggle · r reload · q quit · %s toggles globally", m.toggleCombo)))

	return strings.Join(head, "\n") + "\n\n" + body + "\n" + strings.Join(foot, "\n")
}

func wrapText(text string, width int) []string {
	if len(text) == 0 {
		return []string{""}
	}
	if width <= 0 {
		width = 1
	}

	var lines []string
	for len(text) > width {
		// Find last space within width
		splitAt := width
		for i := width; i > 0; i-- {
			if text[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, text[:splitAt])
		text = strings.TrimLeft(text[splitAt:], " ")
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	return lines
}
