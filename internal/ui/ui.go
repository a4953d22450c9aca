// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/litescript/ls-skyplan/internal/astro"
	"github.com/litescript/ls-skyplan/internal/ephem"
	"github.com/litescript/ls-skyplan/internal/logging"
	"github.com/litescript/ls-skyplan/internal/names"
	"github.com/litescript/ls-skyplan/internal/report"
	"github.com/litescript/ls-skyplan/internal/target"
	"github.com/litescript/ls-skyplan/internal/version"
)

// Styles for the watch view
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7B2CBF"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const lookupTimeout = 15 * time.Second

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// refreshTickMsg triggers a new resolution pass.
	refreshTickMsg time.Time

	// resolveDoneMsg carries the result of a resolution pass.
	resolveDoneMsg struct {
		snapshot *report.Snapshot
		err      error
	}

	// lookupDoneMsg carries the result of an add-by-name lookup.
	lookupDoneMsg struct {
		tgt target.FixedTarget
		err error
	}
)

// Options configures the watch UI.
type Options struct {
	Targets  []target.Target
	Observer *astro.Observer
	Provider ephem.Provider
	Resolver names.Resolver
	Refresh  time.Duration
	Log      *logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	targets  []target.Target
	obs      *astro.Observer
	provider ephem.Provider
	resolver names.Resolver
	refresh  time.Duration
	log      *logging.Logger

	// Widgets
	table       table.Model
	input       textinput.Model
	inputActive bool

	// UI state
	width  int
	height int
	ready  bool

	// Latest resolution
	snapshot    *report.Snapshot
	lastErr     error
	resolving   bool
	lastResolve time.Time
}

// New creates the root UI model. A resolution pass for the initial
// target list starts as soon as the model is run.
func New(opts Options) Model {
	if opts.Provider == nil {
		opts.Provider = ephem.NewBuiltin()
	}
	if opts.Refresh <= 0 {
		opts.Refresh = 30 * time.Second
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}

	cols, _ := tableContent(nil)
	t := table.New(table.WithColumns(cols), table.WithHeight(10))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(lipgloss.Color("39"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)
	t.Focus()

	return Model{
		targets:   opts.Targets,
		obs:       opts.Observer,
		provider:  opts.Provider,
		resolver:  opts.Resolver,
		refresh:   opts.Refresh,
		log:       opts.Log,
		table:     t,
		resolving: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		refreshTickCmd(m.refresh),
		m.resolveCmd(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputActive {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.input.Value())
				m.inputActive = false
				if query != "" {
					m.lastErr = nil
					return m, m.lookupCmd(query)
				}
				return m, nil
			case tea.KeyEsc:
				m.inputActive = false
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "a":
			m.input = textinput.New()
			m.input.Placeholder = "object name (e.g. Vega, M31)"
			m.input.Focus()
			m.inputActive = true
			return m, textinput.Blink

		case "x":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.targets) {
				// Copy so an in-flight resolve keeps its view of the list.
				tt := make([]target.Target, 0, len(m.targets)-1)
				tt = append(tt, m.targets[:idx]...)
				tt = append(tt, m.targets[idx+1:]...)
				m.targets = tt
				m.resolving = true
				return m, m.resolveCmd()
			}
			return m, nil

		case "r":
			if !m.resolving {
				m.resolving = true
				return m, m.resolveCmd()
			}
			return m, nil

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.table.SetWidth(msg.Width)
		// Header is 3 lines, footer up to 3, input 1.
		tableHeight := msg.Height - 8
		if tableHeight < 3 {
			tableHeight = 3
		}
		m.table.SetHeight(tableHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())

	case refreshTickMsg:
		cmds = append(cmds, refreshTickCmd(m.refresh))
		if !m.resolving {
			m.resolving = true
			cmds = append(cmds, m.resolveCmd())
		}

	case resolveDoneMsg:
		m.resolving = false
		m.lastResolve = time.Now()
		if msg.err != nil {
			m.lastErr = msg.err
			m.log.Error("resolve failed: %v", msg.err)
			break
		}
		m.lastErr = nil
		m.snapshot = msg.snapshot
		cols, rows := tableContent(msg.snapshot)
		m.table.SetColumns(cols)
		m.table.SetRows(rows)

	case lookupDoneMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			m.log.Warn("lookup failed: %v", msg.err)
			break
		}
		m.log.Info("added target %q", msg.tgt.Name())
		m.targets = append(m.targets, msg.tgt)
		m.resolving = true
		cmds = append(cmds, m.resolveCmd())
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.inputActive {
		b.WriteString(promptStyle.Render("Add target: ") + m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ls-skyplan"))
	b.WriteString(mutedStyle.Render("  target positions | v" + version.Version))
	b.WriteString("\n")

	if m.obs != nil {
		name := m.obs.Name
		if name == "" {
			name = "site"
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Site: %s (%.4f, %.4f)", name, m.obs.LatDeg, m.obs.LonDeg)))
	} else {
		b.WriteString(mutedStyle.Render("Site: none (geocentric)"))
	}
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case m.resolving:
		status = accentStyle.Render("resolving...")
	case !m.lastResolve.IsZero():
		countdown := m.refresh - time.Since(m.lastResolve)
		if countdown < 0 {
			countdown = 0
		}
		status = mutedStyle.Render(fmt.Sprintf("updated %s | refresh in %ds",
			m.lastResolve.UTC().Format("15:04:05"), int(countdown.Seconds())))
	default:
		status = mutedStyle.Render("waiting for first resolution...")
	}

	help := mutedStyle.Render("a: add | x: remove | r: refresh | ↑↓: navigate | q: quit")
	footer := "  " + status + "  " + mutedStyle.Render("|") + "  " + help

	if m.lastErr != nil {
		width := m.width - 4
		if width < 20 {
			width = 20
		}
		footer += "\n  " + errorStyle.Render(wordwrap.String("ERROR: "+m.lastErr.Error(), width))
	}
	return footer
}

// TargetCount reports the current number of watched targets.
func (m Model) TargetCount() int {
	return len(m.targets)
}

// tableContent builds table columns and rows from a snapshot. A nil
// snapshot yields the default equatorial columns and no rows.
func tableContent(s *report.Snapshot) ([]table.Column, []table.Row) {
	lonName, latName := "ra", "dec"
	if s != nil {
		lonName, latName = s.AxisNames[0], s.AxisNames[1]
	}

	cols := []table.Column{
		{Title: "Target", Width: 20},
		{Title: "Kind", Width: 18},
		{Title: lonName, Width: 12},
		{Title: latName, Width: 12},
		{Title: "Distance", Width: 12},
		{Title: "Drift", Width: 8},
	}
	if s == nil {
		return cols, nil
	}

	rows := make([]table.Row, 0, len(s.Rows))
	for _, r := range s.Rows {
		dist := "-"
		if r.DistanceKm != nil {
			dist = report.FormatDistance(*r.DistanceKm)
		}
		drift := "-"
		if r.DriftWindow != "" {
			drift = r.DriftWindow
		}
		rows = append(rows, table.Row{
			r.Target,
			r.Kind,
			fmt.Sprintf("%.4f", r.Angles[lonName]),
			fmt.Sprintf("%.4f", r.Angles[latName]),
			dist,
			drift,
		})
	}
	return cols, rows
}

func (m Model) resolveCmd() tea.Cmd {
	targets := m.targets
	obs := m.obs
	provider := m.provider
	return func() tea.Msg {
		if len(targets) == 0 {
			return resolveDoneMsg{}
		}
		times := []time.Time{time.Now().UTC()}
		pairs, err := target.Pairs(targets, times)
		if err != nil {
			return resolveDoneMsg{err: err}
		}
		seq, err := target.Resolve(targets, times, obs, target.WithEphemeris(provider))
		if err != nil {
			return resolveDoneMsg{err: err}
		}
		return resolveDoneMsg{snapshot: report.Build(pairs, seq, obs)}
	}
}

func (m Model) lookupCmd(query string) tea.Cmd {
	resolver := m.resolver
	return func() tea.Msg {
		if resolver == nil {
			return lookupDoneMsg{err: fmt.Errorf("no name resolver configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()
		tgt, err := target.FromName(ctx, resolver, query)
		return lookupDoneMsg{tgt: tgt, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func refreshTickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// Run starts the watch UI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
