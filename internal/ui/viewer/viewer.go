// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// viewer.go - Scrollable full-screen report viewer

package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/levdiff/internal/diff"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Padding(0, 1)
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model for the report viewer.
type Model struct {
	viewport viewport.Model
	report   *diff.Report
	content  string
	ready    bool
	width    int
	height   int
}

// New creates a viewer over an already-rendered report.
func New(report *diff.Report, content string) *Model {
	return &Model{
		report:  report,
		content: content,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		vpHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

// headerView renders the title bar with the file pair and summary.
func (m *Model) headerView() string {
	title := fmt.Sprintf("%s -> %s  [%s]", m.report.NameA, m.report.NameB, m.report.Summary())
	return headerStyle.Render(title)
}

// footerView renders the key help and scroll position.
func (m *Model) footerView() string {
	scroll := fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)
	help := "↑/↓ scroll · q quit"
	gap := m.width - lipgloss.Width(scroll) - lipgloss.Width(help) - 4
	if gap < 1 {
		gap = 1
	}
	return footerStyle.Render(help + strings.Repeat(" ", gap) + scroll)
}

// =============================================================================
// ENTRY POINT
// =============================================================================

// Run opens the viewer in the alternate screen and blocks until the
// user quits.
func Run(report *diff.Report, content string) error {
	p := tea.NewProgram(New(report, content), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
