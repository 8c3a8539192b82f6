package main

import (
	"fmt"

	"packsmith/cmd/packsmith/mc"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browseState int

const (
	stateList browseState = iota
	statePreview
)

var (
	styleBase = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	stylePreview = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3).
			MarginLeft(2)

	stylePreviewTitle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	styleErr = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

type browseModel struct {
	table     table.Model
	resources []*mc.Resource
	packName  string
	state     browseState
	preview   string
	previewOK bool
}

func newBrowseModel(packName string, resources []*mc.Resource) browseModel {
	columns := []table.Column{
		{Title: "KIND", Width: 12},
		{Title: "IDENTIFIER", Width: 36},
		{Title: "FILE", Width: 48},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(toRows(resources)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("99"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return browseModel{
		table:     t,
		resources: resources,
		packName:  packName,
		state:     stateList,
	}
}

func toRows(resources []*mc.Resource) []table.Row {
	rows := make([]table.Row, len(resources))
	for i, res := range resources {
		rows[i] = table.Row{res.Kind().String(), res.ID().String(), res.File()}
	}
	return rows
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateList:
		return m.updateList(msg)
	case statePreview:
		return m.updatePreview(msg)
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if idx := m.table.Cursor(); idx >= 0 && idx < len(m.resources) {
				body, err := m.resources[idx].Render()
				if err != nil {
					m.preview = err.Error()
					m.previewOK = false
				} else {
					m.preview = string(body)
					m.previewOK = true
				}
				m.state = statePreview
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m browseModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "enter":
			m.state = stateList
			return m, nil
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	title := styleTitle.Render(appName + "  [" + m.packName + "]  — declared resources")
	tableView := styleBase.Render(m.table.View())

	switch m.state {
	case statePreview:
		var name string
		if idx := m.table.Cursor(); idx >= 0 && idx < len(m.resources) {
			res := m.resources[idx]
			name = fmt.Sprintf("%s %s", res.Kind(), res.ID())
		}
		body := m.preview
		if !m.previewOK {
			body = styleErr.Render(body)
		}
		overlay := stylePreview.Render(
			stylePreviewTitle.Render(name) + "\n\n" + body,
		)
		return title + "\n" + tableView + "\n" + overlay

	default:
		help := styleHelp.Render("enter preview · q quit")
		return title + "\n" + tableView + "\n" + help
	}
}
