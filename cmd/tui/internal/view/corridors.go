package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/remesahq/remesa/cmd/tui/internal/api"
)

type CorridorsModel struct {
	CommonModel
	client *api.Client

	table     table.Model
	corridors []api.Corridor

	loading bool
	err     error
	status  string
}

func NewCorridorsModel(client *api.Client) CorridorsModel {
	columns := []table.Column{
		{Title: "Code", Width: 9},
		{Title: "Name", Width: 28},
		{Title: "Origin", Width: 16},
		{Title: "Destination", Width: 13},
		{Title: "Fee %", Width: 7},
		{Title: "Active", Width: 8},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return CorridorsModel{
		client:  client,
		table:   t,
		loading: true,
	}
}

func (m CorridorsModel) Title() string { return "Corridors" }

func (m CorridorsModel) ShortHelp() string {
	return "Esc: back | a: toggle active | r: refresh"
}

func (m CorridorsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m CorridorsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case corridorsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.corridors = msg.corridors
		m.refreshTable()

		return m, nil

	case corridorToggledMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			state := "deactivated"
			if msg.corridor.IsActive {
				state = "activated"
			}

			m.status = fmt.Sprintf("%s %s", msg.corridor.Code, state)
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			m.status = ""

			return m, m.loadCmd()
		case "a":
			return m.toggleSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CorridorsModel) toggleSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.corridors) {
		return m, nil
	}

	c := m.corridors[idx]

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		updated, err := m.client.SetCorridorActive(ctx, c.ID, !c.IsActive)
		if err != nil {
			return corridorToggledMsg{err: err}
		}

		return corridorToggledMsg{corridor: updated}
	}
}

func (m CorridorsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading corridors...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *CorridorsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.corridors))

	for _, c := range m.corridors {
		active := "no"
		if c.IsActive {
			active = "yes"
		}

		rows = append(rows, table.Row{
			c.Code,
			c.Name,
			c.OriginCountry,
			c.DestinationCountry,
			fmt.Sprintf("%.2f", c.BaseFeePercentage),
			active,
			FormatDate(c.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type corridorsLoadedMsg struct {
	corridors []api.Corridor
	err       error
}

type corridorToggledMsg struct {
	corridor *api.Corridor
	err      error
}

func (m CorridorsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		corridors, err := m.client.ListCorridors(ctx)

		return corridorsLoadedMsg{corridors: corridors, err: err}
	}
}
