package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/remesahq/remesa/cmd/tui/internal/api"
)

const remittancesPerPage = 15

type RemittancesModel struct {
	CommonModel
	client *api.Client

	table table.Model
	page  *api.RemittancePage

	// Filter cycling
	statusFilterIdx int
	pageNum         int

	loading bool
	err     error
	status  string
}

var statusFilters = []string{"", "pending", "processing", "completed", "cancelled", "failed"}

var statusFilterLabels = []string{"All", "Pending", "Processing", "Completed", "Cancelled", "Failed"}

func NewRemittancesModel(client *api.Client) RemittancesModel {
	columns := []table.Column{
		{Title: "Reference", Width: 18},
		{Title: "Date", Width: 12},
		{Title: "Sender", Width: 20},
		{Title: "Corridor", Width: 9},
		{Title: "Amount", Width: 13},
		{Title: "Fee", Width: 9},
		{Title: "Status", Width: 12},
		{Title: "Exp", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(remittancesPerPage),
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

	return RemittancesModel{
		client:  client,
		table:   t,
		pageNum: 1,
		loading: true,
	}
}

func (m RemittancesModel) Title() string { return "Remittances" }

func (m RemittancesModel) ShortHelp() string {
	return "Esc: back | s: status filter | n/p: page | Enter: advance status | d: delete | r: refresh"
}

func (m RemittancesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RemittancesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case remittancesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.page = msg.page
		m.refreshTable()

		return m, nil

	case remittanceActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = msg.status
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
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % len(statusFilters)
			m.pageNum = 1

			return m, m.loadCmd()
		case "n":
			if m.page != nil && m.page.HasNext {
				m.pageNum++
				return m, m.loadCmd()
			}

			return m, nil
		case "p":
			if m.page != nil && m.page.HasPrev {
				m.pageNum--
				return m, m.loadCmd()
			}

			return m, nil
		case "enter":
			return m.advanceSelected()
		case "d":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RemittancesModel) selected() *api.Remittance {
	idx := m.table.Cursor()
	if m.page == nil || idx < 0 || idx >= len(m.page.Items) {
		return nil
	}

	return &m.page.Items[idx]
}

// nextStatus is the single forward step the TUI offers; every other
// transition needs the API directly.
func nextStatus(status string) (string, bool) {
	switch status {
	case "pending":
		return "processing", true
	case "processing":
		return "completed", true
	}

	return "", false
}

func (m RemittancesModel) advanceSelected() (tea.Model, tea.Cmd) {
	r := m.selected()
	if r == nil {
		return m, nil
	}

	next, ok := nextStatus(r.Status)
	if !ok {
		m.status = fmt.Sprintf("Cannot advance a %s remittance", r.Status)
		return m, nil
	}

	id := r.ID
	ref := r.ReferenceCode

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		if _, err := m.client.UpdateRemittanceStatus(ctx, id, next); err != nil {
			return remittanceActionMsg{err: err}
		}

		return remittanceActionMsg{status: fmt.Sprintf("%s is now %s", ref, next)}
	}
}

func (m RemittancesModel) deleteSelected() (tea.Model, tea.Cmd) {
	r := m.selected()
	if r == nil {
		return m, nil
	}

	id := r.ID
	ref := r.ReferenceCode

	return m, func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		if err := m.client.DeleteRemittance(ctx, id); err != nil {
			return remittanceActionMsg{err: err}
		}

		return remittanceActionMsg{status: fmt.Sprintf("Deleted %s", ref)}
	}
}

func (m RemittancesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading remittances...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusFilterLabels[m.statusFilterIdx]))

	footer := ""
	if m.page != nil {
		footer = fmt.Sprintf("Page %d of %d (%d total)", m.page.Page, m.page.Pages, m.page.Total)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		lipgloss.NewStyle().Faint(true).Render(footer),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *RemittancesModel) refreshTable() {
	if m.page == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.page.Items))

	for _, r := range m.page.Items {
		corridorCode := fmt.Sprintf("#%d", r.CorridorID)
		if r.Corridor != nil {
			corridorCode = r.Corridor.Code
		}

		express := ""
		if r.IsExpress {
			express = "yes"
		}

		rows = append(rows, table.Row{
			r.ReferenceCode,
			FormatDate(r.CreatedAt),
			r.SenderName,
			corridorCode,
			fmt.Sprintf("%s %s", FormatMoney(r.Amount), r.Currency),
			FormatMoney(r.Fee),
			r.Status,
			express,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type remittancesLoadedMsg struct {
	page *api.RemittancePage
	err  error
}

type remittanceActionMsg struct {
	status string
	err    error
}

func (m RemittancesModel) loadCmd() tea.Cmd {
	opts := api.ListOptions{
		Status:  statusFilters[m.statusFilterIdx],
		Page:    m.pageNum,
		PerPage: remittancesPerPage,
	}

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		page, err := m.client.ListRemittances(ctx, opts)

		return remittancesLoadedMsg{page: page, err: err}
	}
}
