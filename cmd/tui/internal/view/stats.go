package view

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/remesahq/remesa/cmd/tui/internal/api"
)

type StatsModel struct {
	CommonModel
	client *api.Client

	stats   *api.Stats
	loading bool
	err     error
}

func NewStatsModel(client *api.Client) StatsModel {
	return StatsModel{
		client:  client,
		loading: true,
	}
}

func (m StatsModel) Title() string { return "Statistics" }

func (m StatsModel) ShortHelp() string {
	return "Esc: back | r: refresh"
}

func (m StatsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.stats = msg.stats

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m StatsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading statistics...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render("Network Summary")

	s := m.stats.Summary
	summary := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Remittances:      %d", s.TotalRemittances),
		fmt.Sprintf("Total volume:     %s", FormatMoney(s.TotalAmount)),
		fmt.Sprintf("Average amount:   %s", FormatMoney(s.AverageAmount)),
		fmt.Sprintf("Fees collected:   %s", FormatMoney(s.TotalFeesCollected)),
		fmt.Sprintf("Active corridors: %d", s.ActiveCorridors),
	)

	corridorHeader := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Render("By Corridor")

	blocks := []string{header, "", summary, "", corridorHeader}

	codes := make([]string, 0, len(m.stats.ByCorridor))
	for code := range m.stats.ByCorridor {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	for _, code := range codes {
		blocks = append(blocks, "", m.corridorBlock(code, m.stats.ByCorridor[code]))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, blocks...),
	)
}

func (m StatsModel) corridorBlock(code string, cs api.CorridorStats) string {
	title := fmt.Sprintf("%s  %s", activeStyle(code), cs.CorridorName)
	if !cs.IsActive {
		title += lipgloss.NewStyle().Faint(true).Render("  (inactive)")
	}

	totals := fmt.Sprintf("      %d remittances | %s total | %s fees",
		cs.TotalRemittances,
		FormatMoney(cs.TotalAmount),
		FormatMoney(cs.TotalFees),
	)

	lines := []string{title, totals}

	if breakdown := statusBreakdown(cs.ByStatus); breakdown != "" {
		lines = append(lines, "      "+breakdown)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// statusBreakdown renders counts in lifecycle order rather than
// alphabetically.
func statusBreakdown(byStatus map[string]int) string {
	order := []string{"pending", "processing", "completed", "cancelled", "failed"}

	parts := make([]string, 0, len(byStatus))

	for _, status := range order {
		if count, ok := byStatus[status]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", status, count))
		}
	}

	return strings.Join(parts, ", ")
}

// Messages

type statsLoadedMsg struct {
	stats *api.Stats
	err   error
}

func (m StatsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		stats, err := m.client.Stats(ctx)

		return statsLoadedMsg{stats: stats, err: err}
	}
}
