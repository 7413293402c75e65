package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/remesahq/remesa/cmd/tui/internal/api"
	"github.com/remesahq/remesa/cmd/tui/internal/view"
	"github.com/remesahq/remesa/internal/config"
)

type model struct {
	client *api.Client

	currentView View

	remittancesView view.RemittancesModel
	corridorsView   view.CorridorsModel
	createView      view.CreateModel
	statsView       view.StatsModel
}

type View int

const (
	ViewMenu        View = 0
	ViewRemittances View = 1
	ViewCorridors   View = 2
	ViewCreate      View = 3
	ViewStats       View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := api.New(cfg.Client.BaseURL)

	return model{
		client:          client,
		currentView:     ViewMenu,
		remittancesView: view.NewRemittancesModel(client),
		corridorsView:   view.NewCorridorsModel(client),
		createView:      view.NewCreateModel(client),
		statsView:       view.NewStatsModel(client),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewRemittances
				m.remittancesView = view.NewRemittancesModel(m.client)

				return m, m.remittancesView.Init()
			case "2":
				m.currentView = ViewCorridors
				m.corridorsView = view.NewCorridorsModel(m.client)

				return m, m.corridorsView.Init()
			case "3":
				m.currentView = ViewCreate
				m.createView = view.NewCreateModel(m.client)

				return m, m.createView.Init()
			case "4":
				m.currentView = ViewStats
				m.statsView = view.NewStatsModel(m.client)

				return m, m.statsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewRemittances:
		var newModel tea.Model
		newModel, cmd = m.remittancesView.Update(msg)
		m.remittancesView = newModel.(view.RemittancesModel)
	case ViewCorridors:
		var newModel tea.Model
		newModel, cmd = m.corridorsView.Update(msg)
		m.corridorsView = newModel.(view.CorridorsModel)
	case ViewCreate:
		var newModel tea.Model
		newModel, cmd = m.createView.Update(msg)
		m.createView = newModel.(view.CreateModel)
	case ViewStats:
		var newModel tea.Model
		newModel, cmd = m.statsView.Update(msg)
		m.statsView = newModel.(view.StatsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Remesa TUI\n\n" +
				"1. Browse Remittances\n" +
				"2. Manage Corridors\n" +
				"3. New Remittance\n" +
				"4. Statistics\n\n" +
				"q. Quit",
		)
	case ViewRemittances:
		return m.remittancesView.View()
	case ViewCorridors:
		return m.corridorsView.View()
	case ViewCreate:
		return m.createView.View()
	case ViewStats:
		return m.statsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
