package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/remesahq/remesa/cmd/tui/internal/api"
)

type createState int

const (
	createStateLoading createState = iota
	createStateForm
	createStateSubmitting
	createStateResult
)

type CreateModel struct {
	CommonModel
	client *api.Client

	state     createState
	corridors []api.Corridor
	form      *huh.Form
	spinner   spinner.Model

	created *api.Remittance
	err     error
}

func NewCreateModel(client *api.Client) CreateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return CreateModel{
		client:  client,
		state:   createStateLoading,
		spinner: s,
	}
}

func (m CreateModel) Title() string { return "New Remittance" }

func (m CreateModel) ShortHelp() string {
	switch m.state {
	case createStateResult:
		return "Esc: create another"
	case createStateSubmitting:
		return "Submitting..."
	}

	return "Navigate form | Esc: back"
}

func (m CreateModel) Init() tea.Cmd {
	return m.loadCorridorsCmd()
}

func (m CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createCorridorsMsg:
		if msg.err != nil {
			m.state = createStateResult
			m.err = msg.err

			return m, nil
		}

		m.corridors = msg.corridors
		m.form = m.buildForm()
		m.state = createStateForm

		return m, m.form.Init()

	case createResultMsg:
		m.state = createStateResult
		m.created = msg.remittance
		m.err = msg.err

		return m, nil
	}

	switch m.state {
	case createStateForm:
		return m.updateForm(msg)
	case createStateSubmitting:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case createStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			if len(m.corridors) == 0 {
				return m, Back
			}

			m.err = nil
			m.created = nil
			m.form = m.buildForm()
			m.state = createStateForm

			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m CreateModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = createStateSubmitting

	return m, tea.Batch(m.spinner.Tick, m.submitCmd())
}

func (m CreateModel) buildForm() *huh.Form {
	corridorOptions := make([]huh.Option[int], 0, len(m.corridors))

	for _, c := range m.corridors {
		if !c.IsActive {
			continue
		}

		label := fmt.Sprintf("%s  %s (%.2f%%)", c.Code, c.Name, c.BaseFeePercentage)
		corridorOptions = append(corridorOptions, huh.NewOption(label, c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Key("corridor").
				Title("Corridor").
				Options(corridorOptions...),

			huh.NewInput().
				Key("sender").
				Title("Sender Name").
				Validate(validateName),

			huh.NewInput().
				Key("recipient").
				Title("Recipient Name").
				Validate(validateName),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Placeholder("500.00").
				Validate(validatePositiveNumber),

			huh.NewSelect[string]().
				Key("currency").
				Title("Currency").
				Options(
					huh.NewOption("USD", "USD"),
					huh.NewOption("EUR", "EUR"),
					huh.NewOption("GBP", "GBP"),
				),

			huh.NewInput().
				Key("exchange_rate").
				Title("Exchange Rate").
				Placeholder("17.45").
				Validate(validatePositiveNumber),

			huh.NewSelect[string]().
				Key("payment_method").
				Title("Payment Method").
				Options(
					huh.NewOption("Bank Transfer", "bank_transfer"),
					huh.NewOption("Cash", "cash"),
					huh.NewOption("Mobile Wallet", "mobile_wallet"),
					huh.NewOption("Debit Card", "debit_card"),
				),

			huh.NewConfirm().
				Key("express").
				Title("Express Transfer?"),
		),
	).WithWidth(50).WithShowHelp(false)
}

func validateName(s string) error {
	if len(strings.TrimSpace(s)) < 2 {
		return fmt.Errorf("must be at least 2 characters")
	}

	return nil
}

func validatePositiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}

	if v <= 0 {
		return fmt.Errorf("must be greater than 0")
	}

	return nil
}

func (m CreateModel) View() string {
	switch m.state {
	case createStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading corridors...")

	case createStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case createStateSubmitting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Creating remittance...", m.spinner.View()),
		)

	case createStateResult:
		return m.viewResult()
	}

	return ""
}

func (m CreateModel) viewResult() string {
	style := lipgloss.NewStyle().Padding(2)

	if m.err != nil {
		return style.Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Error: %v", m.err)) +
				"\n\n(Esc to go back)",
		)
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("46")).
		Render(fmt.Sprintf("Created %s", m.created.ReferenceCode))

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		fmt.Sprintf("Amount: %s %s", FormatMoney(m.created.Amount), m.created.Currency),
		fmt.Sprintf("Fee:    %s %s", FormatMoney(m.created.Fee), m.created.Currency),
		fmt.Sprintf("Status: %s", m.created.Status),
		"",
		"(Esc to create another)",
	))
}

// Messages

type createCorridorsMsg struct {
	corridors []api.Corridor
	err       error
}

type createResultMsg struct {
	remittance *api.Remittance
	err        error
}

func (m CreateModel) loadCorridorsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		corridors, err := m.client.ListCorridors(ctx)

		return createCorridorsMsg{corridors: corridors, err: err}
	}
}

func (m CreateModel) submitCmd() tea.Cmd {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("amount")), 64)
	rate, _ := strconv.ParseFloat(strings.TrimSpace(m.form.GetString("exchange_rate")), 64)

	params := api.CreateRemittanceParams{
		SenderName:    strings.TrimSpace(m.form.GetString("sender")),
		RecipientName: strings.TrimSpace(m.form.GetString("recipient")),
		CorridorID:    m.form.GetInt("corridor"),
		Amount:        amount,
		Currency:      m.form.GetString("currency"),
		ExchangeRate:  rate,
		PaymentMethod: m.form.GetString("payment_method"),
		IsExpress:     m.form.GetBool("express"),
	}

	return func() tea.Msg {
		ctx, cancel := ApiCtx()
		defer cancel()

		remittance, err := m.client.CreateRemittance(ctx, params)

		return createResultMsg{remittance: remittance, err: err}
	}
}
