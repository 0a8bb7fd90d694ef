package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem represents an action in the hub menu
type MenuItem struct {
	Key         string
	Label       string
	Description string
}

// FilterValue implements list.Item
func (m MenuItem) FilterValue() string {
	return m.Label + " " + m.Description
}

// HubContext holds library totals to display in the hub status bar.
type HubContext struct {
	BookCount    int
	OnLoanCount  int
	OverdueCount int
}

// menuItems defines the menu in logical order
var menuItems = []MenuItem{
	// Circulation
	{Key: "checkout", Label: "Checkout Books", Description: "Withdraw books for a member"},
	{Key: "return", Label: "Return Books", Description: "Take books back onto the shelf"},
	// Discovery
	{Key: "search", Label: "Search Catalog", Description: "Find books by title, author, genre or ID"},
	{Key: "recommend", Label: "Recommend Titles", Description: "Suggest books for a member"},
	// Reporting
	{Key: "loans", Label: "Member Loans", Description: "Show the books a member holds"},
	{Key: "status", Label: "Library Status", Description: "Totals, loans and overdue counts"},
	{Key: "verify", Label: "Verify Data", Description: "Cross-check catalog against the loan ledger"},
	// Exit
	{Key: "quit", Label: "Quit", Description: "Exit lendctl"},
}

// menuDelegate renders one-line menu entries with a blank line between them.
type menuDelegate struct{}

func (d menuDelegate) Height() int                             { return 1 }
func (d menuDelegate) Spacing() int                            { return 1 }
func (d menuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	menuItem, ok := item.(MenuItem)
	if !ok {
		return
	}

	label := menuItem.Label
	desc := StyleHelp.Render(menuItem.Description)
	display := fmt.Sprintf("%-18s %s", label, desc)

	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› "+display))
	} else {
		_, _ = fmt.Fprint(w, "  "+StyleNormal.Render(display))
	}
}

type hubModel struct {
	list     list.Model
	quitting bool
	action   string // which action was selected
	context  HubContext
	width    int
	height   int
}

type hubKeys struct {
	quit       key.Binding
	selectItem key.Binding
}

var hubKeyMap = hubKeys{
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	selectItem: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}

func (m hubModel) Init() tea.Cmd {
	return nil
}

func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't handle keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, hubKeyMap.quit):
			m.quitting = true
			m.action = "quit"
			return m, tea.Quit

		case key.Matches(msg, hubKeyMap.selectItem):
			if item, ok := m.list.SelectedItem().(MenuItem); ok {
				m.action = item.Key
				m.quitting = true
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Account for outer padding, inner padding, border, and header content
		const outerPaddingH = 4 * 2
		const outerPaddingV = 2 * 2
		const innerPaddingH = 1 + 2
		const headerLines = 4
		h, v := StyleBorder.GetFrameSize()

		listWidth := msg.Width - outerPaddingH - innerPaddingH - h
		listHeight := msg.Height - outerPaddingV - v - headerLines

		if listWidth < 40 {
			listWidth = 40
		}
		if listHeight < 5 {
			listHeight = 5
		}

		m.list.SetSize(listWidth, listHeight)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hubModel) View() string {
	if m.quitting {
		return ""
	}

	outerStyle := lipgloss.NewStyle().
		Padding(2, 4)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Padding(0, 1).
		Render("lendctl - Library Circulation Desk")

	var statusBar string
	if m.context.BookCount > 0 {
		status := fmt.Sprintf("  %d books · %d on loan", m.context.BookCount, m.context.OnLoanCount)
		if m.context.OverdueCount > 0 {
			status += fmt.Sprintf(" · %d overdue", m.context.OverdueCount)
		}
		statusBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Render(status)
	}

	parts := []string{header}
	if statusBar != "" {
		parts = append(parts, statusBar)
	}
	parts = append(parts, m.list.View())

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	innerPadding := lipgloss.NewStyle().
		Padding(0, 2, 0, 1)

	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(content)))
}

// RunHub launches the interactive hub menu
// Returns the selected action key, or error if canceled
func RunHub(ctx HubContext) (string, error) {
	items := make([]list.Item, 0, len(menuItems))
	for _, item := range menuItems {
		// Circulation and discovery need a catalog to act on.
		if ctx.BookCount == 0 {
			switch item.Key {
			case "checkout", "return", "search", "recommend", "loans":
				continue
			}
		}
		items = append(items, item)
	}

	l := list.New(items, menuDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = StyleHelp

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{hubKeyMap.selectItem}
	}

	m := hubModel{
		list:    l,
		context: ctx,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running hub: %w", err)
	}

	fm, ok := finalModel.(hubModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}

	return fm.action, nil
}
