// Package viewer is a read-only terminal table over the transaction store.
// It keeps its own flattened copy of the data; reset reloads that copy from
// the persisted file rather than from memory.
package viewer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/example/finance-tracker/pkg/transaction"
)

// Title is shown at the top of the viewer
const Title = "Personal Finance Tracker"

const emptySearchWarning = "Please enter a search term."

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#87ceeb")).Padding(0, 1)
	tableStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#87ceeb"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d7875f"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Loader returns the persisted transactions
type Loader func() []transaction.Group

// Model is the Bubble Tea model of the viewer
type Model struct {
	load      Loader
	all       []Row
	shown     []Row
	table     table.Model
	search    textinput.Model
	searching bool
	status    string
}

// New builds a viewer over groups; load is used by reset
func New(groups []transaction.Group, load Loader, height int) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 4},
			{Title: ColumnCategory.String(), Width: 20},
			{Title: ColumnAmount.String(), Width: 12},
			{Title: ColumnType.String(), Width: 16},
			{Title: ColumnDate.String(), Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#87ceeb"))
	t.SetStyles(styles)

	search := textinput.New()
	search.Placeholder = "category, amount, type or date"
	search.Prompt = "Search: "

	m := Model{load: load, table: t, search: search}
	m.all = Flatten(groups)
	m.display(m.all)
	return m
}

// Rows returns the rows currently displayed, in display order
func (m Model) Rows() []Row {
	return append([]Row(nil), m.shown...)
}

// Status returns the current status line
func (m Model) Status() string {
	return m.status
}

// Searching reports whether the search box has focus
func (m Model) Searching() bool {
	return m.searching
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	if m.searching {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			m.leaveSearch()
			m.runSearch()
			return m, nil
		case "esc":
			m.leaveSearch()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.table.Blur()
		return m, m.search.Focus()
	case "r":
		m.reset()
		return m, nil
	case "1", "2", "3", "4":
		n, _ := strconv.Atoi(key.String())
		m.sortBy(Column(n - 1))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n\n")
	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("1-4 sort • / search • enter apply • r reset • q close"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) leaveSearch() {
	m.searching = false
	m.search.Blur()
	m.table.Focus()
}

func (m *Model) runSearch() {
	m.display(m.all)

	term := strings.TrimSpace(m.search.Value())
	if term == "" {
		m.status = emptySearchWarning
		return
	}
	m.display(Search(m.all, term))
}

func (m *Model) sortBy(c Column) {
	m.shown = SortBy(m.shown, c)
	m.table.SetRows(tableRows(m.shown))
	m.status = "Sorted by " + c.String()
}

func (m *Model) reset() {
	m.all = Flatten(m.load())
	m.display(m.all)
}

func (m *Model) display(rows []Row) {
	m.shown = Number(rows)
	m.table.SetRows(tableRows(m.shown))
	if len(m.shown) > 0 {
		m.table.SetCursor(0)
	}
	m.status = ""
}

func tableRows(rows []Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{strconv.Itoa(r.ID), r.Category, r.Amount, r.Type, r.Date})
	}
	return out
}

// Run opens the viewer full screen and blocks until it is closed
func Run(groups []transaction.Group, load Loader, height int, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(New(groups, load, height), opts...).Run()
	return err
}
