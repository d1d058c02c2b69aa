package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"practicedesk/internal/practice"
)

// practiceItem implements list.Item for a practice card.
type practiceItem struct {
	card practice.Practice
}

func (p practiceItem) FilterValue() string { return p.card.Title }
func (p practiceItem) Title() string {
	line := fmt.Sprintf("%s  #%d", p.card.Title, p.card.ID)
	if p.card.MyRole != practice.RoleNone {
		line += fmt.Sprintf("  (%s)", p.card.MyRole)
	}
	return line
}
func (p practiceItem) Description() string {
	desc := string(p.card.Status)
	if !p.card.ScheduledAt.IsZero() {
		desc += "  " + p.card.ScheduledAt.Format("Jan 2 15:04")
	}
	return desc
}

// DashboardView lists the viewer's practice cards. It is a passive consumer
// of sync state: it refetches when its cache groups go stale and never
// mutates anything itself.
type DashboardView struct {
	list      list.Model
	Practices []practice.Practice
	spinner   spinner.Model
	loading   bool
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates an empty dashboard. Cards arrive via
// PracticesLoadedMsg.
func NewDashboardView() *DashboardView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	delegate.Styles.NormalDesc = delegate.Styles.NormalTitle

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Practices"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return &DashboardView{
		list:    l,
		spinner: s,
	}
}

// SetPractices replaces the card list.
func (d *DashboardView) SetPractices(cards []practice.Practice) {
	d.Practices = cards
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = practiceItem{c}
	}
	d.list.SetItems(items)
	d.loading = false
}

// SetLoading toggles the spinner and returns the command that drives it.
func (d *DashboardView) SetLoading(loading bool) tea.Cmd {
	d.loading = loading
	if loading {
		return d.spinner.Tick
	}
	return nil
}

// Select moves the cursor to the practice with the given id, if listed.
func (d *DashboardView) Select(practiceID int) {
	for i, c := range d.Practices {
		if c.ID == practiceID {
			d.list.Select(i)
			return
		}
	}
}

// SetSize resizes the embedded list.
func (d *DashboardView) SetSize(width, height int) {
	d.list.SetSize(width, height)
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return d.spinner.Tick
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	}
	var cmd tea.Cmd
	d.list, cmd = d.list.Update(msg)
	return d, cmd
}

// View implements View.
func (d *DashboardView) View() string {
	if d.loading && len(d.Practices) == 0 {
		return d.spinner.View() + " loading practices…"
	}
	return d.list.View()
}
