package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crateworks/setarch/internal/collection"
	"github.com/crateworks/setarch/internal/models"
)

// keyMap defines the key bindings for the crate browser.
type keyMap struct {
	up     key.Binding
	down   key.Binding
	remove key.Binding
	quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove track"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.remove, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down},
		{k.remove, k.quit},
	}
}

var _ list.Item = trackItem{}

// trackItem wraps [models.TrackRecord] to implement [list.Item].
type trackItem struct {
	record models.TrackRecord
}

func (i trackItem) FilterValue() string { return i.record.Title() }
func (i trackItem) Title() string       { return i.record.Title() }
func (i trackItem) Description() string {
	desc := fmt.Sprintf("%s • %d BPM • %s", i.record.Kind(), i.record.Tempo(), i.record.Energy())
	if i.record.Notes().HasContent() {
		desc = fmt.Sprintf("%s • %s", desc, i.record.Notes().Text())
	}
	return desc
}

// Model represents the crate browser state.
type Model struct {
	crate  *collection.Crate
	list   list.Model
	help   help.Model
	keys   keyMap
	width  int
	height int
	status string
}

// NewModel creates a browser over the given crate. The crate stays the owner
// of its records; removals go through [collection.Crate.RemoveAt].
func NewModel(crate *collection.Crate) *Model {
	items := make([]list.Item, 0, crate.Size())
	for _, rec := range crate.Tracks() {
		items = append(items, trackItem{record: rec})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Crate"
	l.SetShowHelp(false)

	return &Model{
		crate: crate,
		list:  l,
		help:  help.New(),
		keys:  newKeyMap(),
	}
}

// Init implements [tea.Model].
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the browser state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.remove):
			return m.removeSelected()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// removeSelected drops the highlighted record from the crate and the list.
func (m *Model) removeSelected() (tea.Model, tea.Cmd) {
	index := m.list.Index()
	if m.crate.Size() == 0 {
		m.status = styles.err.Render("Nothing to remove.")
		return m, nil
	}

	title := ""
	if rec := m.crate.Track(index); rec != nil {
		title = rec.Title()
	}

	if !m.crate.RemoveAt(index) {
		m.status = styles.err.Render("Remove failed.")
		return m, nil
	}

	m.list.RemoveItem(index)
	m.status = styles.ok.Render(fmt.Sprintf("Removed %q.", title))
	return m, nil
}

// View renders the browser.
func (m *Model) View() string {
	if m.crate.Size() == 0 && len(m.list.Items()) == 0 {
		return styles.title.Render("Crate") + "\n" +
			"No tracks stored yet.\n\n" +
			m.status + "\n" +
			styles.help.Render(m.help.View(m.keys))
	}

	return m.list.View() + "\n" + m.status + "\n" + styles.help.Render(m.help.View(m.keys))
}

// Browse runs the crate browser until the user quits.
func Browse(crate *collection.Crate) error {
	p := tea.NewProgram(NewModel(crate), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run crate browser: %w", err)
	}
	return nil
}
