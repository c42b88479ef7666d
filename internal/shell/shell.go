// Package shell is the interactive menu over an inventory.Store. It owns no
// stock state: every choice becomes one store call whose result is shown in
// the panel body.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/stockpile/internal/inventory"
	"github.com/idilsaglam/stockpile/internal/ui"
)

// Options tune the shell.
type Options struct {
	Currency string
	In       io.Reader // nil means the terminal
	Out      io.Writer // nil means stdout
}

const (
	invalidChoice = "Invalid choice. Please try again."
	farewell      = "Exiting inventory system..."
)

type action int

const (
	actAdd action = iota
	actAdjust
	actList
	actFind
	actExit
)

var menu = []struct {
	label string
	act   action
}{
	{"Add new item", actAdd},
	{"Update item quantity", actAdjust},
	{"View all items", actList},
	{"Search for item", actFind},
	{"Exit", actExit},
}

var prompts = map[action][]string{
	actAdd:    {"Enter item name: ", "Enter item price: ", "Enter item quantity: "},
	actAdjust: {"Enter item name: ", "Enter quantity change (+/-): "},
	actFind:   {"Enter item name to search: "},
}

type keyMap struct {
	Up, Down, Choose, Cancel, Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Cancel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/1-5", "choose")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea model of the menu loop.
type Model struct {
	store    *inventory.Store
	currency string

	cursor int

	// prompting
	prompting bool
	act       action
	answers   []string
	ti        textinput.Model

	body string // last rendered result or notice
	err  error  // persistence failure; ends the loop
	done bool

	help help.Model
}

// New builds the menu model over s.
func New(s *inventory.Store, currency string) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	return Model{
		store:    s,
		currency: currency,
		ti:       ti,
		help:     help.New(),
	}
}

// Err is the persistence error that stopped the loop, if any.
func (m Model) Err() error { return m.err }

// Run starts the menu and blocks until the user exits. A store I/O failure
// ends the loop and is returned.
func Run(s *inventory.Store, opt Options) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.In != nil {
		progOpts = append(progOpts, tea.WithInput(opt.In))
	}
	if opt.Out != nil {
		progOpts = append(progOpts, tea.WithOutput(opt.Out))
	} else {
		opt.Out = os.Stdout
	}
	final, err := tea.NewProgram(New(s, opt.Currency), progOpts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	fmt.Fprintln(opt.Out, farewell)
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, isKey := msg.(tea.KeyMsg)

	if m.prompting {
		if isKey {
			switch {
			case km.Type == tea.KeyCtrlC:
				return m, tea.Quit
			case key.Matches(km, keys.Cancel):
				m.prompting = false
				m.ti.Blur()
				m.body = ""
				return m, nil
			case key.Matches(km, keys.Choose):
				return m.submit()
			}
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}
	switch {
	case key.Matches(km, keys.Quit):
		m.done = true
		return m, tea.Quit
	case key.Matches(km, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(km, keys.Down):
		if m.cursor < len(menu)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(km, keys.Choose):
		return m.choose(menu[m.cursor].act)
	}

	// Any other typed input is a menu choice; only 1-5 are valid.
	if km.Type == tea.KeyRunes || km.Type == tea.KeySpace {
		if len(km.Runes) == 1 {
			if n := int(km.Runes[0] - '1'); n >= 0 && n < len(menu) {
				m.cursor = n
				return m.choose(menu[n].act)
			}
		}
		m.body = ui.Notice(false, invalidChoice)
	}
	return m, nil
}

// choose runs actions without inputs directly and starts prompting for
// the others.
func (m Model) choose(a action) (tea.Model, tea.Cmd) {
	switch a {
	case actExit:
		m.done = true
		return m, tea.Quit
	case actList:
		m.body = ui.Listing(m.store.View(), m.currency)
		return m, nil
	}
	m.act = a
	m.prompting = true
	m.answers = nil
	m.body = ""
	m.ti.SetValue("")
	m.ti.Prompt = prompts[a][0]
	return m, m.ti.Focus()
}

// submit records the current answer and either asks the next question or
// performs the action.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.answers = append(m.answers, m.ti.Value())
	m.ti.SetValue("")
	if next := len(m.answers); next < len(prompts[m.act]) {
		m.ti.Prompt = prompts[m.act][next]
		return m, nil
	}
	m.prompting = false
	m.ti.Blur()
	if err := m.perform(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// perform dispatches the collected answers to the store. Validation and
// parse failures become notices; only persistence errors are returned.
func (m *Model) perform() error {
	a := m.answers
	switch m.act {
	case actAdd:
		price, err := inventory.ParsePrice(a[1])
		if err != nil {
			m.body = ui.Notice(false, err.Error())
			return nil
		}
		qty, err := inventory.ParseQuantity(a[2])
		if err != nil {
			m.body = ui.Notice(false, err.Error())
			return nil
		}
		res, err := m.store.AddItem(a[0], price, qty)
		if err != nil {
			return err
		}
		m.body = ui.Notice(res.OK, res.Notice)

	case actAdjust:
		delta, err := inventory.ParseDelta(a[1])
		if err != nil {
			m.body = ui.Notice(false, err.Error())
			return nil
		}
		res, err := m.store.UpdateItem(a[0], delta)
		if err != nil {
			return err
		}
		m.body = ui.Notice(res.OK, res.Notice)

	case actFind:
		res := m.store.SearchItem(a[0])
		if !res.OK {
			m.body = ui.Notice(false, res.Notice)
			return nil
		}
		m.body = ui.Item(res.Item, m.currency)
	}
	return nil
}

func (m Model) View() string {
	if m.done || m.err != nil {
		return ""
	}
	t := ui.Current()

	lines := []string{t.Title.Render("Inventory Management System"), ""}
	for i, it := range menu {
		line := fmt.Sprintf("%d. %s", i+1, it.label)
		if i == m.cursor && !m.prompting {
			line = t.Selected.Render(t.Cursor + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if m.prompting {
		lines = append(lines, "", m.ti.View())
	}
	if m.body != "" {
		lines = append(lines, "", m.body)
	}
	lines = append(lines, "", t.Muted.Render(m.help.View(keys)))
	return ui.Panel([]string{strings.Join(lines, "\n")})
}
