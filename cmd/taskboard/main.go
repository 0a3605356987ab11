// Command taskboard hosts a pane component tree inside a bubbletea
// program: bubbletea owns the terminal and event loop, the panel tree
// owns layout and focus.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pane"
)

type task struct {
	Title string
	Done  bool
}

type model struct {
	root  *pane.GridPanel
	focus *pane.FocusManager
	theme *pane.Theme

	tasks  *pane.ListStore[task]
	list   *pane.StackPanel
	status *pane.Label

	width  int
	height int
}

func newModel() *model {
	m := &model{
		focus: pane.NewFocusManager(pane.NewBus()),
		theme: pane.ThemeDark(),
		tasks: pane.NewListStore[task](),
	}

	m.status = pane.NewLabel("n: new task, space: toggle, tab: move, q: quit").
		Color("text.muted")

	m.list = pane.NewStack("tasks", pane.Vertical)
	m.list.Border(pane.BorderRounded).Title("Tasks").Padding(1)

	m.root = pane.NewGrid("board").Rows("1*", "1").Columns("1*")
	m.root.AddItem(m.list, pane.GridProps{Row: 0, Col: 0})
	m.root.AddItem(pane.VStack(m.status), pane.GridProps{Row: 1, Col: 0})

	m.tasks.Subscribe(func(pane.ListChange[task]) { m.rebuildList() })
	m.tasks.Add(task{Title: "wire up the staging deploy"})
	m.tasks.Add(task{Title: "review the cache eviction change"})
	m.tasks.Add(task{Title: "close out the oncall handoff doc"})

	m.focus.RegisterScreen(m.root)
	return m
}

// rebuildList recreates one focusable row per task.
func (m *model) rebuildList() {
	m.list.ClearChildren()
	for i, t := range m.tasks.Items() {
		i := i
		mark := "[ ]"
		if t.Done {
			mark = "[x]"
		}
		row := pane.NewLabel(mark + " " + t.Title)
		row.Focusable(true)
		row.OnFocus = func() { m.status.SetText("task " + m.tasks.At(i).Title) }
		m.list.AddChild(row)
	}
	m.focus.RegisterScreen(m.root)
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.root.SetBounds(pane.Rect{Width: m.width, Height: m.height})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus.MoveFocus(false, true)
		case "shift+tab":
			m.focus.MoveFocus(true, true)
		case "n":
			m.tasks.Add(task{Title: fmt.Sprintf("task %d", m.tasks.Len()+1)})
		case " ":
			if i := m.focusedTask(); i >= 0 {
				m.tasks.UpdateAt(i, func(t *task) { t.Done = !t.Done })
			}
		}
	}
	return m, nil
}

// focusedTask maps the focused row back to its task index.
func (m *model) focusedTask() int {
	f := m.focus.Focused()
	if f == nil {
		return -1
	}
	for i, c := range m.list.Children() {
		if c.Node() == f.Node() {
			return i
		}
	}
	return -1
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	buf := pane.NewBuffer(m.width, m.height)
	pane.RenderTree(m.root, buf, m.theme)
	return buf.String()
}

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskboard: %v\n", err)
		os.Exit(1)
	}
}
