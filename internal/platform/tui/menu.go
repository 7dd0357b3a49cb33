package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/registry"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// menuChoice is how the menu was left.
type menuChoice int

const (
	choiceNone menuChoice = iota
	choicePlay
	choiceScoreboard
	choiceQuit
)

// MenuModel picks a variant. It never ends the program itself: the
// session reads Choice after every update and moves on.
type MenuModel struct {
	items  []registry.GameInfo
	cursor int
	width  int
	height int
	keys   *KeyMapper
	choice menuChoice
}

// NewMenuModel lists every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		m.apply(m.keys.MapKeyToMenuAction(msg))
	}
	return m, nil
}

func (m *MenuModel) apply(a MenuAction) {
	n := len(m.items)
	switch a {
	case MenuActionUp, MenuActionDown:
		if n == 0 {
			return
		}
		step := 1
		if a == MenuActionUp {
			step = n - 1
		}
		m.cursor = (m.cursor + step) % n
	case MenuActionSelect:
		if n > 0 {
			m.choice = choicePlay
		}
	case MenuActionScoreboard:
		m.choice = choiceScoreboard
	case MenuActionQuit:
		m.choice = choiceQuit
	}
}

// Choice reports how the user left the menu, choiceNone while browsing.
func (m MenuModel) Choice() menuChoice { return m.choice }

// Current returns the variant under the cursor.
func (m MenuModel) Current() (registry.GameInfo, bool) {
	if len(m.items) == 0 {
		return registry.GameInfo{}, false
	}
	return m.items[m.cursor], true
}

// View centers the variant list in the window.
func (m MenuModel) View() string {
	if m.choice == choiceQuit {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("G H O S T   M A Z E"),
		"",
		"Eat the pellets, then eat every ghost.",
		"",
	}
	for i, item := range m.items {
		marker, style := "  ", lipgloss.NewStyle()
		if i == m.cursor {
			marker, style = "> ", menuCursorStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%-20s", marker, item.Title))+" "+menuDimStyle.Render(item.Description))
	}
	lines = append(lines, "", menuDimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// centerText centers text within width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
