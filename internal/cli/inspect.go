package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/caliper/pkg/core/constraint"
	"github.com/matzehuels/caliper/pkg/core/view"
	"github.com/matzehuels/caliper/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <scene.toml>",
		Short: "Browse a scene's elements and constraints interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadScene(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			p := tea.NewProgram(NewInspectModel(s), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}
}

// =============================================================================
// InspectModel - Interactive scene browser
// =============================================================================

// InspectModel lists a scene's elements on the left and the constraints
// affecting the selected element on the right.
type InspectModel struct {
	Scene   *scene.Scene
	Names   []string
	Cursor  int
	Row     int
	ShowAll bool
	Height  int
	Offset  int
}

// NewInspectModel creates an inspector over s.
func NewInspectModel(s *scene.Scene) InspectModel {
	return InspectModel{
		Scene:  s,
		Names:  s.Names(),
		Height: 15,
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.Row = 0
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Names)-1 {
				m.Cursor++
				m.Row = 0
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "left", "h":
			if m.Row > 0 {
				m.Row--
			}
		case "right", "l":
			if m.Row < len(m.Constraints())-1 {
				m.Row++
			}
		case "a", "tab":
			m.ShowAll = !m.ShowAll
			m.Row = 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// Selected returns the name of the element under the cursor.
func (m InspectModel) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Names) {
		return ""
	}
	return m.Names[m.Cursor]
}

// Constraints returns what the right pane shows: every active constraint
// when ShowAll is set, otherwise those affecting the selected element.
func (m InspectModel) Constraints() []*constraint.Constraint {
	if m.ShowAll {
		return m.Scene.Constraints()
	}
	el, ok := m.Scene.Element(m.Selected())
	if !ok {
		return nil
	}
	return m.Scene.Engine.Affecting(el)
}

func (m InspectModel) View() string {
	var b strings.Builder

	title := m.Scene.Name
	if title == "" {
		title = "Scene"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ element  ←/→ constraint  a all/affecting  q quit"))
	b.WriteString("\n\n")

	cs := m.Constraints()
	right := listDimStyle.Render("no constraints")
	if len(cs) > 0 {
		right = constraintTable(cs, m.Row)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.elementList(), "  ", right))
	b.WriteString("\n\n")

	scope := "affecting " + m.Selected()
	if m.ShowAll {
		scope = "all active"
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s · %d constraints", m.Cursor+1, len(m.Names), scope, len(cs))))

	return b.String()
}

func (m InspectModel) elementList() string {
	end := min(m.Offset+m.Height, len(m.Names))

	var lines []string
	for i := m.Offset; i < end; i++ {
		name := m.Names[i]
		el, _ := m.Scene.Element(name)

		kind, depth := "view", 0
		switch e := el.(type) {
		case *view.View:
			depth = len(constraint.Ancestors(e))
		case *view.Guide:
			kind = "guide"
			depth = len(constraint.Ancestors(e))
		}

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s%-16s %s", cursor, strings.Repeat("  ", depth), name,
			listDimStyle.Render(fmt.Sprintf("%s · %d", kind, el.ConstraintStore().Len())))

		if i == m.Cursor {
			lines = append(lines, listSelectedStyle.Render(line))
		} else {
			lines = append(lines, listNormalStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}
