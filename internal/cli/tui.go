package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/anchorkit/anchorkit/pkg/document"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command for browsing a document interactively.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Browse a resolved document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := document.ImportFile(args[0])
			if err != nil {
				return err
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			model := NewElementListModel(doc.Resolve(), docLabel(doc))
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// =============================================================================
// ElementListModel - Interactive element browser
// =============================================================================

// ElementListModel is the bubbletea model for browsing resolved elements.
type ElementListModel struct {
	Title    string
	Elements []document.Resolved
	Cursor   int
	Height   int
	Offset   int
	Detail   bool
}

// NewElementListModel creates a new element list model.
func NewElementListModel(elements []document.Resolved, title string) ElementListModel {
	return ElementListModel{
		Title:    title,
		Elements: elements,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m ElementListModel) Init() tea.Cmd {
	return nil
}

func (m ElementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Elements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Elements) > 0 {
				m.Detail = !m.Detail
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ElementListModel) View() string {
	if m.Detail {
		return m.detailView()
	}
	return m.listView()
}

func (m ElementListModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Elements) {
		end = len(m.Elements)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Elements[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		parent := r.ParentID
		if parent == "" {
			parent = "—"
		}

		rows = append(rows, []string{
			cursor,
			treeLabel(r),
			defaultString(r.Kind, "box"),
			fmt.Sprintf("%.0f,%.0f", r.Rect.X, r.Rect.Y),
			fmt.Sprintf("%.0f×%.0f", r.Rect.Width, r.Rect.Height),
			parent,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Element", "Kind", "Position", "Size", "Parent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx >= len(m.Elements) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col == 5 {
				return StyleDim
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Elements))))

	return b.String()
}

func (m ElementListModel) detailView() string {
	r := m.Elements[m.Cursor]
	var b strings.Builder

	b.WriteString(StyleTitle.Render(treeLabel(r)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("⏎/esc back  q quit"))
	b.WriteString("\n\n")

	field := func(key, value string) {
		keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
		b.WriteString("  " + keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n")
	}

	field("id", r.ID)
	field("kind", defaultString(r.Kind, "box"))
	field("x", fmt.Sprintf("%g%s %s (resolved %.2f)", r.X.Value, r.X.Unit, defaultString(r.AnchorX, "left"), r.Rect.X))
	field("y", fmt.Sprintf("%g%s %s (resolved %.2f)", r.Y.Value, r.Y.Unit, defaultString(r.AnchorY, "top"), r.Rect.Y))
	field("width", fmt.Sprintf("%g%s (resolved %.2f)", r.Width.Value, r.Width.Unit, r.Rect.Width))
	field("height", fmt.Sprintf("%g%s (resolved %.2f)", r.Height.Value, r.Height.Unit, r.Rect.Height))
	field("z", fmt.Sprintf("%d", r.Z))
	if r.ParentID != "" {
		field("parent", r.ParentID)
	}

	return b.String()
}
