package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/sprout/pkg/genome"
	"github.com/matzehuels/sprout/pkg/genome/rewrite"
	pkgio "github.com/matzehuels/sprout/pkg/io"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// EvolveModel - Interactive descendant selection
// =============================================================================

// EvolveModel is the bubbletea model behind "sprout evolve". It shows every
// descendant of the current genome; adopting one makes it the current genome
// and lists its descendants in turn.
type EvolveModel struct {
	Lineage     []*genome.Graph      // adopted genomes, the starting genome first
	Descendants []rewrite.Descendant // descendants of the current genome
	Cursor      int
	Height      int
	Offset      int
	Aborted     bool // quit without keeping the lineage
}

// NewEvolveModel creates a model starting from g.
func NewEvolveModel(g *genome.Graph) EvolveModel {
	return EvolveModel{
		Lineage:     []*genome.Graph{g},
		Descendants: rewrite.Expand(g),
		Height:      15,
	}
}

// Current returns the most recently adopted genome.
func (m EvolveModel) Current() *genome.Graph {
	return m.Lineage[len(m.Lineage)-1]
}

// Generation returns the number of adopted descendants.
func (m EvolveModel) Generation() int {
	return len(m.Lineage) - 1
}

func (m EvolveModel) Init() tea.Cmd {
	return nil
}

func (m EvolveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Aborted = true
			return m, tea.Quit
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Descendants)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Descendants) == 0 {
				return m, nil
			}
			m = m.adopt(m.Descendants[m.Cursor].Graph)
		case "b", "backspace":
			if len(m.Lineage) > 1 {
				m = m.back()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m EvolveModel) adopt(g *genome.Graph) EvolveModel {
	m.Lineage = append(m.Lineage[:len(m.Lineage):len(m.Lineage)], g)
	m.Descendants = rewrite.Expand(g)
	m.Cursor, m.Offset = 0, 0
	return m
}

func (m EvolveModel) back() EvolveModel {
	m.Lineage = m.Lineage[:len(m.Lineage)-1]
	m.Descendants = rewrite.Expand(m.Current())
	m.Cursor, m.Offset = 0, 0
	return m
}

func (m EvolveModel) View() string {
	var b strings.Builder

	cur := m.Current()
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Generation %d", m.Generation())))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(pkgio.FormatExpr(cur)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ adopt  b back  q done  esc abort"))
	b.WriteString("\n\n")

	if len(m.Descendants) == 0 {
		b.WriteString(StyleWarning.Render("No match: every node has fewer than two neighbors"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Descendants))
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		d := m.Descendants[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			d.Match.String(),
			strconv.Itoa(int(d.Fresh)),
			strconv.Itoa(len(genome.Spine(d.Graph))),
			pkgio.FormatExpr(d.Graph),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Match", "New", "Spine", "Genome").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 4 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Descendants))))

	return b.String()
}
