package renders

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/reusee/tmsim/graphs"
	"github.com/reusee/tmsim/turing"
)

var (
	colorHead    = lipgloss.Color("#2CD7C7")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorState   = lipgloss.Color("#20B9B4")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

type styles struct {
	cell    lipgloss.Style
	head    lipgloss.Style
	state   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	warning lipgloss.Style
}

// Renderer formats configurations and graphs for a terminal.
// Without styling, the cell under a head is bracketed instead of highlighted.
type Renderer struct {
	styled bool
	styles styles
}

func New(styled bool) *Renderer {
	return &Renderer{
		styled: styled,
		styles: styles{
			cell:    lipgloss.NewStyle().Padding(0, 1),
			head:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true).Foreground(colorHead),
			state:   lipgloss.NewStyle().Bold(true).Foreground(colorState),
			muted:   lipgloss.NewStyle().Foreground(colorMuted),
			good:    lipgloss.NewStyle().Foreground(colorHead),
			bad:     lipgloss.NewStyle().Foreground(colorError),
			warning: lipgloss.NewStyle().Foreground(colorWarning),
		},
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Renderer) render(style lipgloss.Style, str string) string {
	if !r.styled {
		return str
	}
	return style.Render(str)
}

func (r *Renderer) cell(sym turing.Symbol, head bool) string {
	str := string(sym)
	if !r.styled {
		if head {
			return "[" + str + "]"
		}
		return " " + str + " "
	}
	if head {
		return r.styles.head.Render(str)
	}
	return r.styles.cell.Render(str)
}

// Tape renders the window of one tape, widened to include head.
func (r *Renderer) Tape(tape turing.Tape, head int, blank turing.Symbol) string {
	from := -len(tape.Left)
	to := len(tape.Right) - 1
	from = min(from, head)
	to = max(to, head)
	var b strings.Builder
	for pos := from; pos <= to; pos++ {
		b.WriteString(r.cell(tape.Read(pos, blank), pos == head))
	}
	return b.String()
}

// Configuration renders the state line followed by one line per tape.
func (r *Renderer) Configuration(m *turing.Machine, config turing.Configuration) string {
	var b strings.Builder
	b.WriteString(r.render(r.styles.state, string(config.State)))
	b.WriteString(" ")
	b.WriteString(r.render(r.styles.muted, config.Hash().Short()))
	b.WriteString("\n")
	for i, tape := range config.Tapes {
		fmt.Fprintf(&b, "%d: %s\n", i+1, r.Tape(tape, config.Heads[i], m.Blank))
	}
	return b.String()
}

// Determinism renders the result of turing.IsDeterministic.
func (r *Renderer) Determinism(d turing.Determinism) string {
	if d.Result {
		return r.render(r.styles.good, "deterministic") + "\n"
	}
	var b strings.Builder
	b.WriteString(r.render(r.styles.bad, "nondeterministic"))
	b.WriteString("\n")
	for _, tr := range d.Conflicts {
		b.WriteString("  ")
		b.WriteString(tr.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Graph renders a summary of g.
func (r *Renderer) Graph(g *graphs.Graph) string {
	halting := 0
	for _, node := range g.Nodes() {
		if node.Expanded && len(node.Next) == 0 {
			halting++
		}
	}
	frontier := g.Frontier()
	var b strings.Builder
	fmt.Fprintf(&b, "nodes: %d\n", g.Size())
	fmt.Fprintf(&b, "edges: %d\n", g.EdgeCount())
	fmt.Fprintf(&b, "halting: %d\n", halting)
	if frontier > 0 {
		b.WriteString(r.render(r.styles.warning, fmt.Sprintf("unexpanded: %d", frontier)))
	} else {
		b.WriteString(r.render(r.styles.good, "complete"))
	}
	b.WriteString("\n")
	return b.String()
}
