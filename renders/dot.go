package renders

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/tmsim/graphs"
	"github.com/reusee/tmsim/turing"
)

// DOT writes g in Graphviz format. Nodes are labeled with state and tape windows,
// edges with the transition index. Halting nodes are double circles,
// unexpanded nodes are dashed.
func DOT(w io.Writer, m *turing.Machine, g *graphs.Graph) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n", strconv.Quote(m.Name)); err != nil {
		return err
	}
	startHash := g.StartHash()
	for h, node := range g.Nodes() {
		var attrs []string
		attrs = append(attrs, "label="+strconv.Quote(dotLabel(node.Config)))
		switch {
		case !node.Expanded:
			attrs = append(attrs, "style=dashed")
		case len(node.Next) == 0:
			attrs = append(attrs, "shape=doublecircle")
		}
		if h == startHash {
			attrs = append(attrs, "penwidth=2")
		}
		if _, err := fmt.Fprintf(w, "  %q [%s];\n", h.Short(), strings.Join(attrs, ", ")); err != nil {
			return err
		}
		for _, edge := range node.Next {
			if _, err := fmt.Fprintf(w, "  %q -> %q [label=%q];\n", h.Short(), edge.To.Short(), strconv.Itoa(edge.Transition)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "}\n")
	return err
}

func dotLabel(config turing.Configuration) string {
	var b strings.Builder
	b.WriteString(string(config.State))
	for i, tape := range config.Tapes {
		fmt.Fprintf(&b, "\n%s @%d", tape.String(), config.Heads[i])
	}
	return b.String()
}
