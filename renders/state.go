package renders

import (
	"fmt"
	"strings"

	"github.com/reusee/tmsim/turing"
)

// State dumps the machine together with a configuration as plain text.
func State(m *turing.Machine, config turing.Configuration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "machine: %s\n", m.Name)
	fmt.Fprintf(&b, "tapes: %d\n", m.TapeCount)
	fmt.Fprintf(&b, "blank: %q\n", string(m.Blank))
	fmt.Fprintf(&b, "start: %s\n", m.StartState)
	fmt.Fprintf(&b, "state: %s\n", config.State)
	for i, tape := range config.Tapes {
		fmt.Fprintf(&b, "tape %d: %q head %d\n", i+1, tape.String(), config.Heads[i])
	}
	b.WriteString("table:\n")
	for _, state := range m.Table.States() {
		list, _ := m.Table.Transitions(state)
		if len(list) == 0 {
			fmt.Fprintf(&b, "  %s: halting\n", state)
			continue
		}
		fmt.Fprintf(&b, "  %s:\n", state)
		for i, tr := range list {
			fmt.Fprintf(&b, "    %d: %s\n", i, tr)
		}
	}
	return b.String()
}
