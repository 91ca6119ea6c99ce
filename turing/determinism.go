package turing

// Determinism is the result of IsDeterministic.
type Determinism struct {
	Result    bool
	Conflicts []Transition
}

// IsDeterministic looks for two transitions of one state that no tape tells apart.
// A tape tells two transitions apart only when both conditions are concrete and differ.
// Scanning stops at the first conflicting pair, so Conflicts holds at most two transitions.
func IsDeterministic(table *Table) Determinism {
	for _, state := range table.States() {
		list, _ := table.Transitions(state)
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if !distinguishable(list[i], list[j]) {
					return Determinism{
						Result:    false,
						Conflicts: []Transition{list[i], list[j]},
					}
				}
			}
		}
	}
	return Determinism{
		Result: true,
	}
}

func distinguishable(a, b Transition) bool {
	for i := range min(len(a.Condition), len(b.Condition)) {
		if a.Condition[i].Distinguishes(b.Condition[i]) {
			return true
		}
	}
	return false
}
