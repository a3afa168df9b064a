package command

import (
	"fmt"
	"strings"
)

// A Sequence is an ordered list of commands applied to one system.
type Sequence[M, A any] []Command[M, A]

// Reports whether the sequence is consistent with respect to the provided
// initial model state: every command's precondition holds against the model
// state accumulated by replaying all preceding commands of this sequence.
//
// The replay stops at the first failing precondition, so no model transitions
// are computed beyond the point of rejection.
func (s Sequence[M, A]) Consistent(model M) bool {
	for _, cmd := range s {
		if !cmd.Pre(model) {
			return false
		}
		model = cmd.RunModel(model)
	}
	return true
}

func (s Sequence[M, A]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, cmd := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", cmd)
	}
	sb.WriteString("]")
	return sb.String()
}
