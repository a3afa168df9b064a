package mbt

import (
	"fmt"

	"github.com/leanovate/gopter"

	"mbt/command"
)

// RunSequence replays a command sequence against a fresh system under test
// and a fresh model in lockstep.
//
// For each command the actual and model transitions are applied, then the
// postcondition is checked against the resulting pair. The step results are
// combined by property conjunction: a failure at any step fails the whole
// replay, but every step is still executed and checked, so the report carries
// evidence from the full sequence. The empty sequence evaluates to a passing
// result.
//
// Panics raised inside command implementations are not recovered here; they
// propagate to the caller.
func RunSequence[M, A any](spec command.Specification[M, A], seq command.Sequence[M, A]) *gopter.PropResult {
	var (
		actual = spec.InitialActual()
		model  = spec.InitialModel()
	)
	result := &gopter.PropResult{Status: gopter.PropTrue}
	for i, cmd := range seq {
		actual = cmd.RunActual(actual)
		model = cmd.RunModel(model)
		stepResult := cmd.Post(actual, model)
		if stepResult == nil {
			stepResult = &gopter.PropResult{Status: gopter.PropTrue}
		}
		if !stepResult.Success() {
			stepResult.Labels = append(stepResult.Labels,
				fmt.Sprintf("post-condition broken at step %d: %v (model: %v)", i, cmd, model))
		}
		result = result.And(stepResult)
	}
	return result
}
