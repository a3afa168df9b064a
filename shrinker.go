package mbt

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"mbt/command"
)

// SequenceShrinker creates a shrinker of command sequences for the provided
// specification.
//
// Structurally smaller candidates come from gopter's slice shrinker, with
// commandShrinker applied to individual elements (use gopter.NoShrinker to
// treat commands as opaque). Deleting commands can invalidate preconditions
// further down the sequence, so every candidate is re-validated by a full
// model replay from spec.InitialModel and inconsistent candidates are
// rejected outright, never truncated or repaired. Candidate order is the
// slice shrinker's order.
//
// The slice shrinker strictly decreases the candidate size on every step and
// filtering never reintroduces larger candidates, so repeated shrinking
// always reaches a fixed point.
func SequenceShrinker[M, A any](spec command.Specification[M, A], commandShrinker gopter.Shrinker) gopter.Shrinker {
	sliceShrinker := gen.SliceShrinker(commandShrinker)
	return func(v interface{}) gopter.Shrink {
		seq := v.(command.Sequence[M, A])
		return sliceShrinker(seq).Filter(func(candidate interface{}) bool {
			return candidate.(command.Sequence[M, A]).Consistent(spec.InitialModel())
		})
	}
}
