// Package mbt is a model-based testing engine for stateful systems.
//
// A user describes a system under test with a command.Specification: the
// initial states of an abstract model and of the real system, and a generator
// of commands conditioned on the model state. The engine generates random
// command sequences that respect every command's precondition, replays them
// against the model and the real system in lockstep while checking
// postconditions, and shrinks failing sequences to a minimal counterexample
// that is still executable.
//
// Random sampling, structural list shrinking and property evaluation are
// delegated to github.com/leanovate/gopter.
package mbt

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"mbt/command"
)

// DefaultMaxRetries is the number of attempts made to sample an eligible
// command for a single sequence position before generation gives up and
// truncates the sequence. Override it per property with the MaxRetries
// option.
const DefaultMaxRetries = 100

// SequenceGen creates a generator of consistent command sequences for the
// provided specification.
//
// The length of a generated sequence is drawn from the size interval of the
// generation parameters, so the size knob bounds the length without fixing
// it. Each position is filled by sampling spec.Next for the model state
// accumulated so far and retry-filtering on the command's precondition, with
// at most maxRetries attempts per position. If no eligible command is found
// within the cap, generation stops early and yields the sequence built so
// far. That is a policy, not an error: a specification whose Next rarely
// proposes eligible commands simply produces shorter test cases.
func SequenceGen[M, A any](spec command.Specification[M, A], maxRetries int) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		bound := genParams.MinSize
		if genParams.MaxSize > genParams.MinSize {
			bound = genParams.MinSize + genParams.Rng.Intn(genParams.MaxSize-genParams.MinSize)
		}

		seq := make(command.Sequence[M, A], 0, bound)
		model := spec.InitialModel()
		for len(seq) < bound {
			eligible := gen.RetryUntil(spec.Next(model), func(cmd command.Command[M, A]) bool {
				return cmd.Pre(model)
			}, maxRetries)
			value, ok := eligible(genParams).Retrieve()
			if !ok {
				break
			}
			cmd := value.(command.Command[M, A])
			seq = append(seq, cmd)
			model = cmd.RunModel(model)
		}
		return gopter.NewGenResult(seq, gopter.NoShrinker)
	}
}
