package mbt

import (
	"fmt"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"mbt/command"
)

// Sequence length above which a sequence is classified as long.
const maxShortSequence = 6

// ForAllSequences creates a property that holds if every generated command
// sequence replays against the system under test without breaking a
// postcondition.
//
// Generated sequences are consistent by construction. On failure the
// underlying property evaluation searches for a minimal counterexample using
// the sequence shrinker, which only ever proposes consistent candidates.
// Each executed sequence is additionally classified by length for reporting:
// empty sequences are marked trivial, sequences of up to six commands are
// labeled short and longer ones long. The labels carry no pass/fail weight.
//
// A panic raised by a command implementation during replay is converted into
// an error-status result, so it fails the property like a broken
// postcondition and the shrink search can still minimize the sequence that
// triggered it.
func ForAllSequences[M, A any](spec command.Specification[M, A], opts ...Option) gopter.Prop {
	var (
		maxRetries                      = DefaultMaxRetries
		commandShrinker gopter.Shrinker = gopter.NoShrinker
	)
	for _, opt := range opts {
		switch t := opt.(type) {
		case maxRetriesOption:
			maxRetries = t.n
		case commandShrinkerOption:
			commandShrinker = t.shrinker
		}
	}

	seqGen := SequenceGen(spec, maxRetries).WithShrinker(SequenceShrinker(spec, commandShrinker))
	return prop.ForAll1(seqGen, func(v interface{}) (interface{}, error) {
		return checkSequence(spec, v.(command.Sequence[M, A])), nil
	})
}

func checkSequence[M, A any](spec command.Specification[M, A], seq command.Sequence[M, A]) (result *gopter.PropResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &gopter.PropResult{
				Status: gopter.PropError,
				Error:  fmt.Errorf("command raised a panic: %v", r),
				Labels: []string{classifySequence(len(seq))},
			}
		}
	}()
	result = RunSequence(spec, seq)
	result.Labels = append(result.Labels, classifySequence(len(seq)))
	return result
}

func classifySequence(length int) string {
	switch {
	case length == 0:
		return "trivial"
	case length <= maxShortSequence:
		return "short sequence"
	default:
		return "long sequence"
	}
}
