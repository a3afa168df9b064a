package command

import (
	"github.com/leanovate/gopter"
)

// A Specification ties a model to a system under test.
//
// It provides the starting states of both and describes how to sample
// candidate commands for a given model state. Exactly one Specification
// governs one test property.
type Specification[M, A any] interface {
	// The initial model state. Called once per generated sequence, once per
	// replay and once per shrink-candidate validation, so it must be cheap
	// and must return equivalent values on every call.
	InitialModel() M

	// Creates the system under test in the real-world condition that
	// InitialModel represents. Called once per property evaluation; the
	// returned handle must not be shared between concurrent evaluations
	// unless the Specification itself guarantees isolation.
	InitialActual() A

	// A generator of candidate commands for the provided model state.
	//
	// The generated values must satisfy Command[M, A]. The generator does not
	// have to guarantee that Pre holds for the produced commands: eligibility
	// filtering is done by the sequence generator.
	Next(model M) gopter.Gen
}
