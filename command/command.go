package command

import (
	"github.com/leanovate/gopter"
)

// A Command is a single testable operation on the system under test.
//
// It describes the operation twice: RunModel advances the pure model of the
// expected state, RunActual performs the real operation on the system under
// test. Pre decides whether the command may be selected in the current model
// state and Post checks the invariant tying the two states together after
// both transitions have been applied.
//
// M is the type of the model state, A the type of the actual system.
type Command[M, A any] interface {
	// Reports whether the command is eligible in the provided model state.
	//
	// Pre is consulted before the command is selected during generation and
	// again when shrink candidates are re-validated. It must be pure.
	Pre(model M) bool

	// Computes the model state after applying the command.
	//
	// RunModel must be pure. Model values are treated as immutable: the
	// returned state must not alias mutable parts of the input.
	RunModel(model M) M

	// Applies the command to the actual system under test.
	//
	// This is the only place where side effects are permitted. Returns the
	// handle to the system after the operation, which may be the same handle.
	RunActual(actual A) A

	// Checks the postcondition against the actual system and the model state
	// produced by RunActual and RunModel.
	//
	// Post must be pure. A nil result is treated as a passing result.
	Post(actual A, model M) *gopter.PropResult

	// A short name for the command, used in failure traces.
	String() string
}

// FuncCommand builds a Command from a record of function values.
//
// Any of the function fields may be left nil: a nil PreFunc accepts every
// model state, nil transition functions leave the state unchanged and a nil
// PostFunc always passes. This is the convenient construction path for closed
// command sets; open user-defined command types implement Command directly.
type FuncCommand[M, A any] struct {
	Name          string
	PreFunc       func(model M) bool
	RunModelFunc  func(model M) M
	RunActualFunc func(actual A) A
	PostFunc      func(actual A, model M) *gopter.PropResult
}

func (fc FuncCommand[M, A]) Pre(model M) bool {
	if fc.PreFunc == nil {
		return true
	}
	return fc.PreFunc(model)
}

func (fc FuncCommand[M, A]) RunModel(model M) M {
	if fc.RunModelFunc == nil {
		return model
	}
	return fc.RunModelFunc(model)
}

func (fc FuncCommand[M, A]) RunActual(actual A) A {
	if fc.RunActualFunc == nil {
		return actual
	}
	return fc.RunActualFunc(actual)
}

func (fc FuncCommand[M, A]) Post(actual A, model M) *gopter.PropResult {
	if fc.PostFunc == nil {
		return &gopter.PropResult{Status: gopter.PropTrue}
	}
	return fc.PostFunc(actual, model)
}

func (fc FuncCommand[M, A]) String() string {
	if fc.Name == "" {
		return "Command"
	}
	return fc.Name
}
