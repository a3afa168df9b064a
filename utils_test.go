package mbt_test

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"mbt/command"
)

// A small counter system used as fixture by the engine tests. The model is a
// plain int, the actual system a mutable struct.
type counter struct {
	value int
}

func (c *counter) add(n int) {
	c.value += n
}

func (c *counter) reset() {
	c.value = 0
}

func counterMatches(c *counter, model int) *gopter.PropResult {
	return gopter.NewPropResult(c.value == model, "counter equals model")
}

var increment = command.FuncCommand[int, *counter]{
	Name: "Increment",
	RunModelFunc: func(model int) int {
		return model + 1
	},
	RunActualFunc: func(c *counter) *counter {
		c.add(1)
		return c
	},
	PostFunc: counterMatches,
}

// Same transition on the model, but the actual system advances by two: any
// sequence containing at least one increment breaks the postcondition.
var buggyIncrement = command.FuncCommand[int, *counter]{
	Name: "Increment",
	RunModelFunc: func(model int) int {
		return model + 1
	},
	RunActualFunc: func(c *counter) *counter {
		c.add(2)
		return c
	},
	PostFunc: counterMatches,
}

var reset = command.FuncCommand[int, *counter]{
	Name: "Reset",
	PreFunc: func(model int) bool {
		return model > 3
	},
	RunModelFunc: func(int) int {
		return 0
	},
	RunActualFunc: func(c *counter) *counter {
		c.reset()
		return c
	},
	PostFunc: counterMatches,
}

type counterSpec struct{}

func (counterSpec) InitialModel() int {
	return 0
}

func (counterSpec) InitialActual() *counter {
	return &counter{}
}

func (counterSpec) Next(model int) gopter.Gen {
	return gen.OneConstOf(increment, reset)
}

type buggyCounterSpec struct {
	counterSpec
}

func (buggyCounterSpec) Next(model int) gopter.Gen {
	return gen.OneConstOf(buggyIncrement, reset)
}

// Only ever proposes Reset, which is ineligible from the initial model state.
// Generation must truncate to the empty sequence instead of failing.
type resetOnlySpec struct {
	counterSpec
}

func (resetOnlySpec) Next(model int) gopter.Gen {
	return gen.Const(reset)
}

type panickingSpec struct {
	counterSpec
}

func (panickingSpec) Next(model int) gopter.Gen {
	return gen.Const(command.FuncCommand[int, *counter]{
		Name: "Explode",
		RunActualFunc: func(c *counter) *counter {
			panic("explode command executed")
		},
	})
}
