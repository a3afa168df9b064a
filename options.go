package mbt

import (
	"github.com/leanovate/gopter"
)

// Options used to configure a sequence property.
type Option interface{}

type maxRetriesOption struct {
	n int
}

// MaxRetries configures the number of sampling attempts made per sequence
// position before generation gives up on finding an eligible command.
func MaxRetries(n int) Option {
	return maxRetriesOption{n: n}
}

type commandShrinkerOption struct {
	shrinker gopter.Shrinker
}

// CommandShrinker configures a shrinker for individual commands, used when
// shrinking a failing sequence. By default commands are treated as opaque and
// only the sequence structure is shrunk.
func CommandShrinker(shrinker gopter.Shrinker) Option {
	return commandShrinkerOption{shrinker: shrinker}
}
