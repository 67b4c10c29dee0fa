package die

import (
	"github.com/mcoot/pig-go/internal/dependencies/random"
	"github.com/mcoot/pig-go/internal/model"
)

// Die is a six-sided die backed by an injected random source.
// Each game owns its own Die; it is not safe for concurrent use unless the
// underlying source is.
type Die struct {
	random random.Random
}

// New creates a Die that rolls using rnd
func New(rnd random.Random) *Die {
	return &Die{random: rnd}
}

// NewSeeded creates a Die whose rolls are reproducible for the given seed
func NewSeeded(seed uint64) *Die {
	return New(random.NewSeeded(seed))
}

// Roll returns a face in [1, 6]
func (d *Die) Roll() int {
	return d.random.Intn(model.DieFaces) + 1
}
