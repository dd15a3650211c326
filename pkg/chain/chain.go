package chain

import (
	"github.com/pkg/errors"
)

// Chain is an ordered, immutable list of steps.
// The zero value is an empty chain.
type Chain struct {
	steps []Step
}

// New creates a chain holding steps, in order.
func New(steps ...Step) Chain {
	return Chain{steps: append([]Step(nil), steps...)}
}

// Len returns the number of steps.
func (c Chain) Len() int {
	return len(c.steps)
}

// Steps returns a copy of the steps.
func (c Chain) Steps() []Step {
	return append([]Step(nil), c.steps...)
}

// At returns the step at position idx.
func (c Chain) At(idx int) (Step, error) {
	err := c.checkIndex(idx)
	if err != nil {
		return nil, err
	}

	return c.steps[idx], nil
}

// Append returns a new chain with steps added at the tail.
func (c Chain) Append(steps ...Step) Chain {
	out := make([]Step, 0, len(c.steps)+len(steps))
	out = append(out, c.steps...)
	out = append(out, steps...)

	return Chain{steps: out}
}

// Remove returns a new chain without the step at position idx.
// Following steps move up one position and keep their configuration.
func (c Chain) Remove(idx int) (Chain, error) {
	err := c.checkIndex(idx)
	if err != nil {
		return c, err
	}

	out := make([]Step, 0, len(c.steps)-1)
	out = append(out, c.steps[:idx]...)
	out = append(out, c.steps[idx+1:]...)

	return Chain{steps: out}, nil
}

// Update returns a new chain where the step at position idx is replaced by step.
func (c Chain) Update(idx int, step Step) (Chain, error) {
	err := c.checkIndex(idx)
	if err != nil {
		return c, err
	}

	out := c.Steps()
	out[idx] = step

	return Chain{steps: out}, nil
}

// Validate checks every step, reporting the first invalid one.
func (c Chain) Validate() error {
	for idx, step := range c.steps {
		if step == nil {
			return errors.Wrapf(ErrInvalidConfiguration, "step %d is nil", idx+1)
		}

		err := step.Validate()
		if err != nil {
			return errors.Wrapf(err, "step %d", idx+1)
		}
	}

	return nil
}

func (c Chain) checkIndex(idx int) error {
	if idx < 0 || idx >= len(c.steps) {
		return errors.Wrapf(ErrStepIndexOutOfRange, "index %d, chain has %d steps", idx, len(c.steps))
	}

	return nil
}
