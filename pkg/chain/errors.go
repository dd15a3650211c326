package chain

import "github.com/pkg/errors"

var (
	ErrInvalidConfiguration = errors.New("invalid step configuration")
	ErrStepIndexOutOfRange  = errors.New("step index out of range")
	ErrUnknownStep          = errors.New("unknown step type")
	ErrInputsMustBeSet      = errors.New("inputs must be set")
)
