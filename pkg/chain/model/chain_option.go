package model

import "time"

// ChainOption defines the interface for chain execution options.
type ChainOption interface {
	// New initialises the option before any step is prepared.
	New() error
	// PrepareStep runs once per step, before the chain is executed.
	PrepareStep(parentStep, step *StepInfo) error
	// OnStepOutput runs everytime a step produces its output.
	// It can be called from several go routines when a batch is executed.
	OnStepOutput(step *StepInfo, computationDuration time.Duration) error
	// Finish runs after the chain is finished.
	Finish(totalDuration time.Duration) error
}
