package model

type StepKind string

const (
	InputStepKind    StepKind = "input"
	VigenereStepKind StepKind = "vigenere"
	CaesarStepKind   StepKind = "caesar"
	OutputStepKind   StepKind = "output"
)

// StepInfo describes one position of a chain.
type StepInfo struct {
	Kind      StepKind
	Name      string
	Direction string
	// Config is a compact, human readable rendering of the step settings.
	Config string
	// Index is the zero based position in the chain, -1 for the input and output pseudo steps.
	Index int
}

var (
	StartStep = &StepInfo{Kind: InputStepKind, Name: "input", Index: -1}
	EndStep   = &StepInfo{Kind: OutputStepKind, Name: "output", Index: -1}
)
