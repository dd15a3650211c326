// Package chain applies an ordered list of cipher steps to a text.
//
// A Chain is an immutable sequence of steps. Each step is either a Vigenere or a Caesar configuration, and the
// executor dispatches on the concrete type. Adding, removing or updating a step returns a new Chain, so a chain can be
// shared freely and executed as often as needed.
//
// Execute feeds the input text to the first step, the output of the first step to the second one, and so on. It
// returns every intermediate output, in order, one per step. The whole chain is validated before the first step runs:
// an invalid chain returns an error and no result at all.
//
// ExecuteBatch runs many independent inputs through the same chain concurrently. Execution options (see the model,
// measure and drawer packages) can observe every step output, to collect timings or draw the chain.
package chain
