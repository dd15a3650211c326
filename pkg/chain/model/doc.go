// Package model provides the data structures shared by the chain executor and its options.
// It defines the description of a step as seen by options, and the hooks every execution option implements.
package model
