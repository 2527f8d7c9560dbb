// Package io provides console I/O channels for the Little Man Computer.
//
// A channel supplies input values on demand, when the input queue of the
// CPU runs dry, and receives every value the CPU outputs.
package io

// WORD_LIMIT is the exclusive upper bound of a channel value.
const WORD_LIMIT = 1000

// Channel defines the interface for console I/O channels.
type Channel interface {
	// Receive blocks until a single value in 0..999 is available.
	Receive() (value uint16, err error)
	// Send writes a single value to the channel.
	Send(value uint16) error
}
