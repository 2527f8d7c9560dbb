// Package cpu implements the Little Man Computer and its assembler.
//
// The machine has 100 memory cells of three decimal digits each, an
// accumulator, a program counter and a negative flag. Input and output are
// word queues: the input "basket" is consumed by inp, and out appends to the
// output log.
//
// The assembler is line oriented. Each line holds an optional label, an
// optional instruction with its operand, or a test directive binding a list
// of input values to the expected outputs. Labels may be referenced before
// they are defined; they are linked once the whole source has been scanned.
package cpu
