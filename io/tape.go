package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tape is a line oriented console channel.
// Each input value is read from its own line of Input, and each output value
// is written on its own line to Output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt string // If set, written to Output before each input line.

	scanner *bufio.Scanner
	reader  io.Reader
}

// Line reads the next line of input.
func (tc *Tape) Line() (line string, err error) {
	if tc.scanner == nil || tc.reader != tc.Input {
		if tc.Input == nil {
			err = ErrInputClosed
			return
		}
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.reader = tc.Input
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrInputClosed
		}
		return
	}

	line = tc.scanner.Text()
	return
}

// Receive prompts for, and reads, a single value.
func (tc *Tape) Receive() (value uint16, err error) {
	if tc.Output != nil && len(tc.Prompt) > 0 {
		_, err = io.WriteString(tc.Output, tc.Prompt)
		if err != nil {
			return
		}
	}

	line, err := tc.Line()
	if err != nil {
		return
	}

	line = strings.TrimSpace(line)
	v64, err := strconv.ParseUint(line, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			err = fmt.Errorf("%w: %v", ErrInputRange, line)
		} else {
			err = fmt.Errorf("%w: %q", ErrInputInvalid, line)
		}
		return
	}

	if v64 >= WORD_LIMIT {
		err = fmt.Errorf("%w: %v", ErrInputRange, line)
		return
	}

	value = uint16(v64)
	return
}

// Send writes a value on its own line.
func (tc *Tape) Send(value uint16) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}
