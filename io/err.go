package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputClosed  = errors.New(f("input closed"))
	ErrInputInvalid = errors.New(f("input is not a number"))
	ErrInputRange   = errors.New(f("input out of range 0..999"))
)
