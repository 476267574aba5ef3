package domain

import "errors"

// ErrInvalidAlphabet is returned when an alphabet cannot be used to build rules.
var ErrInvalidAlphabet = errors.New("invalid alphabet")

// ErrInvalidDirection is returned when a move token is not one of L, R or N.
var ErrInvalidDirection = errors.New("invalid direction")

// ErrInvalidSymbol is returned when an encoded symbol is not exactly one character.
var ErrInvalidSymbol = errors.New("invalid symbol")
