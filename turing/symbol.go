package turing

// Symbol is one cell value of a tape alphabet.
type Symbol string

// StateID names a machine state.
type StateID string
