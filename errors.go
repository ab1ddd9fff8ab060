package propcalc

import (
	"errors"
	"fmt"
)

// ParseError reports a syntax error encountered while parsing a
// formula. Offset is the 0-based byte offset into the input at which
// the error was detected.
type ParseError struct {
	Msg    string
	Offset int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("propcalc: parse error at offset %d: %s", e.Offset, e.Msg)
}

// ErrOutOfRange is returned when a VarMap is read at a key it does
// not hold, or a Formula is evaluated on an assignment missing one of
// the variables it strictly needs.
var ErrOutOfRange = errors.New("propcalc: variable out of range")

// ErrFrozen is returned when a mutating Domain operation (resolving a
// new name, or unpacking a VarNr beyond the current size) is
// attempted on a frozen Domain.
var ErrFrozen = errors.New("propcalc: domain is frozen")

// ErrInvalidVarNr is returned by Domain.Unpack when asked to unpack
// the reserved, always-invalid variable number 0.
var ErrInvalidVarNr = errors.New("propcalc: invalid variable number 0")

// ConnectiveDomainMismatchError is returned when a binary connective
// is applied to two Formulas that were not built against the same
// Domain.
type ConnectiveDomainMismatchError struct {
	Op  string
	LHS Domain
	RHS Domain
}

func (e *ConnectiveDomainMismatchError) Error() string {
	return fmt.Sprintf("propcalc: %s: operands belong to different domains", e.Op)
}
