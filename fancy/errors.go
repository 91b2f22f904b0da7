//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	"fmt"
)

// Kind specifies the gadget error kind.
type Kind int

// Gadget error kinds.
const (
	KindUnequalModuli Kind = iota
	KindNotImplemented
	KindInvalidArg
	KindInvalidArgNum
	KindInvalidArgMod
	KindArgNotBinary
	KindNoTruthTable
	KindInvalidTruthTable
	KindUninitializedValue
	KindClient
)

var kindNames = map[Kind]string{
	KindUnequalModuli:      "unequal moduli",
	KindNotImplemented:     "not implemented",
	KindInvalidArg:         "invalid argument",
	KindInvalidArgNum:      "invalid number of args",
	KindInvalidArgMod:      "invalid mod",
	KindArgNotBinary:       "argument must be boolean",
	KindNoTruthTable:       "truth table required",
	KindInvalidTruthTable:  "invalid truth table",
	KindUninitializedValue: "uninitialized value",
	KindClient:             "client error",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{Kind %d}", int(k))
}

// Error implements gadget errors. The Kind tells which precondition
// failed; Got and Needed are set for argument count and modulus
// errors and Err holds the backend error of KindClient errors.
type Error struct {
	Kind   Kind
	Op     string
	Desc   string
	Got    int
	Needed int
	Err    error
}

// Sentinel errors for errors.Is. They match any Error of the same
// kind.
var (
	ErrUnequalModuli      = &Error{Kind: KindUnequalModuli}
	ErrNotImplemented     = &Error{Kind: KindNotImplemented}
	ErrInvalidArg         = &Error{Kind: KindInvalidArg}
	ErrInvalidArgNum      = &Error{Kind: KindInvalidArgNum}
	ErrInvalidArgMod      = &Error{Kind: KindInvalidArgMod}
	ErrArgNotBinary       = &Error{Kind: KindArgNotBinary}
	ErrNoTruthTable       = &Error{Kind: KindNoTruthTable}
	ErrInvalidTruthTable  = &Error{Kind: KindInvalidTruthTable}
	ErrUninitializedValue = &Error{Kind: KindUninitializedValue}
	ErrClient             = &Error{Kind: KindClient}
)

func (e *Error) Error() string {
	var msg string

	switch e.Kind {
	case KindInvalidArgNum:
		msg = fmt.Sprintf("invalid number of args: needed %d but got %d",
			e.Needed, e.Got)
	case KindInvalidArgMod:
		msg = fmt.Sprintf("invalid mod: got mod %d but require mod %d",
			e.Got, e.Needed)
	case KindUninitializedValue:
		msg = "uninitialized value in circuit. is the circuit topologically sorted?"
	case KindClient:
		msg = "client error"
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
	default:
		msg = e.Kind.String()
		if len(e.Desc) > 0 {
			msg += ": " + e.Desc
		}
	}
	if len(e.Op) > 0 {
		return e.Op + ": " + msg
	}
	return msg
}

// Unwrap returns the wrapped backend error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is tests if target is an Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// UnequalModuli creates an error for operands with mismatching moduli.
func UnequalModuli(op string, x, y interface{}) error {
	return &Error{
		Kind: KindUnequalModuli,
		Op:   op,
		Desc: fmt.Sprintf("%v != %v", x, y),
	}
}

// NotImplemented creates an error for unsupported operations.
func NotImplemented(op string) error {
	return &Error{
		Kind: KindNotImplemented,
		Op:   op,
	}
}

// InvalidArg creates an invalid argument error.
func InvalidArg(op, format string, a ...interface{}) error {
	return &Error{
		Kind: KindInvalidArg,
		Op:   op,
		Desc: fmt.Sprintf(format, a...),
	}
}

// InvalidArgNum creates an invalid argument count error.
func InvalidArgNum(op string, got, needed int) error {
	return &Error{
		Kind:   KindInvalidArgNum,
		Op:     op,
		Got:    got,
		Needed: needed,
	}
}

// InvalidArgMod creates an invalid argument modulus error.
func InvalidArgMod(op string, got, needed uint16) error {
	return &Error{
		Kind:   KindInvalidArgMod,
		Op:     op,
		Got:    int(got),
		Needed: int(needed),
	}
}

// ArgNotBinary creates an error for non-boolean arguments.
func ArgNotBinary(op string) error {
	return &Error{
		Kind: KindArgNotBinary,
		Op:   op,
	}
}

// NoTruthTable creates an error for a missing projection table.
func NoTruthTable(op string) error {
	return &Error{
		Kind: KindNoTruthTable,
		Op:   op,
	}
}

// InvalidTruthTable creates an error for a malformed projection table.
func InvalidTruthTable(op, format string, a ...interface{}) error {
	return &Error{
		Kind: KindInvalidTruthTable,
		Op:   op,
		Desc: fmt.Sprintf(format, a...),
	}
}

// UninitializedValue creates an error for a use of an unassigned
// wire.
func UninitializedValue(op string) error {
	return &Error{
		Kind: KindUninitializedValue,
		Op:   op,
	}
}

// ClientError wraps the backend error err. The original error
// remains reachable with errors.Is and errors.As.
func ClientError(op string, err error) error {
	return &Error{
		Kind: KindClient,
		Op:   op,
		Err:  err,
	}
}
