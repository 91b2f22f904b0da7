//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package dummy implements a plaintext backend for the fancy gadgets.
// Wires carry their values in the clear so gadgets can be tested and
// profiled without any cryptography.
package dummy

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/zenkuro/swanky/fancy"
)

var (
	_ fancy.Fancy[Wire] = &Dummy{}
)

// Backend errors. They are returned wrapped in fancy client errors.
var (
	ErrNotEnoughGarblerInputs   = errors.New("not enough garbler inputs")
	ErrNotEnoughEvaluatorInputs = errors.New("not enough evaluator inputs")
)

// Wire implements a plaintext wire.
type Wire struct {
	Val uint16
	Q   uint16
}

// Modulus implements fancy.HasModulus.
func (w Wire) Modulus() uint16 {
	return w.Q
}

func (w Wire) String() string {
	return fmt.Sprintf("%d (mod %d)", w.Val, w.Q)
}

// Dummy implements the plaintext backend.
type Dummy struct {
	Verbose bool

	garblerInputs   []uint16
	evaluatorInputs []uint16
	outputs         []uint16
}

// New creates a new plaintext backend with the garbler's and
// evaluator's input values.
func New(garblerInputs, evaluatorInputs []uint16) *Dummy {
	return &Dummy{
		garblerInputs:   append([]uint16(nil), garblerInputs...),
		evaluatorInputs: append([]uint16(nil), evaluatorInputs...),
	}
}

// Debugf prints debugging message if Verbose debugging is enabled.
func (d *Dummy) Debugf(format string, a ...interface{}) {
	if !d.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// Outputs returns the values revealed with Output.
func (d *Dummy) Outputs() []uint16 {
	return append([]uint16(nil), d.outputs...)
}

func inputs(op string, values []uint16, moduli []uint16,
	notEnough error) ([]Wire, error) {

	if len(values) < len(moduli) {
		return nil, fancy.ClientError(op, errors.Wrapf(notEnough,
			"need %d, have %d", len(moduli), len(values)))
	}
	result := make([]Wire, len(moduli))
	for i, q := range moduli {
		v := values[i]
		if v >= q {
			return nil, fancy.InvalidArg(op,
				"input %d=%d out of range for modulus %d", i, v, q)
		}
		result[i] = Wire{
			Val: v,
			Q:   q,
		}
	}
	return result, nil
}

// Init implements fancy.Fancy.Init. The reusedDeltas have no meaning
// for plaintext wires and they are ignored. The input queues are only
// consumed if both sides have enough valid inputs.
func (d *Dummy) Init(garblerModuli, evaluatorModuli []uint16,
	reusedDeltas []Wire) ([]Wire, []Wire, error) {

	gb, err := inputs("init", d.garblerInputs, garblerModuli,
		ErrNotEnoughGarblerInputs)
	if err != nil {
		return nil, nil, err
	}
	ev, err := inputs("init", d.evaluatorInputs, evaluatorModuli,
		ErrNotEnoughEvaluatorInputs)
	if err != nil {
		return nil, nil, err
	}
	d.garblerInputs = d.garblerInputs[len(gb):]
	d.evaluatorInputs = d.evaluatorInputs[len(ev):]
	d.Debugf("init: garbler=%v, evaluator=%v\n", gb, ev)
	return gb, ev, nil
}

// Constant implements fancy.Fancy.Constant.
func (d *Dummy) Constant(x, q uint16) (Wire, error) {
	if q < 2 {
		return Wire{}, fancy.InvalidArg("constant", "invalid modulus %d", q)
	}
	if x >= q {
		return Wire{}, fancy.InvalidArg("constant",
			"value %d out of range for modulus %d", x, q)
	}
	return Wire{
		Val: x,
		Q:   q,
	}, nil
}

func check(op string, ws ...Wire) error {
	for _, w := range ws {
		if w.Q < 2 {
			return fancy.InvalidArg(op, "invalid modulus %d", w.Q)
		}
		if w.Val >= w.Q {
			return fancy.InvalidArg(op, "value %d out of range for modulus %d",
				w.Val, w.Q)
		}
	}
	return nil
}

// Add implements fancy.Fancy.Add.
func (d *Dummy) Add(x, y Wire) (Wire, error) {
	if err := check("add", x, y); err != nil {
		return Wire{}, err
	}
	if x.Q != y.Q {
		return Wire{}, fancy.UnequalModuli("add", x.Q, y.Q)
	}
	return Wire{
		Val: uint16((uint32(x.Val) + uint32(y.Val)) % uint32(x.Q)),
		Q:   x.Q,
	}, nil
}

// Sub implements fancy.Fancy.Sub.
func (d *Dummy) Sub(x, y Wire) (Wire, error) {
	if err := check("sub", x, y); err != nil {
		return Wire{}, err
	}
	if x.Q != y.Q {
		return Wire{}, fancy.UnequalModuli("sub", x.Q, y.Q)
	}
	return Wire{
		Val: uint16((uint32(x.Val) + uint32(x.Q) - uint32(y.Val)) %
			uint32(x.Q)),
		Q: x.Q,
	}, nil
}

// Cmul implements fancy.Fancy.Cmul.
func (d *Dummy) Cmul(x Wire, c uint16) (Wire, error) {
	if err := check("cmul", x); err != nil {
		return Wire{}, err
	}
	return Wire{
		Val: uint16(uint32(x.Val) * uint32(c) % uint32(x.Q)),
		Q:   x.Q,
	}, nil
}

// Mul implements fancy.Fancy.Mul.
func (d *Dummy) Mul(x, y Wire) (Wire, error) {
	if err := check("mul", x, y); err != nil {
		return Wire{}, err
	}
	return Wire{
		Val: uint16(uint32(x.Val) * uint32(y.Val) % uint32(x.Q)),
		Q:   x.Q,
	}, nil
}

// Proj implements fancy.Fancy.Proj.
func (d *Dummy) Proj(x Wire, q uint16, tt []uint16) (Wire, error) {
	if err := check("proj", x); err != nil {
		return Wire{}, err
	}
	if err := fancy.CheckTruthTable("proj", x.Q, q, tt); err != nil {
		return Wire{}, err
	}
	return Wire{
		Val: tt[x.Val],
		Q:   q,
	}, nil
}

// Output implements fancy.Fancy.Output.
func (d *Dummy) Output(x Wire) error {
	d.Debugf("output: %v\n", x)
	d.outputs = append(d.outputs, x.Val)
	return nil
}
