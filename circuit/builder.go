//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"

	"github.com/zenkuro/swanky/fancy"
)

var (
	_ fancy.Fancy[Ref] = &Builder{}
)

// Builder implements a fancy backend that records the operations as
// circuit gates.
type Builder struct {
	Verbose bool
	circ    Circuit
}

// NewBuilder creates a new circuit builder.
func NewBuilder() *Builder {
	return new(Builder)
}

// Debugf prints debugging message if Verbose debugging is enabled.
func (b *Builder) Debugf(format string, a ...interface{}) {
	if !b.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// Circuit returns the circuit recorded so far. The builder must not
// be used after this call.
func (b *Builder) Circuit() *Circuit {
	c := b.circ
	c.NumGates = len(c.Gates)
	c.NumWires = len(c.Moduli)
	return &c
}

func (b *Builder) check(op string, refs ...Ref) error {
	for _, r := range refs {
		if int(r.Wire) >= len(b.circ.Moduli) {
			return fancy.UninitializedValue(op)
		}
		if b.circ.Moduli[r.Wire] != r.Q {
			return fancy.InvalidArgMod(op, r.Q, b.circ.Moduli[r.Wire])
		}
	}
	return nil
}

func (b *Builder) gate(g Gate) Ref {
	g.Output = Wire(len(b.circ.Moduli))
	b.circ.Moduli = append(b.circ.Moduli, g.Q)
	b.circ.Gates = append(b.circ.Gates, g)
	b.circ.Stats[g.Op]++
	b.Debugf("%s\n", g)
	return Ref{
		Wire: g.Output,
		Q:    g.Q,
	}
}

// Init implements fancy.Fancy.Init. The reusedDeltas have no meaning
// for the circuit structure and they are ignored.
func (b *Builder) Init(garblerModuli, evaluatorModuli []uint16,
	reusedDeltas []Ref) ([]Ref, []Ref, error) {

	for _, ms := range [][]uint16{garblerModuli, evaluatorModuli} {
		for _, q := range ms {
			if q < 2 {
				return nil, nil, fancy.InvalidArg("init",
					"invalid modulus %d", q)
			}
		}
	}

	gb := make([]Ref, len(garblerModuli))
	for i, q := range garblerModuli {
		gb[i] = b.gate(Gate{
			Op:    GBIN,
			Q:     q,
			Index: len(b.circ.GarblerInputs),
		})
		b.circ.GarblerInputs = append(b.circ.GarblerInputs, q)
	}
	ev := make([]Ref, len(evaluatorModuli))
	for i, q := range evaluatorModuli {
		ev[i] = b.gate(Gate{
			Op:    EVIN,
			Q:     q,
			Index: len(b.circ.EvaluatorInputs),
		})
		b.circ.EvaluatorInputs = append(b.circ.EvaluatorInputs, q)
	}
	return gb, ev, nil
}

// Constant implements fancy.Fancy.Constant.
func (b *Builder) Constant(x, q uint16) (Ref, error) {
	if q < 2 {
		return Ref{}, fancy.InvalidArg("constant", "invalid modulus %d", q)
	}
	if x >= q {
		return Ref{}, fancy.InvalidArg("constant",
			"value %d out of range for modulus %d", x, q)
	}
	return b.gate(Gate{
		Op:    CONST,
		Q:     q,
		Value: x,
	}), nil
}

func (b *Builder) binary(op Operation, name string, x, y Ref) (Ref, error) {
	if err := b.check(name, x, y); err != nil {
		return Ref{}, err
	}
	if x.Q != y.Q {
		return Ref{}, fancy.UnequalModuli(name, x.Q, y.Q)
	}
	return b.gate(Gate{
		Op:     op,
		Input0: x.Wire,
		Input1: y.Wire,
		Q:      x.Q,
	}), nil
}

// Add implements fancy.Fancy.Add.
func (b *Builder) Add(x, y Ref) (Ref, error) {
	return b.binary(ADD, "add", x, y)
}

// Sub implements fancy.Fancy.Sub.
func (b *Builder) Sub(x, y Ref) (Ref, error) {
	return b.binary(SUB, "sub", x, y)
}

// Cmul implements fancy.Fancy.Cmul.
func (b *Builder) Cmul(x Ref, c uint16) (Ref, error) {
	if err := b.check("cmul", x); err != nil {
		return Ref{}, err
	}
	return b.gate(Gate{
		Op:     CMUL,
		Input0: x.Wire,
		Q:      x.Q,
		Value:  c,
	}), nil
}

// Mul implements fancy.Fancy.Mul.
func (b *Builder) Mul(x, y Ref) (Ref, error) {
	if err := b.check("mul", x, y); err != nil {
		return Ref{}, err
	}
	return b.gate(Gate{
		Op:     MUL,
		Input0: x.Wire,
		Input1: y.Wire,
		Q:      x.Q,
	}), nil
}

// Proj implements fancy.Fancy.Proj.
func (b *Builder) Proj(x Ref, q uint16, tt []uint16) (Ref, error) {
	if err := b.check("proj", x); err != nil {
		return Ref{}, err
	}
	if err := fancy.CheckTruthTable("proj", x.Q, q, tt); err != nil {
		return Ref{}, err
	}
	return b.gate(Gate{
		Op:     PROJ,
		Input0: x.Wire,
		Q:      q,
		Table:  append([]uint16(nil), tt[:x.Q]...),
	}), nil
}

// Output implements fancy.Fancy.Output.
func (b *Builder) Output(x Ref) error {
	if err := b.check("output", x); err != nil {
		return err
	}
	b.circ.Outputs = append(b.circ.Outputs, x)
	return nil
}
