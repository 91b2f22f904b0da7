//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"github.com/zenkuro/swanky/fancy"
)

// Eval replays the circuit on the backend f with the garbler's input
// wires gb and evaluator's input wires ev. It reveals the circuit
// outputs with f.Output and returns the output wires.
func Eval[W fancy.HasModulus](c *Circuit, f fancy.Fancy[W], gb, ev []W) (
	[]W, error) {

	if len(gb) != len(c.GarblerInputs) {
		return nil, fancy.InvalidArgNum("eval", len(gb), len(c.GarblerInputs))
	}
	if len(ev) != len(c.EvaluatorInputs) {
		return nil, fancy.InvalidArgNum("eval", len(ev),
			len(c.EvaluatorInputs))
	}

	wires := make([]W, c.NumWires)
	valid := make([]bool, c.NumWires)

	get := func(w Wire) (W, error) {
		if !valid[w] {
			var zero W
			return zero, fancy.UninitializedValue("eval")
		}
		return wires[w], nil
	}

	for _, gate := range c.Gates {
		var result W
		var x, y W
		var err error

		switch gate.Op {
		case ADD, SUB, MUL:
			if y, err = get(gate.Input1); err != nil {
				return nil, err
			}
			fallthrough

		case CMUL, PROJ:
			if x, err = get(gate.Input0); err != nil {
				return nil, err
			}
		}

		switch gate.Op {
		case GBIN:
			result = gb[gate.Index]
		case EVIN:
			result = ev[gate.Index]
		case CONST:
			result, err = f.Constant(gate.Value, gate.Q)
		case ADD:
			result, err = f.Add(x, y)
		case SUB:
			result, err = f.Sub(x, y)
		case CMUL:
			result, err = f.Cmul(x, gate.Value)
		case MUL:
			result, err = f.Mul(x, y)
		case PROJ:
			result, err = f.Proj(x, gate.Q, gate.Table)
		default:
			return nil, fancy.InvalidArg("eval", "invalid gate %s", gate.Op)
		}
		if err != nil {
			return nil, err
		}
		if result.Modulus() != gate.Q {
			return nil, fancy.InvalidArgMod("eval", result.Modulus(), gate.Q)
		}
		wires[gate.Output] = result
		valid[gate.Output] = true
	}

	result := make([]W, len(c.Outputs))
	for i, o := range c.Outputs {
		w, err := get(o.Wire)
		if err != nil {
			return nil, err
		}
		if err := f.Output(w); err != nil {
			return nil, err
		}
		result[i] = w
	}
	return result, nil
}

// Run allocates the circuit inputs on the backend f and evaluates
// the circuit with Eval.
func Run[W fancy.HasModulus](c *Circuit, f fancy.Fancy[W]) ([]W, error) {
	gb, ev, err := f.Init(c.GarblerInputs, c.EvaluatorInputs, nil)
	if err != nil {
		return nil, err
	}
	return Eval(c, f, gb, ev)
}
