//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Compute evaluates the circuit in plaintext with the garbler's
// inputs gb and evaluator's inputs ev. It returns the output values.
func (c *Circuit) Compute(gb, ev []uint16) ([]uint16, error) {
	if len(gb) != len(c.GarblerInputs) {
		return nil, fmt.Errorf("invalid garbler inputs: got %d, expected %d",
			len(gb), len(c.GarblerInputs))
	}
	if len(ev) != len(c.EvaluatorInputs) {
		return nil, fmt.Errorf("invalid evaluator inputs: got %d, expected %d",
			len(ev), len(c.EvaluatorInputs))
	}

	wires := make([]uint32, c.NumWires)

	for _, gate := range c.Gates {
		var result uint32
		q := uint32(gate.Q)

		switch gate.Op {
		case GBIN, EVIN:
			var v uint16
			var qi uint16
			if gate.Op == GBIN {
				v = gb[gate.Index]
				qi = c.GarblerInputs[gate.Index]
			} else {
				v = ev[gate.Index]
				qi = c.EvaluatorInputs[gate.Index]
			}
			if v >= qi {
				return nil, fmt.Errorf("%v input %d=%d out of range for modulus %d",
					gate.Op, gate.Index, v, qi)
			}
			result = uint32(v)

		case CONST:
			result = uint32(gate.Value)

		case ADD:
			result = (wires[gate.Input0] + wires[gate.Input1]) % q

		case SUB:
			result = (wires[gate.Input0] + q - wires[gate.Input1]) % q

		case CMUL:
			result = wires[gate.Input0] * uint32(gate.Value) % q

		case MUL:
			result = wires[gate.Input0] * wires[gate.Input1] % q

		case PROJ:
			result = uint32(gate.Table[wires[gate.Input0]])

		default:
			return nil, fmt.Errorf("invalid gate %s", gate.Op)
		}

		wires[gate.Output] = result
	}

	result := make([]uint16, len(c.Outputs))
	for i, o := range c.Outputs {
		result[i] = uint16(wires[o.Wire])
	}
	return result, nil
}
