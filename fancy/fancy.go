//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package fancy implements arithmetic garbled circuit gadgets on top
// of an abstract gate capability interface. The gadgets are written
// once against the Fancy interface and they run unchanged on any
// backend implementing it: a garbler, an evaluator, a plaintext
// simulator, a cost counter, or a circuit recorder.
//
// Integers are represented in the Chinese Remainder Theorem (CRT)
// form, as bundles of wires whose moduli are the pairwise-coprime
// factors of a composite modulus Q. Linear operations are evaluated
// elementwise. Sign, comparison, and maximum are extracted from the
// residues with the fractional mixed-radix technique without ever
// reconstructing the plaintext value.
package fancy

// HasModulus is implemented by all wire values.
type HasModulus interface {
	// Modulus returns the modulus of the wire value.
	Modulus() uint16
}

// Fancy defines the gate capabilities of a garbled circuit backend.
// The wire type W is opaque to the gadgets: they never inspect or
// compare wire values, they only pass them back to the backend.
type Fancy[W HasModulus] interface {
	// Init allocates the garbler's and evaluator's input wires with
	// the argument moduli. The reusedDeltas, if non-empty, instruct
	// the backend to reuse the wire label offsets of a previous
	// computation instead of creating fresh ones.
	Init(garblerModuli, evaluatorModuli []uint16, reusedDeltas []W) (
		[]W, []W, error)

	// Constant creates a constant wire with value x modulo q.
	Constant(x, q uint16) (W, error)

	// Add adds x and y. The moduli of x and y must be equal.
	Add(x, y W) (W, error)

	// Sub subtracts y from x. The moduli of x and y must be equal.
	Sub(x, y W) (W, error)

	// Cmul multiplies x with the public constant c.
	Cmul(x W, c uint16) (W, error)

	// Mul multiplies x and y. The result has the modulus of x.
	Mul(x, y W) (W, error)

	// Proj maps x with the public lookup table tt into a wire with
	// modulus q. The table must have x.Modulus() entries, all less
	// than q.
	Proj(x W, q uint16, tt []uint16) (W, error)

	// Output reveals the value of x.
	Output(x W) error
}

// CheckTruthTable verifies that tt is a valid projection table from
// modulus from to modulus to. Backends use it to validate Proj
// arguments.
func CheckTruthTable(op string, from, to uint16, tt []uint16) error {
	if tt == nil {
		return NoTruthTable(op)
	}
	if len(tt) < int(from) {
		return InvalidTruthTable(op, "table has %d entries, need %d",
			len(tt), from)
	}
	for i := 0; i < int(from); i++ {
		if tt[i] >= to {
			return InvalidTruthTable(op, "entry %d=%d exceeds modulus %d",
				i, tt[i], to)
		}
	}
	return nil
}
