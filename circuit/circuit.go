//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package circuit implements arithmetic circuits over wires with
// small moduli. Circuits are recorded with the Builder backend and
// they can be computed in plaintext or replayed on any fancy backend.
package circuit

import (
	"encoding/binary"
	"fmt"

	"github.com/markkurossi/text/superscript"
	"github.com/zeebo/blake3"
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	GBIN Operation = iota
	EVIN
	CONST
	ADD
	SUB
	CMUL
	MUL
	PROJ
)

// Stats holds statistics about circuit operations.
type Stats [PROJ + 1]int

func (op Operation) String() string {
	switch op {
	case GBIN:
		return "GBIN"
	case EVIN:
		return "EVIN"
	case CONST:
		return "CONST"
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case CMUL:
		return "CMUL"
	case MUL:
		return "MUL"
	case PROJ:
		return "PROJ"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Wire specifies a wire ID.
type Wire uint32

// ID returns the wire ID as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}

// Ref references a circuit wire together with its modulus. It is the
// wire type of the Builder backend.
type Ref struct {
	Wire Wire
	Q    uint16
}

// Modulus implements fancy.HasModulus.
func (r Ref) Modulus() uint16 {
	return r.Q
}

func (r Ref) String() string {
	return r.Wire.String() + superscript.Itoa(int(r.Q))
}

// Gate specifies an arithmetic gate. The Output wire has the modulus
// Q. Value holds the constant of CONST and CMUL gates, Index the input
// position of GBIN and EVIN gates, and Table the lookup table of PROJ
// gates.
type Gate struct {
	Op     Operation
	Input0 Wire
	Input1 Wire
	Output Wire
	Q      uint16
	Value  uint16
	Index  int
	Table  []uint16
}

func (g Gate) String() string {
	switch g.Op {
	case GBIN, EVIN:
		return fmt.Sprintf("%v[%d] %v%s", g.Op, g.Index, g.Output,
			superscript.Itoa(int(g.Q)))
	case CONST, CMUL:
		return fmt.Sprintf("%v %v %d %v%s", g.Op, g.Inputs(), g.Value,
			g.Output, superscript.Itoa(int(g.Q)))
	case PROJ:
		return fmt.Sprintf("%v %v %v %v%s", g.Op, g.Inputs(), g.Table,
			g.Output, superscript.Itoa(int(g.Q)))
	default:
		return fmt.Sprintf("%v %v %v%s", g.Op, g.Inputs(), g.Output,
			superscript.Itoa(int(g.Q)))
	}
}

// Inputs returns gate input wires.
func (g Gate) Inputs() []Wire {
	switch g.Op {
	case GBIN, EVIN, CONST:
		return nil
	case ADD, SUB, MUL:
		return []Wire{g.Input0, g.Input1}
	case CMUL, PROJ:
		return []Wire{g.Input0}
	default:
		panic(fmt.Sprintf("unsupported gate type %s", g.Op))
	}
}

// Circuit specifies an arithmetic circuit. The gates are in
// topological order and Moduli holds the modulus of each wire.
type Circuit struct {
	NumGates        int
	NumWires        int
	GarblerInputs   []uint16
	EvaluatorInputs []uint16
	Outputs         []Ref
	Gates           []Gate
	Moduli          []uint16
	Stats           Stats
}

func (c *Circuit) String() string {
	var stats string

	for k := ADD; k <= PROJ; k++ {
		v := c.Stats[k]
		if len(stats) > 0 {
			stats += " "
		}
		stats += fmt.Sprintf("%s=%d", k, v)
	}
	return fmt.Sprintf("#gates=%d (%s) #w=%d", c.NumGates, stats, c.NumWires)
}

// Cost computes the number of garbled table ciphertexts of the
// circuit. Additions, subtractions, and scalar multiplications are
// free. A projection costs q-1 ciphertexts for input modulus q and a
// multiplication qx+qy-2, plus one if the moduli differ.
func (c *Circuit) Cost() int {
	var cost int
	for _, g := range c.Gates {
		switch g.Op {
		case PROJ:
			cost += int(c.Moduli[g.Input0]) - 1
		case MUL:
			qx := c.Moduli[g.Input0]
			qy := c.Moduli[g.Input1]
			cost += int(qx) + int(qy) - 2
			if qx != qy {
				cost++
			}
		}
	}
	return cost
}

// Dump prints a debug dump of the circuit.
func (c *Circuit) Dump() {
	fmt.Printf("circuit %s\n", c)
	for id, gate := range c.Gates {
		fmt.Printf("%04d\t%s\n", id, gate)
	}
	fmt.Printf("outputs %v\n", c.Outputs)
}

// Digest computes a fingerprint of the circuit. Circuits with equal
// inputs, gates, and outputs have equal digests.
func (c *Circuit) Digest() [32]byte {
	h := blake3.New()
	var buf [4]byte

	put := func(v uint32) {
		binary.BigEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	putModuli := func(ms []uint16) {
		put(uint32(len(ms)))
		for _, m := range ms {
			put(uint32(m))
		}
	}

	putModuli(c.GarblerInputs)
	putModuli(c.EvaluatorInputs)
	put(uint32(len(c.Gates)))
	for _, g := range c.Gates {
		put(uint32(g.Op))
		put(uint32(g.Input0))
		put(uint32(g.Input1))
		put(uint32(g.Output))
		put(uint32(g.Q))
		put(uint32(g.Value))
		put(uint32(g.Index))
		putModuli(g.Table)
	}
	put(uint32(len(c.Outputs)))
	for _, o := range c.Outputs {
		put(uint32(o.Wire))
		put(uint32(o.Q))
	}

	var result [32]byte
	copy(result[:], h.Sum(nil))
	return result
}
