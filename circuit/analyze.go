//
// Copyright (c) 2021-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Finding describes a potential optimization of the circuit.
type Finding struct {
	Gate int
	Desc string
	// Savings is the number of ciphertexts the optimization saves.
	Savings int
}

func (f Finding) String() string {
	return fmt.Sprintf("g%d: %s (-%d)", f.Gate, f.Desc, f.Savings)
}

// Analyze identifies potential optimizations for the circuit:
// projections that are the single consumer of another projection can
// be fused into one table, and projections of constants can be
// replaced with constants.
func (c *Circuit) Analyze() []Finding {
	from := make([]int, c.NumWires)
	to := make([]int, c.NumWires)
	for i := range from {
		from[i] = -1
	}

	for idx, g := range c.Gates {
		for _, i := range g.Inputs() {
			to[i]++
		}
		from[g.Output] = idx
	}
	for _, o := range c.Outputs {
		to[o.Wire]++
	}

	var result []Finding
	for idx, g := range c.Gates {
		if g.Op != PROJ {
			continue
		}
		src := from[g.Input0]
		if src < 0 {
			continue
		}
		switch c.Gates[src].Op {
		case CONST:
			result = append(result, Finding{
				Gate:    idx,
				Desc:    "projection of constant",
				Savings: int(c.Moduli[g.Input0]) - 1,
			})
		case PROJ:
			if to[g.Input0] == 1 {
				result = append(result, Finding{
					Gate:    idx,
					Desc:    fmt.Sprintf("fuse with g%d", src),
					Savings: int(c.Moduli[g.Input0]) - 1,
				})
			}
		}
	}
	return result
}

// PrintAnalysis prints the Analyze findings to out.
func (c *Circuit) PrintAnalysis(out io.Writer) {
	fmt.Fprintf(out, "analyzing circuit %v\n", c)
	var savings int
	for _, f := range c.Analyze() {
		fmt.Fprintf(out, "%v\n", f)
		savings += f.Savings
	}
	fmt.Fprintf(out, "cost %d, potential savings %d\n", c.Cost(), savings)
}
