//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"
)

// Dot creates graphviz dot output of the circuit. Wire nodes are
// labeled with their moduli.
func (c *Circuit) Dot(out io.Writer) {
	fmt.Fprintf(out, "digraph circuit\n{\n")
	fmt.Fprintf(out, "  overlap=scale;\n")
	fmt.Fprintf(out, "  node\t[fontname=\"Helvetica\"];\n")
	fmt.Fprintf(out, "  {\n    node [shape=plaintext];\n")
	for w, q := range c.Moduli {
		fmt.Fprintf(out, "    w%d\t[label=\"%d (mod %d)\"];\n", w, w, q)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {\n    node [shape=box];\n")
	for idx, gate := range c.Gates {
		var label string
		switch gate.Op {
		case GBIN, EVIN:
			label = fmt.Sprintf("%s[%d]", gate.Op, gate.Index)
		case CONST, CMUL:
			label = fmt.Sprintf("%s %d", gate.Op, gate.Value)
		default:
			label = gate.Op.String()
		}
		fmt.Fprintf(out, "    g%d\t[label=\"%s\"];\n", idx, label)
	}
	fmt.Fprintf(out, "  }\n")

	fmt.Fprintf(out, "  {  rank=same")
	for idx, gate := range c.Gates {
		if gate.Op == GBIN || gate.Op == EVIN {
			fmt.Fprintf(out, "; g%d", idx)
		}
	}
	fmt.Fprintf(out, ";}\n")

	for idx, gate := range c.Gates {
		for _, i := range gate.Inputs() {
			fmt.Fprintf(out, "  w%d -> g%d;\n", i, idx)
		}
		fmt.Fprintf(out, "  g%d -> w%d;\n", idx, gate.Output)
	}
	for idx, o := range c.Outputs {
		fmt.Fprintf(out, "  o%d\t[shape=doublecircle,label=\"out%d\"];\n",
			idx, idx)
		fmt.Fprintf(out, "  w%d -> o%d;\n", o.Wire, idx)
	}
	fmt.Fprintf(out, "}\n")
}
