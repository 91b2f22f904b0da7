//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	"fmt"
	"strings"
)

// Bundle implements an ordered sequence of wires. The modulus of
// position i is the modulus of the wire i. Bundles are immutable:
// gadgets always return new bundles.
type Bundle[W HasModulus] struct {
	wires []W
}

// NewBundle creates a new bundle from the argument wires.
func NewBundle[W HasModulus](wires []W) Bundle[W] {
	ws := make([]W, len(wires))
	copy(ws, wires)
	return Bundle[W]{
		wires: ws,
	}
}

// Size returns the number of wires in the bundle.
func (b Bundle[W]) Size() int {
	return len(b.wires)
}

// Wire returns the wire i.
func (b Bundle[W]) Wire(i int) W {
	return b.wires[i]
}

// Wires returns a copy of the bundle's wires.
func (b Bundle[W]) Wires() []W {
	result := make([]W, len(b.wires))
	copy(result, b.wires)
	return result
}

// Moduli returns the moduli of the bundle's wires.
func (b Bundle[W]) Moduli() []uint16 {
	result := make([]uint16, len(b.wires))
	for i, w := range b.wires {
		result[i] = w.Modulus()
	}
	return result
}

// EqualModuli tests if the bundles have the same moduli sequences.
func (b Bundle[W]) EqualModuli(o Bundle[W]) bool {
	if len(b.wires) != len(o.wires) {
		return false
	}
	for i, w := range b.wires {
		if w.Modulus() != o.wires[i].Modulus() {
			return false
		}
	}
	return true
}

func (b Bundle[W]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i, w := range b.wires {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", w))
	}
	sb.WriteRune(']')
	return sb.String()
}
