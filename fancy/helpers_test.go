//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy_test

import (
	"testing"

	"github.com/zenkuro/swanky/dummy"
	"github.com/zenkuro/swanky/fancy"
	"github.com/zenkuro/swanky/pkg/math"
)

type harness struct {
	t *testing.T
	d *dummy.Dummy
	g *fancy.Gadgets[dummy.Wire]
}

// crtInputs creates a plaintext backend with the garbler's CRT inputs
// values under the composite modulus q.
func crtInputs(t *testing.T, q uint64, values ...uint64) (
	*harness, []fancy.CrtBundle[dummy.Wire]) {

	t.Helper()

	ps, err := math.Factor(q)
	if err != nil {
		t.Fatalf("Factor(%d): %v", q, err)
	}
	var inputs []uint16
	composites := make([]uint64, len(values))
	for i, v := range values {
		inputs = append(inputs, math.CRT(v, ps)...)
		composites[i] = q
	}
	h := &harness{
		t: t,
		d: dummy.New(inputs, nil),
	}
	h.g = fancy.New[dummy.Wire](h.d)

	xs, _, err := h.g.CrtInit(composites, nil, nil)
	if err != nil {
		t.Fatalf("CrtInit: %v", err)
	}
	return h, xs
}

func (h *harness) reveal(x fancy.CrtBundle[dummy.Wire]) uint64 {
	h.t.Helper()

	start := len(h.d.Outputs())
	if err := h.g.CrtOutputs([]fancy.CrtBundle[dummy.Wire]{x}); err != nil {
		h.t.Fatalf("CrtOutputs: %v", err)
	}
	v, err := math.CRTInv(h.d.Outputs()[start:], x.Moduli())
	if err != nil {
		h.t.Fatalf("CRTInv: %v", err)
	}
	return v
}

func (h *harness) revealWire(w dummy.Wire) uint16 {
	h.t.Helper()

	if err := h.g.Output(w); err != nil {
		h.t.Fatalf("Output: %v", err)
	}
	outputs := h.d.Outputs()
	return outputs[len(outputs)-1]
}

// encode maps the signed value s to [0, q).
func encode(s int64, q uint64) uint64 {
	m := int64(q)
	return uint64((s%m + m) % m)
}
