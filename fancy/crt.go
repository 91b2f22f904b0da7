//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	"github.com/zenkuro/swanky/pkg/math"
)

// CrtBundle implements a bundle that holds one integer in the CRT
// representation. The wire moduli are the factors of the composite
// modulus Q, in the order math.Factor returns them.
type CrtBundle[W HasModulus] struct {
	Bundle[W]
}

// NewCrtBundle creates a new CRT bundle from the argument wires.
func NewCrtBundle[W HasModulus](wires []W) CrtBundle[W] {
	return CrtBundle[W]{
		Bundle: NewBundle(wires),
	}
}

// Composite returns the composite modulus Q of the bundle.
func (c CrtBundle[W]) Composite() uint64 {
	return math.Product(c.Moduli())
}

// Extract returns the underlying bundle.
func (c CrtBundle[W]) Extract() Bundle[W] {
	return c.Bundle
}

func (g *Gadgets[W]) crt(b Bundle[W], err error) (CrtBundle[W], error) {
	if err != nil {
		return CrtBundle[W]{}, err
	}
	return CrtBundle[W]{Bundle: b}, nil
}

func factorAll(op string, qs []uint64) ([][]uint16, error) {
	result := make([][]uint16, len(qs))
	for i, q := range qs {
		ps, err := math.Factor(q)
		if err != nil {
			return nil, InvalidArg(op, "%s", err)
		}
		result[i] = ps
	}
	return result, nil
}

// CrtInit allocates the garbler's and evaluator's CRT input bundles
// for the argument composite moduli.
func (g *Gadgets[W]) CrtInit(garblerComposites, evaluatorComposites []uint64,
	reusedDeltas []W) ([]CrtBundle[W], []CrtBundle[W], error) {

	gbMs, err := factorAll("crt_init", garblerComposites)
	if err != nil {
		return nil, nil, err
	}
	evMs, err := factorAll("crt_init", evaluatorComposites)
	if err != nil {
		return nil, nil, err
	}
	xs, ys, err := g.InitBundles(gbMs, evMs, reusedDeltas)
	if err != nil {
		return nil, nil, err
	}
	gb := make([]CrtBundle[W], len(xs))
	for i, x := range xs {
		gb[i] = CrtBundle[W]{Bundle: x}
	}
	ev := make([]CrtBundle[W], len(ys))
	for i, y := range ys {
		ev[i] = CrtBundle[W]{Bundle: y}
	}
	return gb, ev, nil
}

// CrtConstantBundle creates a bundle of constant wires for the CRT
// representation of x under the composite modulus q.
func (g *Gadgets[W]) CrtConstantBundle(x, q uint64) (CrtBundle[W], error) {
	ps, err := math.Factor(q)
	if err != nil {
		return CrtBundle[W]{}, InvalidArg("crt_constant_bundle", "%s", err)
	}
	return g.crt(g.ConstantBundle(math.CRT(x, ps), ps))
}

// CrtOutputs reveals all wires of the CRT bundles.
func (g *Gadgets[W]) CrtOutputs(xs []CrtBundle[W]) error {
	for _, x := range xs {
		if err := g.OutputBundle(x.Bundle); err != nil {
			return err
		}
	}
	return nil
}

// CrtAdd adds x and y.
func (g *Gadgets[W]) CrtAdd(x, y CrtBundle[W]) (CrtBundle[W], error) {
	return g.crt(g.AddBundles(x.Bundle, y.Bundle))
}

// CrtSub subtracts y from x.
func (g *Gadgets[W]) CrtSub(x, y CrtBundle[W]) (CrtBundle[W], error) {
	return g.crt(g.SubBundles(x.Bundle, y.Bundle))
}

// CrtCmul multiplies x with the constant c. Each wire is multiplied
// with the residue of c modulo the wire's modulus.
func (g *Gadgets[W]) CrtCmul(x CrtBundle[W], c uint64) (CrtBundle[W], error) {
	cs := math.CRT(c, x.Moduli())
	wires := make([]W, x.Size())
	for i, w := range x.wires {
		r, err := g.Cmul(w, cs[i])
		if err != nil {
			return CrtBundle[W]{}, err
		}
		wires[i] = r
	}
	return CrtBundle[W]{Bundle: Bundle[W]{wires: wires}}, nil
}

// CrtMul multiplies x and y.
func (g *Gadgets[W]) CrtMul(x, y CrtBundle[W]) (CrtBundle[W], error) {
	return g.crt(g.MulBundles(x.Bundle, y.Bundle))
}

// CrtCexp raises x to the power of the constant c. Each wire is
// mapped through the table v^c mod p with one projection.
func (g *Gadgets[W]) CrtCexp(x CrtBundle[W], c uint16) (CrtBundle[W], error) {
	wires := make([]W, x.Size())
	for i, w := range x.wires {
		p := w.Modulus()
		tt := make([]uint16, p)
		for v := range tt {
			tt[v] = powMod(uint64(v), uint64(c), uint64(p))
		}
		r, err := g.Proj(w, p, tt)
		if err != nil {
			return CrtBundle[W]{}, err
		}
		wires[i] = r
	}
	return CrtBundle[W]{Bundle: Bundle[W]{wires: wires}}, nil
}

func powMod(b, e, m uint64) uint16 {
	result := uint64(1) % m
	b %= m
	for ; e > 0; e >>= 1 {
		if e&1 != 0 {
			result = result * b % m
		}
		b = b * b % m
	}
	return uint16(result)
}

// CrtRem computes x modulo p. The modulus p must be one of the
// factors of x. All output wires are derived from the wire with
// modulus p by changing its modulus.
func (g *Gadgets[W]) CrtRem(x CrtBundle[W], p uint16) (CrtBundle[W], error) {
	idx := -1
	for i, w := range x.wires {
		if w.Modulus() == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return CrtBundle[W]{}, InvalidArg("crt_rem",
			"%d is not a modulus in this bundle %v", p, x.Moduli())
	}
	w := x.wires[idx]
	wires := make([]W, x.Size())
	for i, o := range x.wires {
		r, err := g.ModChange(w, o.Modulus())
		if err != nil {
			return CrtBundle[W]{}, err
		}
		wires[i] = r
	}
	return CrtBundle[W]{Bundle: Bundle[W]{wires: wires}}, nil
}
