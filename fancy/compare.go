//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	"github.com/cockroachdb/errors"
)

// CrtSign returns 0 if x is non-negative and 1 if x is negative. The
// values in [Q/2, Q) are negative.
func (g *Gadgets[W]) CrtSign(x CrtBundle[W], acc Accuracy) (W, error) {
	var zero W

	ms, err := MixedRadixModuli(acc, x.Size())
	if err != nil {
		return zero, err
	}
	res, err := g.CrtFractionalMixedRadix(x, ms)
	if err != nil {
		return zero, err
	}
	p := ms[len(ms)-1]
	tt := make([]uint16, p)
	for d := range tt {
		if uint16(d) >= p/2 {
			tt[d] = 1
		}
	}
	return g.Proj(res, 2, tt)
}

// CrtRelu computes max(x, 0). If outputModuli is not nil, the result
// is the bundle of x's wires with the argument moduli; each output
// modulus must be a factor of x.
func (g *Gadgets[W]) CrtRelu(x CrtBundle[W], acc Accuracy,
	outputModuli []uint16) (CrtBundle[W], error) {

	src := x.wires
	if outputModuli != nil {
		src = make([]W, len(outputModuli))
		for i, p := range outputModuli {
			idx := -1
			for j, w := range x.wires {
				if w.Modulus() == p {
					idx = j
					break
				}
			}
			if idx < 0 {
				return CrtBundle[W]{}, InvalidArg("crt_relu",
					"output modulus %d is not a modulus in this bundle %v",
					p, x.Moduli())
			}
			src[i] = x.wires[idx]
		}
	}

	sign, err := g.CrtSign(x, acc)
	if err != nil {
		return CrtBundle[W]{}, err
	}
	mask, err := g.Not(sign)
	if err != nil {
		return CrtBundle[W]{}, err
	}

	wires := make([]W, len(src))
	for i, w := range src {
		r, err := g.Mul(w, mask)
		if err != nil {
			return CrtBundle[W]{}, err
		}
		wires[i] = r
	}
	return CrtBundle[W]{Bundle: Bundle[W]{wires: wires}}, nil
}

// CrtSgn returns 1 if x is non-negative and -1, that is Q-1, if x is
// negative. If outputModuli is not nil, the result is produced under
// the argument moduli instead of x's moduli.
func (g *Gadgets[W]) CrtSgn(x CrtBundle[W], acc Accuracy,
	outputModuli []uint16) (CrtBundle[W], error) {

	sign, err := g.CrtSign(x, acc)
	if err != nil {
		return CrtBundle[W]{}, err
	}
	ps := outputModuli
	if ps == nil {
		ps = x.Moduli()
	}
	wires := make([]W, len(ps))
	for i, p := range ps {
		if p < 2 {
			return CrtBundle[W]{}, InvalidArg("crt_sgn",
				"invalid output modulus %d", p)
		}
		r, err := g.Proj(sign, p, []uint16{1, p - 1})
		if err != nil {
			return CrtBundle[W]{}, err
		}
		wires[i] = r
	}
	return CrtBundle[W]{Bundle: Bundle[W]{wires: wires}}, nil
}

// CrtLt returns 1 if x < y and 0 otherwise.
func (g *Gadgets[W]) CrtLt(x, y CrtBundle[W], acc Accuracy) (W, error) {
	var zero W

	z, err := g.CrtSub(x, y)
	if err != nil {
		return zero, err
	}
	return g.CrtSign(z, acc)
}

// CrtGeq returns 1 if x >= y and 0 otherwise.
func (g *Gadgets[W]) CrtGeq(x, y CrtBundle[W], acc Accuracy) (W, error) {
	var zero W

	z, err := g.CrtLt(x, y, acc)
	if err != nil {
		return zero, err
	}
	return g.Not(z)
}

// CrtMax returns the maximum of the bundles xs. At least two bundles
// are required.
func (g *Gadgets[W]) CrtMax(xs []CrtBundle[W], acc Accuracy) (
	CrtBundle[W], error) {

	if len(xs) < 2 {
		return CrtBundle[W]{}, InvalidArgNum("crt_max", len(xs), 2)
	}
	result := xs[0]
	for i := 1; i < len(xs); i++ {
		y := xs[i]
		pos, err := g.CrtLt(result, y, acc)
		if err != nil {
			return CrtBundle[W]{}, errors.Wrapf(err, "crt_max: argument %d", i)
		}
		neg, err := g.Not(pos)
		if err != nil {
			return CrtBundle[W]{}, err
		}
		wires := make([]W, result.Size())
		for j := range result.wires {
			xp, err := g.Mul(result.wires[j], neg)
			if err != nil {
				return CrtBundle[W]{}, err
			}
			yp, err := g.Mul(y.wires[j], pos)
			if err != nil {
				return CrtBundle[W]{}, err
			}
			wires[j], err = g.Add(xp, yp)
			if err != nil {
				return CrtBundle[W]{}, err
			}
		}
		result = CrtBundle[W]{Bundle: Bundle[W]{wires: wires}}
	}
	return result, nil
}
