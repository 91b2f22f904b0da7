//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	stdmath "math"

	"github.com/zenkuro/swanky/pkg/math"
)

// CrtFractionalMixedRadix returns the most significant mixed-radix
// digit of round(M*X/Q) mod M where X is the value of bun, Q its
// composite modulus, and M the product of ms.
//
// Each wire contributes its term x_i*c_i/p_i of the CRT
// reconstruction X/Q = frac(sum(x_i*c_i/p_i)). The term is scaled by
// M, rounded, and decomposed into mixed-radix digits with one
// projection per digit. The digit bundles are then summed and only
// the top digit of the sum is computed.
func (g *Gadgets[W]) CrtFractionalMixedRadix(bun CrtBundle[W], ms []uint16) (
	W, error) {

	var zero W
	const op = "crt_fractional_mixed_radix"

	if len(ms) == 0 {
		return zero, InvalidArgNum(op, 0, 1)
	}
	for i, mi := range ms {
		if mi < 2 {
			return zero, InvalidArg(op, "invalid mixed-radix modulus %d at %d",
				mi, i)
		}
	}
	if bun.Size() == 0 {
		return zero, InvalidArg(op, "empty CRT bundle")
	}
	ndigits := len(ms)
	q := bun.Composite()
	m := math.Product(ms)

	ds := make([]Bundle[W], 0, bun.Size())

	for _, wire := range bun.wires {
		p := uint64(wire.Modulus())

		coef, err := math.Inv(int64((q/p)%p), int64(p))
		if err != nil {
			return zero, InvalidArg(op, "%s", err)
		}

		tabs := make([][]uint16, ndigits)
		for i := range tabs {
			tabs[i] = make([]uint16, p)
		}
		for x := uint64(0); x < p; x++ {
			y := uint64(stdmath.Round(
				float64(m)*float64(x)*float64(coef)/float64(p))) % m
			for i, d := range math.AsMixedRadix(y, ms) {
				tabs[i][x] = d
			}
		}

		digits := make([]W, ndigits)
		for i, tt := range tabs {
			d, err := g.Proj(wire, ms[i], tt)
			if err != nil {
				return zero, err
			}
			digits[i] = d
		}
		ds = append(ds, Bundle[W]{wires: digits})
	}

	return g.MixedRadixAdditionMSBOnly(ds)
}
