//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy_test

import (
	"errors"
	"testing"

	"github.com/zenkuro/swanky/dummy"
	"github.com/zenkuro/swanky/fancy"
	"github.com/zenkuro/swanky/pkg/math"
)

// Composites of the first n primes for the exact tier.
var exactComposites = []uint64{
	2 * 3 * 5,
	2 * 3 * 5 * 7,
	2 * 3 * 5 * 7 * 11,
}

func TestScenario(t *testing.T) {
	h, xs := crtInputs(t, 30, 7, 20)
	x, y := xs[0], xs[1]

	diff, err := h.g.CrtSub(x, y)
	if err != nil {
		t.Fatal(err)
	}
	if v := h.reveal(diff); v != 17 {
		t.Errorf("7-20 mod 30: got %d, expected 17", v)
	}

	lt, err := h.g.CrtLt(x, y, fancy.Exact)
	if err != nil {
		t.Fatal(err)
	}
	if v := h.revealWire(lt); v != 1 {
		t.Errorf("7<20: got %d, expected 1", v)
	}

	mx, err := h.g.CrtMax([]fancy.CrtBundle[dummy.Wire]{x, y}, fancy.Exact)
	if err != nil {
		t.Fatal(err)
	}
	if v := h.reveal(mx); v != 20 {
		t.Errorf("max(7, 20): got %d, expected 20", v)
	}
}

func TestCrtSignExact(t *testing.T) {
	for _, q := range exactComposites {
		for x := uint64(0); x < q; x++ {
			h, xs := crtInputs(t, q, x)
			sign, err := h.g.CrtSign(xs[0], fancy.Exact)
			if err != nil {
				t.Fatal(err)
			}
			if sign.Q != 2 {
				t.Fatalf("sign modulus %d, expected 2", sign.Q)
			}
			var expected uint16
			if x >= q/2 {
				expected = 1
			}
			if v := h.revealWire(sign); v != expected {
				t.Errorf("sign(%d) mod %d: got %d, expected %d",
					x, q, v, expected)
			}
		}
	}
}

func TestCrtSignTiers(t *testing.T) {
	const q = 2 * 3 * 5 * 7 * 11 * 13
	for _, acc := range fancy.Accuracies() {
		if _, err := fancy.MixedRadixModuli(acc, 6); err != nil {
			continue
		}
		var errs int
		for x := uint64(0); x < q; x++ {
			h, xs := crtInputs(t, q, x)
			sign, err := h.g.CrtSign(xs[0], acc)
			if err != nil {
				t.Fatal(err)
			}
			var expected uint16
			if x >= q/2 {
				expected = 1
			}
			if h.revealWire(sign) != expected {
				errs++
			}
		}
		// All misclassified values are close to 0 or Q/2, so the
		// observed rate stays well below 5%.
		if errs*20 > q {
			t.Errorf("%s: %d errors out of %d", acc, errs, q)
		}
		if acc == fancy.Exact && errs != 0 {
			t.Errorf("%s: %d errors", acc, errs)
		}
	}
}

func TestCrtLtGeq(t *testing.T) {
	for _, q := range exactComposites[:2] {
		limit := int64(q/4) - 1
		for sx := -limit; sx <= limit; sx++ {
			for sy := -limit; sy <= limit; sy++ {
				h, xs := crtInputs(t, q, encode(sx, q), encode(sy, q))
				lt, err := h.g.CrtLt(xs[0], xs[1], fancy.Exact)
				if err != nil {
					t.Fatal(err)
				}
				geq, err := h.g.CrtGeq(xs[0], xs[1], fancy.Exact)
				if err != nil {
					t.Fatal(err)
				}
				var expected uint16
				if sx < sy {
					expected = 1
				}
				if v := h.revealWire(lt); v != expected {
					t.Errorf("%d<%d: got %d, expected %d", sx, sy, v, expected)
				}
				if v := h.revealWire(geq); v != 1-expected {
					t.Errorf("%d>=%d: got %d, expected %d",
						sx, sy, v, 1-expected)
				}
			}
		}
	}
}

func TestCrtRelu(t *testing.T) {
	const q = 2 * 3 * 5 * 7
	for x := uint64(0); x < q; x++ {
		var expected uint64
		if x < q/2 {
			expected = x
		}

		h, xs := crtInputs(t, q, x)
		r, err := h.g.CrtRelu(xs[0], fancy.Exact, nil)
		if err != nil {
			t.Fatal(err)
		}
		if v := h.reveal(r); v != expected {
			t.Errorf("relu(%d): got %d, expected %d", x, v, expected)
		}

		r, err = h.g.CrtRelu(xs[0], fancy.Exact, []uint16{5, 7})
		if err != nil {
			t.Fatal(err)
		}
		if v := h.reveal(r); v != expected%35 {
			t.Errorf("relu(%d) mod 35: got %d, expected %d",
				x, v, expected%35)
		}
	}

	h, xs := crtInputs(t, q, 1)
	_, err := h.g.CrtRelu(xs[0], fancy.Exact, []uint16{11})
	if !errors.Is(err, fancy.ErrInvalidArg) {
		t.Errorf("CrtRelu(11): unexpected error %v", err)
	}
}

func TestCrtSgn(t *testing.T) {
	const q = 2 * 3 * 5 * 7
	for x := uint64(0); x < q; x++ {
		h, xs := crtInputs(t, q, x)
		r, err := h.g.CrtSgn(xs[0], fancy.Exact, nil)
		if err != nil {
			t.Fatal(err)
		}
		expected := uint64(1)
		if x >= q/2 {
			expected = q - 1
		}
		if v := h.reveal(r); v != expected {
			t.Errorf("sgn(%d): got %d, expected %d", x, v, expected)
		}

		r, err = h.g.CrtSgn(xs[0], fancy.Exact, []uint16{11, 13})
		if err != nil {
			t.Fatal(err)
		}
		expected = 1
		if x >= q/2 {
			expected = 11*13 - 1
		}
		if v := h.reveal(r); v != expected {
			t.Errorf("sgn(%d) mod 143: got %d, expected %d", x, v, expected)
		}
	}
}

func TestCrtMax(t *testing.T) {
	const q = 2 * 3 * 5 * 7
	values := []int64{-20, 13, -3, 40, 0, 39}

	var encoded []uint64
	for _, v := range values {
		encoded = append(encoded, encode(v, q))
	}
	h, xs := crtInputs(t, q, encoded...)

	for i := 2; i <= len(xs); i++ {
		mx, err := h.g.CrtMax(xs[:i], fancy.Exact)
		if err != nil {
			t.Fatal(err)
		}
		expected := values[0]
		for _, v := range values[1:i] {
			if v > expected {
				expected = v
			}
		}
		if v := h.reveal(mx); v != encode(expected, q) {
			t.Errorf("max(%v): got %d, expected %d", values[:i], v, expected)
		}
	}
}

func TestCrtMaxErrors(t *testing.T) {
	h, xs := crtInputs(t, 30, 3)

	for _, args := range [][]fancy.CrtBundle[dummy.Wire]{nil, xs} {
		_, err := h.g.CrtMax(args, fancy.Exact)
		var ferr *fancy.Error
		if !errors.As(err, &ferr) || ferr.Kind != fancy.KindInvalidArgNum {
			t.Fatalf("CrtMax(%d): unexpected error %v", len(args), err)
		}
		if ferr.Got != len(args) || ferr.Needed != 2 {
			t.Errorf("CrtMax(%d): got=%d, needed=%d",
				len(args), ferr.Got, ferr.Needed)
		}
	}
}

func TestCrtSignUnsupported(t *testing.T) {
	h, xs := crtInputs(t, 30, 3)

	_, err := h.g.CrtSign(xs[0], fancy.TwoNines)
	var accErr *fancy.AccuracyError
	if !errors.As(err, &accErr) {
		t.Fatalf("CrtSign: unexpected error %v", err)
	}
	if accErr.Accuracy != fancy.TwoNines || accErr.NumPrimes != 3 {
		t.Errorf("unexpected accuracy error %v", accErr)
	}
}

func TestMixedRadixAdditionMSBOnly(t *testing.T) {
	ms := []uint16{3, 4, 5}
	m := math.Product(ms)

	for x := uint64(0); x < m; x++ {
		for y := uint64(0); y < m; y += 3 {
			for _, z := range []uint64{0, 59} {
				h, _ := crtInputs(t, 2, 0)
				var bundles []fancy.Bundle[dummy.Wire]
				for _, v := range []uint64{x, y, z} {
					b, err := h.g.ConstantBundle(math.AsMixedRadix(v, ms), ms)
					if err != nil {
						t.Fatal(err)
					}
					bundles = append(bundles, b)
				}
				msb, err := h.g.MixedRadixAdditionMSBOnly(bundles)
				if err != nil {
					t.Fatal(err)
				}
				if msb.Q != 5 {
					t.Fatalf("msb modulus %d, expected 5", msb.Q)
				}
				expected := math.AsMixedRadix((x+y+z)%m, ms)[2]
				if msb.Val != expected {
					t.Errorf("msb(%d+%d+%d): got %d, expected %d",
						x, y, z, msb.Val, expected)
				}
			}
		}
	}
}

func TestMixedRadixAdditionErrors(t *testing.T) {
	h, _ := crtInputs(t, 2, 0)

	_, err := h.g.MixedRadixAdditionMSBOnly(nil)
	if !errors.Is(err, fancy.ErrInvalidArgNum) {
		t.Errorf("empty: unexpected error %v", err)
	}

	a, err := h.g.ConstantBundle([]uint16{1, 1}, []uint16{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	b, err := h.g.ConstantBundle([]uint16{1, 1}, []uint16{3, 5})
	if err != nil {
		t.Fatal(err)
	}
	_, err = h.g.MixedRadixAdditionMSBOnly([]fancy.Bundle[dummy.Wire]{a, b})
	if !errors.Is(err, fancy.ErrUnequalModuli) {
		t.Errorf("unequal: unexpected error %v", err)
	}
}

func TestCrtFractionalMixedRadixInvalidModuli(t *testing.T) {
	h, xs := crtInputs(t, 30, 3)

	for _, ms := range [][]uint16{{0}, {2, 0}, {1, 5}} {
		_, err := h.g.CrtFractionalMixedRadix(xs[0], ms)
		if !errors.Is(err, fancy.ErrInvalidArg) {
			t.Errorf("ms=%v: unexpected error %v", ms, err)
		}
	}
	_, err := h.g.CrtFractionalMixedRadix(xs[0], nil)
	if !errors.Is(err, fancy.ErrInvalidArgNum) {
		t.Errorf("ms=nil: unexpected error %v", err)
	}
}
