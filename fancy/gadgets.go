//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	"github.com/cockroachdb/errors"
	"github.com/zenkuro/swanky/pkg/math"
)

// Gadgets implements wire and bundle gadgets on top of a Fancy
// backend. The gadgets keep no state between calls: every call
// issues a deterministic sequence of backend operations and returns
// the first backend error it encounters.
type Gadgets[W HasModulus] struct {
	Fancy[W]
}

// New creates gadgets for the backend f.
func New[W HasModulus](f Fancy[W]) *Gadgets[W] {
	return &Gadgets[W]{
		Fancy: f,
	}
}

// AddMany adds all argument wires. The wires must have equal moduli.
func (g *Gadgets[W]) AddMany(xs []W) (W, error) {
	var zero W
	if len(xs) == 0 {
		return zero, InvalidArgNum("add_many", 0, 1)
	}
	result := xs[0]
	for i := 1; i < len(xs); i++ {
		var err error
		result, err = g.Add(result, xs[i])
		if err != nil {
			return zero, err
		}
	}
	return result, nil
}

// ModChange changes the modulus of x to q. The value is reduced
// modulo q so a wire keeps its value when q is at least its modulus.
func (g *Gadgets[W]) ModChange(x W, q uint16) (W, error) {
	if q < 2 {
		var zero W
		return zero, InvalidArg("mod_change", "invalid modulus %d", q)
	}
	from := x.Modulus()
	if from == q {
		return x, nil
	}
	tt := make([]uint16, from)
	for i := range tt {
		tt[i] = uint16(i) % q
	}
	return g.Proj(x, q, tt)
}

// Negate computes the additive inverse of x modulo its modulus.
func (g *Gadgets[W]) Negate(x W) (W, error) {
	q := x.Modulus()
	tt := make([]uint16, q)
	for i := range tt {
		tt[i] = (q - uint16(i)) % q
	}
	return g.Proj(x, q, tt)
}

// Not computes the logical negation 1-x of the binary wire x.
func (g *Gadgets[W]) Not(x W) (W, error) {
	var zero W
	if x.Modulus() != 2 {
		return zero, InvalidArgMod("not", x.Modulus(), 2)
	}
	one, err := g.Constant(1, 2)
	if err != nil {
		return zero, err
	}
	return g.Sub(one, x)
}

// InitBundles allocates the garbler's and evaluator's input bundles
// with the argument moduli sequences.
func (g *Gadgets[W]) InitBundles(garblerModuli, evaluatorModuli [][]uint16,
	reusedDeltas []W) ([]Bundle[W], []Bundle[W], error) {

	gbWires, evWires, err := g.Init(flatten(garblerModuli),
		flatten(evaluatorModuli), reusedDeltas)
	if err != nil {
		return nil, nil, err
	}
	gb, err := split("init_bundles", gbWires, garblerModuli)
	if err != nil {
		return nil, nil, err
	}
	ev, err := split("init_bundles", evWires, evaluatorModuli)
	if err != nil {
		return nil, nil, err
	}
	return gb, ev, nil
}

func flatten(moduli [][]uint16) []uint16 {
	var result []uint16
	for _, ms := range moduli {
		result = append(result, ms...)
	}
	return result
}

func split[W HasModulus](op string, wires []W, moduli [][]uint16) (
	[]Bundle[W], error) {

	var result []Bundle[W]
	var pos int
	for _, ms := range moduli {
		if pos+len(ms) > len(wires) {
			return nil, InvalidArgNum(op, len(wires), len(flatten(moduli)))
		}
		b := NewBundle(wires[pos : pos+len(ms)])
		for i, w := range b.wires {
			if w.Modulus() != ms[i] {
				return nil, InvalidArgMod(op, w.Modulus(), ms[i])
			}
		}
		result = append(result, b)
		pos += len(ms)
	}
	return result, nil
}

// ConstantBundle creates a bundle of constant wires with values xs
// and moduli ps.
func (g *Gadgets[W]) ConstantBundle(xs, ps []uint16) (Bundle[W], error) {
	if len(xs) != len(ps) {
		return Bundle[W]{}, InvalidArgNum("constant_bundle", len(xs), len(ps))
	}
	wires := make([]W, len(xs))
	for i, x := range xs {
		if x >= ps[i] {
			return Bundle[W]{}, InvalidArg("constant_bundle",
				"value %d out of range for modulus %d", x, ps[i])
		}
		w, err := g.Constant(x, ps[i])
		if err != nil {
			return Bundle[W]{}, err
		}
		wires[i] = w
	}
	return Bundle[W]{wires: wires}, nil
}

// OutputBundle reveals all wires of x.
func (g *Gadgets[W]) OutputBundle(x Bundle[W]) error {
	for _, w := range x.wires {
		if err := g.Output(w); err != nil {
			return err
		}
	}
	return nil
}

// OutputBundles reveals all wires of all bundles.
func (g *Gadgets[W]) OutputBundles(xs []Bundle[W]) error {
	for _, x := range xs {
		if err := g.OutputBundle(x); err != nil {
			return err
		}
	}
	return nil
}

func checkModuli[W HasModulus](op string, x, y Bundle[W]) error {
	if !x.EqualModuli(y) {
		return UnequalModuli(op, x.Moduli(), y.Moduli())
	}
	return nil
}

type binop[W HasModulus] func(x, y W) (W, error)

func (g *Gadgets[W]) elementwise(op string, x, y Bundle[W], f binop[W]) (
	Bundle[W], error) {

	if err := checkModuli(op, x, y); err != nil {
		return Bundle[W]{}, err
	}
	wires := make([]W, len(x.wires))
	for i := range x.wires {
		w, err := f(x.wires[i], y.wires[i])
		if err != nil {
			return Bundle[W]{}, err
		}
		wires[i] = w
	}
	return Bundle[W]{wires: wires}, nil
}

// AddBundles adds x and y elementwise.
func (g *Gadgets[W]) AddBundles(x, y Bundle[W]) (Bundle[W], error) {
	return g.elementwise("add_bundles", x, y, g.Add)
}

// SubBundles subtracts y from x elementwise.
func (g *Gadgets[W]) SubBundles(x, y Bundle[W]) (Bundle[W], error) {
	return g.elementwise("sub_bundles", x, y, g.Sub)
}

// MulBundles multiplies x and y elementwise.
func (g *Gadgets[W]) MulBundles(x, y Bundle[W]) (Bundle[W], error) {
	return g.elementwise("mul_bundles", x, y, g.Mul)
}

// CmulBundle multiplies each wire of x with the constant c.
func (g *Gadgets[W]) CmulBundle(x Bundle[W], c uint16) (Bundle[W], error) {
	wires := make([]W, len(x.wires))
	for i, w := range x.wires {
		r, err := g.Cmul(w, c)
		if err != nil {
			return Bundle[W]{}, err
		}
		wires[i] = r
	}
	return Bundle[W]{wires: wires}, nil
}

// MixedRadixAdditionMSBOnly adds the mixed-radix numbers xs and
// returns the most significant digit of the sum. All bundles must
// have the same moduli, least significant digit first.
//
// The digits of position i are summed under a modulus large enough to
// hold the full sum and the incoming carry. The carry is projected
// from the sum directly into the modulus of the next position's sum.
// Only the top digit is computed modulo its own radix.
func (g *Gadgets[W]) MixedRadixAdditionMSBOnly(xs []Bundle[W]) (W, error) {
	var zero W
	const op = "mixed_radix_addition_msb_only"

	if len(xs) == 0 {
		return zero, InvalidArgNum(op, 0, 1)
	}
	for i := 1; i < len(xs); i++ {
		if err := checkModuli(op, xs[0], xs[i]); err != nil {
			return zero, err
		}
	}
	ms := xs[0].Moduli()
	n := len(ms)
	if n == 0 {
		return zero, InvalidArg(op, "empty mixed-radix bundle")
	}
	nargs := len(xs)

	maxSum := func(i, maxCarry int) (int, error) {
		v := nargs*(int(ms[i])-1) + maxCarry
		if v+1 > math.MaxModulus {
			return 0, InvalidArg(op, "digit %d sum modulus %d out of range",
				i, v+1)
		}
		return v, nil
	}

	var carry W
	var haveCarry bool
	var maxCarry int

	for i := 0; i < n-1; i++ {
		q := int(ms[i])
		maxVal, err := maxSum(i, maxCarry)
		if err != nil {
			return zero, err
		}
		ds := make([]W, 0, nargs+1)
		for _, x := range xs {
			d, err := g.ModChange(x.wires[i], uint16(maxVal+1))
			if err != nil {
				return zero, err
			}
			ds = append(ds, d)
		}
		if haveCarry {
			ds = append(ds, carry)
		}
		sum, err := g.AddMany(ds)
		if err != nil {
			return zero, err
		}
		maxCarry = maxVal / q

		var next int
		if i+1 < n-1 {
			nextMax, err := maxSum(i+1, maxCarry)
			if err != nil {
				return zero, err
			}
			next = nextMax + 1
		} else {
			next = int(ms[n-1])
		}
		tt := make([]uint16, maxVal+1)
		for v := range tt {
			tt[v] = uint16((v / q) % next)
		}
		carry, err = g.Proj(sum, uint16(next), tt)
		if err != nil {
			return zero, errors.Wrapf(err, "%s: carry of digit %d", op, i)
		}
		haveCarry = true
	}

	ds := make([]W, 0, nargs+1)
	for _, x := range xs {
		ds = append(ds, x.wires[n-1])
	}
	if haveCarry {
		ds = append(ds, carry)
	}
	return g.AddMany(ds)
}
