//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zenkuro/swanky/dummy"
	"github.com/zenkuro/swanky/fancy"
)

func newGadgets(gb, ev []uint16) (*dummy.Dummy, *fancy.Gadgets[dummy.Wire]) {
	d := dummy.New(gb, ev)
	return d, fancy.New[dummy.Wire](d)
}

func TestModChange(t *testing.T) {
	_, g := newGadgets(nil, nil)
	for x := uint16(0); x < 7; x++ {
		w, err := g.Constant(x, 7)
		if err != nil {
			t.Fatal(err)
		}
		for _, q := range []uint16{2, 3, 7, 11} {
			r, err := g.ModChange(w, q)
			if err != nil {
				t.Fatal(err)
			}
			if r.Q != q || r.Val != x%q {
				t.Errorf("ModChange(%v, %d)=%v", w, q, r)
			}
		}
	}
}

func TestNegateNot(t *testing.T) {
	_, g := newGadgets(nil, nil)
	for x := uint16(0); x < 5; x++ {
		w, err := g.Constant(x, 5)
		if err != nil {
			t.Fatal(err)
		}
		n, err := g.Negate(w)
		if err != nil {
			t.Fatal(err)
		}
		sum, err := g.Add(w, n)
		if err != nil {
			t.Fatal(err)
		}
		if sum.Val != 0 {
			t.Errorf("%d + -%d mod 5 = %d", x, x, sum.Val)
		}
		_, err = g.Not(w)
		if !errors.Is(err, fancy.ErrInvalidArgMod) {
			t.Errorf("Not(mod 5): unexpected error %v", err)
		}
	}
	for x := uint16(0); x < 2; x++ {
		w, err := g.Constant(x, 2)
		if err != nil {
			t.Fatal(err)
		}
		r, err := g.Not(w)
		if err != nil {
			t.Fatal(err)
		}
		if r.Val != 1-x {
			t.Errorf("Not(%d)=%d", x, r.Val)
		}
	}
}

func TestAddMany(t *testing.T) {
	_, g := newGadgets(nil, nil)

	_, err := g.AddMany(nil)
	if !errors.Is(err, fancy.ErrInvalidArgNum) {
		t.Errorf("AddMany(nil): unexpected error %v", err)
	}

	var ws []dummy.Wire
	for i := uint16(1); i <= 10; i++ {
		w, err := g.Constant(i, 13)
		if err != nil {
			t.Fatal(err)
		}
		ws = append(ws, w)
	}
	sum, err := g.AddMany(ws)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Val != 55%13 {
		t.Errorf("AddMany: got %d, expected %d", sum.Val, 55%13)
	}
}

func TestBundles(t *testing.T) {
	d, g := newGadgets([]uint16{1, 2, 3}, []uint16{4, 5})
	gb, ev, err := g.InitBundles([][]uint16{{2, 3}, {5}}, [][]uint16{{7, 11}},
		nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(gb) != 2 || len(ev) != 1 {
		t.Fatalf("got %d garbler and %d evaluator bundles", len(gb), len(ev))
	}
	if diff := cmp.Diff([]uint16{2, 3}, gb[0].Moduli()); diff != "" {
		t.Errorf("moduli mismatch (-want +got):\n%s", diff)
	}
	if gb[1].Wire(0).Val != 3 || ev[0].Wire(1).Val != 5 {
		t.Errorf("unexpected bundle values %v %v", gb[1], ev[0])
	}

	c, err := g.ConstantBundle([]uint16{6, 10}, []uint16{7, 11})
	if err != nil {
		t.Fatal(err)
	}
	sum, err := g.AddBundles(ev[0], c)
	if err != nil {
		t.Fatal(err)
	}
	diff, err := g.SubBundles(ev[0], c)
	if err != nil {
		t.Fatal(err)
	}
	prod, err := g.MulBundles(ev[0], c)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := g.CmulBundle(ev[0], 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.OutputBundles([]fancy.Bundle[dummy.Wire]{
		sum, diff, prod, scaled,
	}); err != nil {
		t.Fatal(err)
	}
	expected := []uint16{
		3, 4,
		5, 6,
		3, 6,
		5, 4,
	}
	if diff := cmp.Diff(expected, d.Outputs()); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}

	_, err = g.AddBundles(gb[0], ev[0])
	if !errors.Is(err, fancy.ErrUnequalModuli) {
		t.Errorf("AddBundles: unexpected error %v", err)
	}
	if !strings.Contains(fmt.Sprint(err), "[2 3] != [7 11]") {
		t.Errorf("AddBundles: moduli missing from error %v", err)
	}

	_, err = g.ConstantBundle([]uint16{1}, []uint16{2, 3})
	if !errors.Is(err, fancy.ErrInvalidArgNum) {
		t.Errorf("ConstantBundle: unexpected error %v", err)
	}
}

func TestBundleImmutable(t *testing.T) {
	ws := []dummy.Wire{{Val: 1, Q: 2}, {Val: 2, Q: 3}}
	b := fancy.NewBundle(ws)
	ws[0].Val = 0
	b.Wires()[1].Val = 0

	if b.Wire(0).Val != 1 || b.Wire(1).Val != 2 {
		t.Errorf("bundle modified through wire slices: %v", b)
	}
	if b.Size() != 2 {
		t.Errorf("Size()=%d", b.Size())
	}
}

func TestModChangeInvalidModulus(t *testing.T) {
	_, g := newGadgets(nil, nil)
	w, err := g.Constant(3, 7)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []uint16{0, 1} {
		_, err := g.ModChange(w, q)
		if !errors.Is(err, fancy.ErrInvalidArg) {
			t.Errorf("ModChange(%d): unexpected error %v", q, err)
		}
	}
}
