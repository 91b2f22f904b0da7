//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package dummy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/zenkuro/swanky/fancy"
)

func TestOperations(t *testing.T) {
	d := New([]uint16{3}, []uint16{4})
	gb, ev, err := d.Init([]uint16{7}, []uint16{7}, nil)
	if err != nil {
		t.Fatal(err)
	}
	x, y := gb[0], ev[0]

	add, err := d.Add(x, y)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := d.Sub(x, y)
	if err != nil {
		t.Fatal(err)
	}
	cmul, err := d.Cmul(x, 5)
	if err != nil {
		t.Fatal(err)
	}
	mul, err := d.Mul(x, y)
	if err != nil {
		t.Fatal(err)
	}
	proj, err := d.Proj(x, 2, []uint16{0, 1, 0, 1, 0, 1, 0})
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []Wire{add, sub, cmul, mul, proj} {
		if err := d.Output(w); err != nil {
			t.Fatal(err)
		}
	}
	expected := []uint16{0, 6, 1, 5, 1}
	if diff := cmp.Diff(expected, d.Outputs()); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
	if proj.Q != 2 {
		t.Errorf("projection modulus %d", proj.Q)
	}
}

func TestMulModulus(t *testing.T) {
	d := New(nil, nil)
	r, err := d.Mul(Wire{Val: 4, Q: 5}, Wire{Val: 1, Q: 2})
	if err != nil {
		t.Fatal(err)
	}
	if r != (Wire{Val: 4, Q: 5}) {
		t.Errorf("Mul=%v", r)
	}
}

func TestInputErrors(t *testing.T) {
	d := New([]uint16{1}, nil)
	_, _, err := d.Init([]uint16{2, 2}, nil, nil)
	if !errors.Is(err, ErrNotEnoughGarblerInputs) {
		t.Errorf("unexpected error %v", err)
	}
	_, _, err = d.Init([]uint16{2}, []uint16{2}, nil)
	if !errors.Is(err, ErrNotEnoughEvaluatorInputs) ||
		!errors.Is(err, fancy.ErrClient) {
		t.Errorf("unexpected error %v", err)
	}

	d = New([]uint16{5}, nil)
	_, _, err = d.Init([]uint16{3}, nil, nil)
	if !errors.Is(err, fancy.ErrInvalidArg) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestOperationErrors(t *testing.T) {
	d := New(nil, nil)

	_, err := d.Sub(Wire{Q: 3}, Wire{Q: 5})
	if !errors.Is(err, fancy.ErrUnequalModuli) {
		t.Errorf("Sub: unexpected error %v", err)
	}
	_, err = d.Proj(Wire{Q: 3}, 2, []uint16{0, 1, 2})
	if !errors.Is(err, fancy.ErrInvalidTruthTable) {
		t.Errorf("Proj: unexpected error %v", err)
	}
	_, err = d.Constant(3, 3)
	if !errors.Is(err, fancy.ErrInvalidArg) {
		t.Errorf("Constant: unexpected error %v", err)
	}
}

func TestZeroWire(t *testing.T) {
	d := New(nil, nil)
	var zero Wire

	ops := map[string]func() (Wire, error){
		"add":  func() (Wire, error) { return d.Add(zero, zero) },
		"sub":  func() (Wire, error) { return d.Sub(zero, zero) },
		"cmul": func() (Wire, error) { return d.Cmul(zero, 3) },
		"mul":  func() (Wire, error) { return d.Mul(zero, zero) },
		"proj": func() (Wire, error) { return d.Proj(zero, 2, []uint16{}) },
	}
	for name, op := range ops {
		_, err := op()
		if !errors.Is(err, fancy.ErrInvalidArg) {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}

	_, err := d.Mul(Wire{Val: 1, Q: 3}, Wire{Val: 4, Q: 2})
	if !errors.Is(err, fancy.ErrInvalidArg) {
		t.Errorf("mul: out of range value accepted: %v", err)
	}
}

func TestInitAtomic(t *testing.T) {
	d := New([]uint16{1, 2}, []uint16{3})

	_, _, err := d.Init([]uint16{2}, []uint16{5, 5}, nil)
	if !errors.Is(err, ErrNotEnoughEvaluatorInputs) {
		t.Fatalf("unexpected error %v", err)
	}
	_, _, err = d.Init([]uint16{2, 3}, []uint16{2}, nil)
	if !errors.Is(err, fancy.ErrInvalidArg) {
		t.Fatalf("unexpected error %v", err)
	}

	gb, ev, err := d.Init([]uint16{2, 3}, []uint16{5}, nil)
	if err != nil {
		t.Fatalf("inputs consumed by failed Init: %v", err)
	}
	values := []uint16{gb[0].Val, gb[1].Val, ev[0].Val}
	if diff := cmp.Diff([]uint16{1, 2, 3}, values); diff != "" {
		t.Errorf("inputs mismatch (-want +got):\n%s", diff)
	}
}
