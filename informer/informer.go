//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package informer implements a fancy backend that evaluates nothing
// but counts the operations a computation issues and the garbled
// table ciphertexts an arithmetic half-gate garbler would produce for
// them.
package informer

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/tabulate"
	"github.com/zenkuro/swanky/fancy"
)

var (
	_ fancy.Fancy[Wire] = &Informer{}
)

// MaxAsymmetricModulus is the largest small modulus a half-gate
// multiplication of wires with different moduli supports.
const MaxAsymmetricModulus = 8

// ErrAsymmetricModuliMax8 is returned, wrapped in a fancy client
// error, when the smaller modulus of an asymmetric multiplication
// exceeds MaxAsymmetricModulus.
var ErrAsymmetricModuliMax8 = errors.New(
	"the small modulus in a half gate with asymmetric moduli is capped at 8")

// Wire implements an informer wire. It only knows its modulus.
type Wire struct {
	Q uint16
}

// Modulus implements fancy.HasModulus.
func (w Wire) Modulus() uint16 {
	return w.Q
}

func (w Wire) String() string {
	return fmt.Sprintf("mod %d", w.Q)
}

// Stats holds the operation counts.
type Stats struct {
	GarblerInputs   int
	EvaluatorInputs int
	Constants       int
	Adds            int
	Subs            int
	Cmuls           int
	Muls            int
	Projs           int
	Outputs         int
	Ciphertexts     int
}

// Informer implements the cost counting backend.
type Informer struct {
	Verbose bool
	Stats   Stats
}

// New creates a new informer.
func New() *Informer {
	return new(Informer)
}

// Debugf prints debugging message if Verbose debugging is enabled.
func (inf *Informer) Debugf(format string, a ...interface{}) {
	if !inf.Verbose {
		return
	}
	fmt.Printf(format, a...)
}

// Init implements fancy.Fancy.Init.
func (inf *Informer) Init(garblerModuli, evaluatorModuli []uint16,
	reusedDeltas []Wire) ([]Wire, []Wire, error) {

	gb := make([]Wire, len(garblerModuli))
	for i, q := range garblerModuli {
		gb[i] = Wire{Q: q}
	}
	ev := make([]Wire, len(evaluatorModuli))
	for i, q := range evaluatorModuli {
		ev[i] = Wire{Q: q}
	}
	inf.Stats.GarblerInputs += len(gb)
	inf.Stats.EvaluatorInputs += len(ev)
	inf.Debugf("init: #garbler=%d, #evaluator=%d, #reused=%d\n",
		len(gb), len(ev), len(reusedDeltas))
	return gb, ev, nil
}

// Constant implements fancy.Fancy.Constant.
func (inf *Informer) Constant(x, q uint16) (Wire, error) {
	if q < 2 {
		return Wire{}, fancy.InvalidArg("constant", "invalid modulus %d", q)
	}
	if x >= q {
		return Wire{}, fancy.InvalidArg("constant",
			"value %d out of range for modulus %d", x, q)
	}
	inf.Stats.Constants++
	return Wire{Q: q}, nil
}

// Add implements fancy.Fancy.Add.
func (inf *Informer) Add(x, y Wire) (Wire, error) {
	if x.Q != y.Q {
		return Wire{}, fancy.UnequalModuli("add", x.Q, y.Q)
	}
	inf.Stats.Adds++
	return x, nil
}

// Sub implements fancy.Fancy.Sub.
func (inf *Informer) Sub(x, y Wire) (Wire, error) {
	if x.Q != y.Q {
		return Wire{}, fancy.UnequalModuli("sub", x.Q, y.Q)
	}
	inf.Stats.Subs++
	return x, nil
}

// Cmul implements fancy.Fancy.Cmul.
func (inf *Informer) Cmul(x Wire, c uint16) (Wire, error) {
	inf.Stats.Cmuls++
	return x, nil
}

// Mul implements fancy.Fancy.Mul. Each half gate costs qx+qy-2
// ciphertexts and an asymmetric multiplication needs one more to
// support unequal moduli.
func (inf *Informer) Mul(x, y Wire) (Wire, error) {
	small := x.Q
	if y.Q < small {
		small = y.Q
	}
	if x.Q != y.Q && small > MaxAsymmetricModulus {
		return Wire{}, fancy.ClientError("mul",
			errors.Wrapf(ErrAsymmetricModuliMax8, "got %d", small))
	}
	inf.Stats.Muls++
	inf.Stats.Ciphertexts += int(x.Q) + int(y.Q) - 2
	if x.Q != y.Q {
		inf.Stats.Ciphertexts++
	}
	return x, nil
}

// Proj implements fancy.Fancy.Proj. A projection costs q-1
// ciphertexts where q is the input modulus.
func (inf *Informer) Proj(x Wire, q uint16, tt []uint16) (Wire, error) {
	if err := fancy.CheckTruthTable("proj", x.Q, q, tt); err != nil {
		return Wire{}, err
	}
	inf.Stats.Projs++
	inf.Stats.Ciphertexts += int(x.Q) - 1
	return Wire{Q: q}, nil
}

// Output implements fancy.Fancy.Output.
func (inf *Informer) Output(x Wire) error {
	inf.Stats.Outputs++
	return nil
}

// Report prints the operation counts to w.
func (inf *Informer) Report(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Op").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)

	s := inf.Stats
	for _, r := range []struct {
		label string
		count int
	}{
		{"Garbler inputs", s.GarblerInputs},
		{"Evaluator inputs", s.EvaluatorInputs},
		{"Constants", s.Constants},
		{"Additions", s.Adds},
		{"Subtractions", s.Subs},
		{"Scalar multiplications", s.Cmuls},
		{"Multiplications", s.Muls},
		{"Projections", s.Projs},
		{"Outputs", s.Outputs},
	} {
		row := tab.Row()
		row.Column(r.label)
		row.Column(fmt.Sprintf("%d", r.count))
	}
	row := tab.Row()
	row.Column("Ciphertexts").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", s.Ciphertexts)).SetFormat(tabulate.FmtBold)

	tab.Print(w)
}
