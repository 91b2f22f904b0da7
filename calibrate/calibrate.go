//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package calibrate measures the error rate of the sign extraction
// gadget for the accuracy tiers. The sign circuit is recorded once
// per tier and prime count, and then computed in plaintext for
// uniformly sampled values.
package calibrate

import (
	"encoding/binary"
	"fmt"
	"io"
	stdmath "math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
	"github.com/zenkuro/swanky/circuit"
	"github.com/zenkuro/swanky/env"
	"github.com/zenkuro/swanky/fancy"
	"github.com/zenkuro/swanky/pkg/math"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result holds the calibration result of one tier and prime count.
type Result struct {
	Accuracy fancy.Accuracy
	Primes   int
	Modulus  uint64
	Moduli   []uint16
	Gates    int
	Cost     int
	Samples  int
	Errors   int
	Mean     float64
	StdDev   float64
	Upper    float64
	Duration time.Duration

	recorded time.Time
}

// Rate returns the observed error rate.
func (r *Result) Rate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Errors) / float64(r.Samples)
}

// Accurate tests if the confidence bound of the error rate is within
// the error rate the tier allows.
func (r *Result) Accurate() bool {
	return r.Upper <= allowedRate(r.Accuracy)
}

func allowedRate(acc fancy.Accuracy) float64 {
	switch acc {
	case fancy.Exact:
		return 0
	case fancy.FiveNines:
		return 1e-5
	case fancy.FourNines:
		return 1e-4
	case fancy.ThreeNines:
		return 1e-3
	default:
		return 1e-2
	}
}

// Report holds the calibration results.
type Report struct {
	Confidence float64
	Results    []*Result
	Timing     *circuit.Timing
}

// Run calibrates the profile entries. The samples are drawn from the
// configuration's entropy source.
func Run(cfg *env.Config, profile *Profile) (*Report, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	z := distuv.UnitNormal.Quantile(1 - (1-profile.Confidence)/2)

	report := &Report{
		Confidence: profile.Confidence,
		Timing:     circuit.NewTiming("Gates", "Cost", "Errors"),
	}
	rand := cfg.GetRandom()

	for _, e := range profile.Entries {
		acc, err := fancy.ParseAccuracy(e.Accuracy)
		if err != nil {
			return nil, err
		}
		for _, n := range e.Primes {
			result, err := run(cfg, rand, profile, acc, n)
			if err != nil {
				return nil, errors.Wrapf(err, "%s with %d primes", acc, n)
			}
			result.Upper = result.Mean + z*result.StdDev/
				stdmath.Sqrt(float64(profile.Batches))
			report.Results = append(report.Results, result)

			sample := report.Timing.Sample(
				fmt.Sprintf("%s/%d", acc, n), []string{
					fmt.Sprintf("%d", result.Gates),
					fmt.Sprintf("%d", result.Cost),
					fmt.Sprintf("%d", result.Errors),
				})
			sample.SubSample("Record", result.recorded)
			sample.SubSample("Compute", sample.End)
			result.Duration = sample.End.Sub(sample.Start)
		}
	}
	return report, nil
}

func run(cfg *env.Config, rand io.Reader, profile *Profile,
	acc fancy.Accuracy, n int) (*Result, error) {

	ps := math.Primes[:n]
	q := math.Product(ps)

	ms, err := fancy.MixedRadixModuli(acc, n)
	if err != nil {
		return nil, err
	}
	circ, err := signCircuit(q, acc)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Accuracy: acc,
		Primes:   n,
		Modulus:  q,
		Moduli:   ms,
		Gates:    circ.NumGates,
		Cost:     circ.Cost(),
		recorded: time.Now(),
	}

	var buf [8]byte
	rates := make(stats.Float64Data, 0, profile.Batches)

	for b := 0; b < profile.Batches; b++ {
		var errs int
		for i := 0; i < profile.Samples; i++ {
			if _, err := io.ReadFull(rand, buf[:]); err != nil {
				return nil, err
			}
			x := binary.BigEndian.Uint64(buf[:]) % q

			out, err := circ.Compute(math.CRT(x, ps), nil)
			if err != nil {
				return nil, err
			}
			var expected uint16
			if x >= q/2 {
				expected = 1
			}
			if out[0] != expected {
				errs++
				if cfg.Verbose {
					fmt.Printf("%s/%d: sign(%d)=%d, expected %d\n",
						acc, n, x, out[0], expected)
				}
			}
		}
		result.Samples += profile.Samples
		result.Errors += errs
		rates = append(rates, float64(errs)/float64(profile.Samples))
	}

	result.Mean, err = stats.Mean(rates)
	if err != nil {
		return nil, err
	}
	result.StdDev, err = stats.StandardDeviationSample(rates)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func signCircuit(q uint64, acc fancy.Accuracy) (
	*circuit.Circuit, error) {

	b := circuit.NewBuilder()
	g := fancy.New[circuit.Ref](b)

	gb, _, err := g.CrtInit([]uint64{q}, nil, nil)
	if err != nil {
		return nil, err
	}
	sign, err := g.CrtSign(gb[0], acc)
	if err != nil {
		return nil, err
	}
	if err := g.Output(sign); err != nil {
		return nil, err
	}
	return b.Circuit(), nil
}
