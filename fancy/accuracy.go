//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package fancy

import (
	"fmt"
	"sort"
)

// Accuracy specifies the precision tier of the sign extraction. The
// tier names the fraction of inputs for which the gadgets return the
// exact result.
type Accuracy string

// Supported accuracy tiers.
const (
	Exact      Accuracy = "100%"
	FiveNines  Accuracy = "99.999%"
	FourNines  Accuracy = "99.99%"
	ThreeNines Accuracy = "99.9%"
	TwoNines   Accuracy = "99%"
)

// The mixed-radix moduli have been validated empirically against the
// rounding of CrtFractionalMixedRadix. Changing either one requires
// re-deriving the other.
var accuracyTable = map[Accuracy]map[int][]uint16{
	Exact: {
		3:  {2, 2, 2, 2, 2},
		4:  {3, 26},
		5:  {3, 4, 54},
		6:  {5, 5, 5, 60},
		7:  {5, 6, 6, 7, 86},
		8:  {5, 7, 8, 8, 9, 98},
		9:  {5, 5, 7, 7, 7, 7, 7, 76},
		10: {5, 5, 6, 6, 6, 6, 11, 11, 202},
		11: {5, 5, 5, 5, 5, 6, 6, 6, 7, 7, 8, 150},
	},
	FiveNines: {
		8:  {5, 5, 6, 7, 102},
		9:  {5, 5, 6, 7, 114},
		10: {5, 6, 6, 7, 102},
		11: {5, 5, 6, 7, 130},
	},
	FourNines: {
		6:  {5, 5, 5, 42},
		7:  {4, 5, 6, 88},
		8:  {4, 5, 7, 78},
		9:  {5, 5, 6, 84},
		10: {4, 5, 6, 112},
		11: {7, 11, 174},
	},
	ThreeNines: {
		5:  {3, 5, 30},
		6:  {4, 5, 48},
		7:  {4, 5, 60},
		8:  {3, 5, 78},
		9:  {9, 140},
		10: {7, 190},
	},
	TwoNines: {
		4:  {3, 18},
		5:  {3, 36},
		6:  {3, 40},
		7:  {3, 40},
		8:  {126},
		9:  {138},
		10: {140},
	},
}

// AccuracyError reports an accuracy tier and prime count combination
// that has no mixed-radix moduli.
type AccuracyError struct {
	Accuracy  Accuracy
	NumPrimes int
}

func (e *AccuracyError) Error() string {
	if _, ok := accuracyTable[e.Accuracy]; !ok {
		return fmt.Sprintf("unsupported accuracy %q", string(e.Accuracy))
	}
	return fmt.Sprintf("unknown %s accurate mixed-radix moduli for %d primes",
		e.Accuracy, e.NumPrimes)
}

// ParseAccuracy parses the accuracy tier name.
func ParseAccuracy(name string) (Accuracy, error) {
	acc := Accuracy(name)
	if _, ok := accuracyTable[acc]; !ok {
		return "", &AccuracyError{
			Accuracy: acc,
		}
	}
	return acc, nil
}

// Accuracies returns the supported accuracy tiers from the most to
// the least accurate.
func Accuracies() []Accuracy {
	return []Accuracy{Exact, FiveNines, FourNines, ThreeNines, TwoNines}
}

// SupportedPrimes returns the CRT prime counts the accuracy tier
// supports, in ascending order.
func SupportedPrimes(acc Accuracy) []int {
	var result []int
	for n := range accuracyTable[acc] {
		result = append(result, n)
	}
	sort.Ints(result)
	return result
}

// MixedRadixModuli returns the mixed-radix moduli for the fractional
// mixed-radix sign extraction of a CRT bundle with numPrimes wires at
// the accuracy tier acc.
func MixedRadixModuli(acc Accuracy, numPrimes int) ([]uint16, error) {
	ms, ok := accuracyTable[acc][numPrimes]
	if !ok {
		return nil, &AccuracyError{
			Accuracy:  acc,
			NumPrimes: numPrimes,
		}
	}
	result := make([]uint16, len(ms))
	copy(result, ms)
	return result, nil
}

// MustMixedRadixModuli is like MixedRadixModuli but panics if the
// combination is not supported. It is intended for validating circuit
// configurations at build time.
func MustMixedRadixModuli(acc Accuracy, numPrimes int) []uint16 {
	ms, err := MixedRadixModuli(acc, numPrimes)
	if err != nil {
		panic(err)
	}
	return ms
}
