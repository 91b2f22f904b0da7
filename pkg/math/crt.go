//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package math

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Factor factors the composite modulus q into pairwise-coprime
// prime-power factors. The factors are returned in ascending order of
// their primes so the same q always produces the same moduli
// sequence.
func Factor(q uint64) ([]uint16, error) {
	if q < 2 {
		return nil, fmt.Errorf("invalid composite modulus %d", q)
	}
	var result []uint16
	x := q
	for _, p := range Primes {
		if x == 1 {
			break
		}
		pp := uint64(p)
		if x%pp != 0 {
			continue
		}
		f := uint64(1)
		for x%pp == 0 {
			x /= pp
			f *= pp
		}
		if f > MaxModulus {
			return nil, fmt.Errorf("factor %d^k=%d of %d exceeds modulus range",
				p, f, q)
		}
		result = append(result, uint16(f))
	}
	if x != 1 {
		return nil, fmt.Errorf("can't factor %d: %d has no factors in [2...%d]",
			q, x, Primes[len(Primes)-1])
	}
	return result, nil
}

// Product computes the product of the values.
func Product[T constraints.Integer](xs []T) uint64 {
	result := uint64(1)
	for _, x := range xs {
		result *= uint64(x)
	}
	return result
}

// CRT decomposes x into its residues modulo ps.
func CRT(x uint64, ps []uint16) []uint16 {
	result := make([]uint16, len(ps))
	for i, p := range ps {
		result[i] = uint16(x % uint64(p))
	}
	return result
}

// CRTInv reconstructs the value whose residues modulo ps are xs. The
// result is in [0, Product(ps)).
func CRTInv(xs, ps []uint16) (uint64, error) {
	if len(xs) != len(ps) {
		return 0, fmt.Errorf("residue count %d does not match moduli count %d",
			len(xs), len(ps))
	}
	q := new(big.Int).SetUint64(Product(ps))

	result := new(big.Int)
	tmp := new(big.Int)
	qi := new(big.Int)
	yi := new(big.Int)

	for i, p := range ps {
		bp := big.NewInt(int64(p))
		if xs[i] >= p {
			return 0, fmt.Errorf("residue %d out of range for modulus %d",
				xs[i], p)
		}
		qi.Div(q, bp)
		if yi.ModInverse(qi, bp) == nil {
			return 0, fmt.Errorf("moduli %v are not pairwise coprime", ps)
		}
		tmp.Mul(big.NewInt(int64(xs[i])), qi)
		tmp.Mul(tmp, yi)
		result.Add(result, tmp)
	}
	result.Mod(result, q)

	return result.Uint64(), nil
}

// Inv computes the multiplicative inverse of a modulo q.
func Inv(a, q int64) (int64, error) {
	if q < 1 {
		return 0, fmt.Errorf("invalid modulus %d", q)
	}
	a %= q
	if a < 0 {
		a += q
	}
	oldR, r := a, q
	oldS, s := int64(1), int64(0)
	for r != 0 {
		quot := oldR / r
		oldR, r = r, oldR-quot*r
		oldS, s = s, oldS-quot*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%d has no inverse modulo %d", a, q)
	}
	oldS %= q
	if oldS < 0 {
		oldS += q
	}
	return oldS, nil
}

// AsMixedRadix converts x into its mixed-radix digits under ms, least
// significant digit first. The value is reduced modulo Product(ms).
func AsMixedRadix(x uint64, ms []uint16) []uint16 {
	result := make([]uint16, len(ms))
	for i, m := range ms {
		result[i] = uint16(x % uint64(m))
		x /= uint64(m)
	}
	return result
}

// FromMixedRadix converts the mixed-radix digits ds, least
// significant digit first, into an integer.
func FromMixedRadix(ds, ms []uint16) uint64 {
	var result uint64
	for i := len(ds) - 1; i >= 0; i-- {
		result = result*uint64(ms[i]) + uint64(ds[i])
	}
	return result
}

// PrimesWithWidth returns the smallest prefix of Primes whose product
// is at least 2^bits.
func PrimesWithWidth(bits int) ([]uint16, error) {
	if bits < 1 || bits > MaxWidth {
		return nil, fmt.Errorf("unsupported width %d: must be in [1...%d]",
			bits, MaxWidth)
	}
	limit := uint64(1) << bits
	q := uint64(1)
	var result []uint16
	for _, p := range Primes {
		if q >= limit {
			break
		}
		result = append(result, p)
		q *= uint64(p)
	}
	return result, nil
}

// ModulusWithWidth returns the product of PrimesWithWidth(bits).
func ModulusWithWidth(bits int) (uint64, error) {
	ps, err := PrimesWithWidth(bits)
	if err != nil {
		return 0, err
	}
	return Product(ps), nil
}
