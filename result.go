//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package swanky implements gadgets for garbled arithmetic circuits
// over CRT encoded integers. This package decodes the revealed
// output residues back into integers.
package swanky

import (
	"fmt"
	"io"
	"strconv"

	"github.com/zenkuro/swanky/pkg/math"
)

// Results reconstructs the output integers from the revealed residues.
// The outputs hold the residues of each composite modulus in
// composites, in the order of the composite's factors.
func Results(outputs []uint16, composites []uint64) ([]uint64, error) {
	var result []uint64

	for idx, q := range composites {
		ps, err := math.Factor(q)
		if err != nil {
			return nil, fmt.Errorf("result %d: %v", idx, err)
		}
		if len(outputs) < len(ps) {
			return nil, fmt.Errorf("result %d: not enough outputs: got %d, need %d",
				idx, len(outputs), len(ps))
		}
		v, err := math.CRTInv(outputs[:len(ps)], ps)
		if err != nil {
			return nil, fmt.Errorf("result %d: %v", idx, err)
		}
		result = append(result, v)
		outputs = outputs[len(ps):]
	}
	if len(outputs) != 0 {
		return nil, fmt.Errorf("%d unused outputs", len(outputs))
	}
	return result, nil
}

// SignedResults is like Results but it maps the values in [Q/2, Q)
// to the negative integers [-Q/2, 0).
func SignedResults(outputs []uint16, composites []uint64) ([]int64, error) {
	values, err := Results(outputs, composites)
	if err != nil {
		return nil, err
	}
	result := make([]int64, len(values))
	for i, v := range values {
		q := composites[i]
		if v >= q/2 {
			result[i] = -int64(q - v)
		} else {
			result[i] = int64(v)
		}
	}
	return result, nil
}

// PrintResults prints the result values to w. If signed is true, the
// values are printed as signed integers.
func PrintResults(w io.Writer, outputs []uint16, composites []uint64,
	signed bool, base int) error {

	if base == 0 {
		base = 10
	}
	if signed {
		values, err := SignedResults(outputs, composites)
		if err != nil {
			return err
		}
		for idx, v := range values {
			fmt.Fprintf(w, "Result[%d]: %s\n", idx,
				strconv.FormatInt(v, base))
		}
		return nil
	}
	values, err := Results(outputs, composites)
	if err != nil {
		return err
	}
	for idx, v := range values {
		fmt.Fprintf(w, "Result[%d]: %s\n", idx, strconv.FormatUint(v, base))
	}
	return nil
}
