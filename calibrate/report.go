//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package calibrate

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Print prints the calibration report to w.
func (r *Report) Print(w io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Accuracy").SetAlign(tabulate.ML)
	tab.Header("Primes").SetAlign(tabulate.MR)
	tab.Header("Moduli").SetAlign(tabulate.ML)
	tab.Header("Cost").SetAlign(tabulate.MR)
	tab.Header("Samples").SetAlign(tabulate.MR)
	tab.Header("Errors").SetAlign(tabulate.MR)
	tab.Header("Rate").SetAlign(tabulate.MR)
	tab.Header(fmt.Sprintf("%g%% Bound", r.Confidence*100)).
		SetAlign(tabulate.MR)
	tab.Header("OK").SetAlign(tabulate.MC)

	for _, result := range r.Results {
		row := tab.Row()
		row.Column(string(result.Accuracy))
		row.Column(fmt.Sprintf("%d", result.Primes))
		row.Column(fmt.Sprintf("%v", result.Moduli))
		row.Column(fmt.Sprintf("%d", result.Cost))
		row.Column(fmt.Sprintf("%d", result.Samples))
		row.Column(fmt.Sprintf("%d", result.Errors))
		row.Column(fmt.Sprintf("%.2e", result.Rate()))
		row.Column(fmt.Sprintf("%.2e", result.Upper))
		if result.Accurate() {
			row.Column("✓")
		} else {
			row.Column("✗").SetFormat(tabulate.FmtBold)
		}
	}
	tab.Print(w)

	if r.Timing != nil {
		r.Timing.Print(w)
	}
}
