package simulation

import (
	"fmt"
	"io"

	"github.com/cyphera/cyphera-feesim/internal/fees"
)

// Fee values are printed with 18 decimals, USD values with 2.

func writeDay(w io.Writer, day uint64, fee, usd float64, unit string) error {
	if _, err := fmt.Fprintf(w, "Day %d: Total Transaction Fee: %.18f %s\n", day, fee, unit); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "(~$%.2f USD)\n", usd)
	return err
}

func writeSummary(w io.Writer, days uint64, totalFee, totalUSD float64, unit string) error {
	if _, err := fmt.Fprintf(w, "\nTotal %s fees over %d days: %.18f %s\n", unit, days, totalFee, unit); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total USD equivalent: $%.2f\n", totalUSD)
	return err
}

// WriteBreakdown prints a single execution plus rollup estimate.
func WriteBreakdown(w io.Writer, b fees.Breakdown, usd float64, unit string) error {
	lines := []struct {
		format string
		value  float64
	}{
		{"Execution Fee: %.18f %s\n", b.ExecutionFee},
		{"Rollup Fee: %.18f %s\n", b.RollupFee},
		{"Total Transaction Fee: %.18f %s\n", b.TotalFee},
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, line.format, line.value, unit); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "(~$%.2f USD)\n", usd)
	return err
}
