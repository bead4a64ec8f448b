// internal/evaluator/report.go
package evaluator

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport renders the aggregate comparison table, one row per strategy in
// batch order.
func WriteReport(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tbest_score\tbelow10\tmean\tstd")
	for _, r := range results {
		s := Summarize(r)
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\n", s.Name, s.BestScore, s.Below10, s.Mean, s.Std)
	}
	return tw.Flush()
}
