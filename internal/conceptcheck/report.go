package conceptcheck

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func verdict(accepted bool) string {
	if accepted {
		return "compiles"
	}
	return "rejected"
}

// WriteTable prints one row per result and returns how many disagreed with
// their expectation.
func WriteTable(w io.Writer, results []Result) (failed int, err error) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tEXPECT\tGOT\tSTATUS\tDIAGNOSTIC")
	for _, r := range results {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Case.Name, verdict(r.Case.Accept), verdict(r.Accepted), status, r.Diagnostic)
	}
	return failed, tw.Flush()
}
