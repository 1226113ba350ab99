package validate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteReport prints each finding as a bullet line followed by a per-rule
// summary table.
func WriteReport(w io.Writer, issues []Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues found in the dataset!")
		return err
	}

	fmt.Fprintln(w, "Found the following issues:")
	for _, issue := range issues {
		fmt.Fprintf(w, "- %s\n", issue)
	}
	fmt.Fprintln(w)

	table := tablewriter.NewTable(w)
	table.Header([]string{"Rule", "Rows Affected"})
	for _, issue := range issues {
		table.Append([]string{issue.Rule, strconv.Itoa(issue.Count)})
	}
	return table.Render()
}
