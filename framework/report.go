package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintResults writes the failure recap followed by the final summary line.
func PrintResults(w io.Writer, results Results) {
	s := results.Summary()
	if len(results.Failures) > 0 {
		color.New(color.FgRed).Fprintf(w, "FAILED TESTS (%d):\n", len(results.Failures))
		for _, f := range results.Failures {
			fmt.Fprintf(w, "  * %s\n", f.TestID)
			for _, err := range f.Errors {
				for _, line := range strings.Split(err.Error(), "\n") {
					fmt.Fprintf(w, "      %s\n", line)
				}
			}
		}
		fmt.Fprintln(w)
	}
	summary := fmt.Sprintf("Ran %d tests: %d passed, %d failed, %d errored, %d skipped",
		len(results.Tests), s.Passed, s.Failed, s.Errored, s.Skipped)
	if results.OK() {
		color.New(color.FgGreen).Fprintln(w, summary)
	} else {
		color.New(color.FgRed).Fprintln(w, summary)
	}
}

// PrintFilterDescription explains up front which invocations the current
// filter parameters will skip.
func PrintFilterDescription(w io.Writer, filters RegexFilters) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return
	}
	fmt.Fprintln(w, "Some tests will be skipped based on the filter criteria for this test run:")
	if filters.MustMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Fprintf(w, "  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Fprintln(w)
}
