package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/unitest/harness/framework"
	"github.com/unitest/harness/suites"
)

func main() {
	_ = godotenv.Load()

	params := newCommandParams()

	rootCmd := &cobra.Command{
		Use:          "unitest",
		Short:        "Runs the unitest demonstration suites",
		SilenceUsage: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run all discovered tests and print a report",
		Run: func(cmd *cobra.Command, args []string) {
			doRun(params)
		},
	}
	params.addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the invocations that would run, one per line",
		Run: func(cmd *cobra.Command, args []string) {
			doList(params)
		},
	}
	params.addListFlags(listCmd)

	rootCmd.AddCommand(runCmd, listCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func doRun(params *commandParams) {
	if params.noColor {
		color.NoColor = true
	}

	framework.PrintFilterDescription(os.Stdout, params.filters)

	var testLogger framework.TestLogger
	var progress *progressLogger
	if params.progress {
		progress = newProgressLogger(countInvocations(params.marker))
		testLogger = progress
	} else {
		testLogger = &ConsoleTestLogger{
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		}
	}

	fmt.Println("Running test suite")

	results := suites.RunAll(framework.RunOptions{
		Marker:     params.marker,
		Filter:     params.filters.AsFilter,
		TestLogger: testLogger,
	})
	if progress != nil {
		progress.Finish()
	}

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun just the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(results))
		os.Exit(1)
	}
}

func doList(params *commandParams) {
	for _, s := range suites.All() {
		for _, inv := range s.Expand(params.marker) {
			if params.filters.AsFilter(inv.ID) {
				fmt.Println(inv.ID)
			}
		}
	}
}

// countInvocations sizes the progress bar: every expanded invocation plus
// every registration that was rejected with a configuration error, since
// those surface as results too.
func countInvocations(marker string) int {
	n := 0
	for _, s := range suites.All() {
		n += len(s.Expand(marker))
		n += len(s.ConfigErrors())
	}
	return n
}
