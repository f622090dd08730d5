package main

import (
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"

	"github.com/unitest/harness/framework"
)

type commandParams struct {
	marker   string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
	progress bool
	noColor  bool
}

// newCommandParams applies environment defaults; flags override them.
func newCommandParams() *commandParams {
	p := &commandParams{marker: framework.DefaultMarker}
	if v := os.Getenv("UNITEST_MARKER"); v != "" {
		p.marker = v
	}
	p.noColor = os.Getenv("UNITEST_NO_COLOR") != ""
	return p
}

func (p *commandParams) addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.marker, "marker", p.marker, "substring that marks a registered callable as a test")
	cmd.Flags().Var(&p.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	cmd.Flags().Var(&p.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
}

func (p *commandParams) addRunFlags(cmd *cobra.Command) {
	p.addCommonFlags(cmd)
	cmd.Flags().BoolVar(&p.debug, "debug", false, "enable debug logging for failed tests")
	cmd.Flags().BoolVar(&p.debugAll, "debug-all", false, "enable debug logging for all tests")
	cmd.Flags().BoolVar(&p.progress, "progress", false, "show a progress bar instead of per-test lines")
	cmd.Flags().BoolVar(&p.noColor, "no-color", p.noColor, "disable colorized output")
}

func (p *commandParams) addListFlags(cmd *cobra.Command) {
	p.addCommonFlags(cmd)
}

// rerunCommand builds a copy-pasteable command line selecting only the
// invocations that failed or errored.
func rerunCommand(results framework.Results) string {
	b := commandBuilder{os.Args[0], "run"}
	for _, f := range results.Failures {
		b.add("--run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
