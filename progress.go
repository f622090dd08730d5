package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/unitest/harness/framework"
)

// progressLogger replaces the per-invocation console lines with a single
// progress bar tracking pass/fail counts.
type progressLogger struct {
	bar    *progressbar.ProgressBar
	passed int
	failed int
	done   int
}

func newProgressLogger(total int) *progressLogger {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(describeProgress(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &progressLogger{bar: bar}
}

func describeProgress(passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}

func (p *progressLogger) TestStarted(framework.TestID) {}

func (p *progressLogger) TestError(framework.TestID, error) {}

func (p *progressLogger) TestFinished(id framework.TestID, status framework.Status, _ framework.CapturedOutput) {
	if status == framework.StatusPassed {
		p.passed++
	} else {
		p.failed++
	}
	p.done++
	_ = p.bar.Set(p.done)
	p.bar.Describe(describeProgress(p.passed, p.failed))
}

func (p *progressLogger) TestSkipped(framework.TestID, string) {
	p.done++
	_ = p.bar.Set(p.done)
}

func (p *progressLogger) Finish() {
	_ = p.bar.Finish()
}
