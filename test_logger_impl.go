package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/unitest/harness/framework"
)

// ConsoleTestLogger prints one line per invocation as the run progresses.
type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, status framework.Status, debugOutput framework.CapturedOutput) {
	switch status {
	case framework.StatusFailed:
		color.Red("  FAILED: %s", id)
	case framework.StatusErrored:
		color.Red("  ERRORED: %s", id)
	}
	bad := status == framework.StatusFailed || status == framework.StatusErrored
	if len(debugOutput) > 0 &&
		((bad && c.DebugOutputOnFailure) || (!bad && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  SKIPPED: %s\n", id)
	} else {
		fmt.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}
