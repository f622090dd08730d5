package framework

import (
	"fmt"
	"strings"
)

// Status classifies the outcome of one invocation.
type Status int

const (
	// StatusPassed means the body ran to completion with every check satisfied.
	StatusPassed Status = iota
	// StatusFailed means at least one check inside the body did not hold.
	StatusFailed
	// StatusErrored means the body hit a condition it did not expect, or
	// could not be prepared for execution at all.
	StatusErrored
	// StatusSkipped means the invocation was excluded by filter parameters.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	case StatusSkipped:
		return "skipped"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// TestID identifies one invocation: the suite name, the registered test
// name, and, for parameterized tests, a label for the bound argument tuple.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// TestResult is the recorded outcome of one invocation. There is exactly
// one TestResult per invocation.
type TestResult struct {
	TestID TestID
	Status Status
	Errors []error
}

// Results accumulates every TestResult of a run. Failures holds the subset
// whose status was Failed or Errored.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Summary is the aggregated count of invocation outcomes.
type Summary struct {
	Passed  int
	Failed  int
	Errored int
	Skipped int
}

func (r Results) Summary() Summary {
	var s Summary
	for _, t := range r.Tests {
		switch t.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusErrored:
			s.Errored++
		case StatusSkipped:
			s.Skipped++
		}
	}
	return s
}
