package framework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusByName(results Results) map[string]Status {
	out := make(map[string]Status)
	for _, r := range results.Tests {
		out[r.TestID.String()] = r.Status
	}
	return out
}

func TestRunClassifiesOutcomes(t *testing.T) {
	errDuplicate := errors.New("duplicate user")

	s := NewSuite("demo")
	s.Register("test_passes", func(ft *T) {
		ft.AssertEqual(2, 1+1)
	})
	s.Register("test_fails_assertion", func(ft *T) {
		ft.AssertEqual(3, 1+1)
	})
	s.Register("test_unexpected_error", func(ft *T) {
		ft.RequireNoError(errors.New("boom"))
		ft.Errorf("should not get here")
	})
	s.Register("test_panics", func(ft *T) {
		panic("kaboom")
	})
	s.Register("test_expected_condition", func(ft *T) {
		err := fmt.Errorf("%w: second insert", errDuplicate)
		ft.ExpectError(err, errDuplicate, "duplicate")
	})
	s.Register("test_expected_condition_missing", func(ft *T) {
		ft.ExpectError(nil, errDuplicate, "duplicate")
	})

	results := s.Run(RunOptions{})
	statuses := statusByName(results)

	assert.Equal(t, StatusPassed, statuses["demo/test_passes"])
	assert.Equal(t, StatusFailed, statuses["demo/test_fails_assertion"])
	assert.Equal(t, StatusErrored, statuses["demo/test_unexpected_error"])
	assert.Equal(t, StatusErrored, statuses["demo/test_panics"])
	assert.Equal(t, StatusPassed, statuses["demo/test_expected_condition"])
	assert.Equal(t, StatusFailed, statuses["demo/test_expected_condition_missing"])

	assert.Equal(t, Summary{Passed: 2, Failed: 2, Errored: 2}, results.Summary())
	assert.False(t, results.OK())
}

func TestFailedAssertionCapturesBothOperands(t *testing.T) {
	s := NewSuite("demo")
	s.Register("test_mismatch", func(ft *T) {
		ft.AssertEqual("Alice", "Bob")
	})

	results := s.Run(RunOptions{})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	msg := results.Failures[0].Errors[0].Error()
	assert.Contains(t, msg, "expected: Alice")
	assert.Contains(t, msg, "actual: Bob")
}

func TestOneFailureDoesNotAffectOtherInvocations(t *testing.T) {
	s := NewSuite("demo")
	s.Register("test_first_fails", func(ft *T) { ft.Errorf("nope") })
	s.Register("test_second_passes", func(ft *T) {})
	s.Register("test_third_errors", func(ft *T) { ft.RequireNoError(errors.New("x")) })
	s.Register("test_fourth_passes", func(ft *T) {})

	results := s.Run(RunOptions{})
	require.Len(t, results.Tests, 4)
	assert.Equal(t, Summary{Passed: 2, Failed: 1, Errored: 1}, results.Summary())
}

func TestTeardownRunsExactlyOncePerInvocationOnEveryOutcome(t *testing.T) {
	var setups, teardowns int
	s := NewSuite("demo")
	s.RegisterFixture("counter", func() (interface{}, Teardown, error) {
		setups++
		return setups, func() error {
			teardowns++
			return nil
		}, nil
	})

	s.Register("test_passes", func(ft *T) {}, WithFixtures("counter"))
	s.Register("test_fails", func(ft *T) { ft.Errorf("nope") }, WithFixtures("counter"))
	s.Register("test_errors", func(ft *T) { panic("kaboom") }, WithFixtures("counter"))

	results := s.Run(RunOptions{})
	assert.Len(t, results.Tests, 3)
	assert.Equal(t, 3, setups)
	assert.Equal(t, 3, teardowns)
}

func TestFixtureValuesAreNeverSharedAcrossInvocations(t *testing.T) {
	type box struct{ items []string }

	s := NewSuite("demo")
	s.RegisterFixture("box", func() (interface{}, Teardown, error) {
		return &box{}, nil, nil
	})
	s.Register("test_mutates", func(ft *T) {
		b := ft.Fixture("box").(*box)
		b.items = append(b.items, "added")
	}, WithFixtures("box"))
	s.Register("test_sees_fresh_value", func(ft *T) {
		b := ft.Fixture("box").(*box)
		ft.AssertEqual(0, len(b.items))
	}, WithFixtures("box"))

	results := s.Run(RunOptions{})
	assert.True(t, results.OK())
	assert.Equal(t, Summary{Passed: 2}, results.Summary())
}

func TestSuiteScopedFixtureResolvesOnceAndTearsDownAfterRun(t *testing.T) {
	var setups, teardowns int
	type shared struct{ hits int }

	s := NewSuite("demo")
	s.RegisterScopedFixture("shared", ScopeSuite, func() (interface{}, Teardown, error) {
		setups++
		return &shared{}, func() error {
			teardowns++
			return nil
		}, nil
	})
	s.Register("test_first", func(ft *T) {
		ft.Fixture("shared").(*shared).hits++
	}, WithFixtures("shared"))
	s.Register("test_second", func(ft *T) {
		ft.AssertEqual(1, ft.Fixture("shared").(*shared).hits)
	}, WithFixtures("shared"))

	results := s.Run(RunOptions{})
	assert.True(t, results.OK())
	assert.Equal(t, 1, setups)
	assert.Equal(t, 1, teardowns)
}

func TestFixtureSetupErrorIsErroredAndEarlierTeardownsStillRun(t *testing.T) {
	var teardowns int
	s := NewSuite("demo")
	s.RegisterFixture("good", func() (interface{}, Teardown, error) {
		return "ok", func() error {
			teardowns++
			return nil
		}, nil
	})
	s.RegisterFixture("bad", func() (interface{}, Teardown, error) {
		return nil, nil, errors.New("cannot connect")
	})
	s.Register("test_never_runs", func(ft *T) {
		ft.Errorf("body should not execute")
	}, WithFixtures("good", "bad"))

	results := s.Run(RunOptions{})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, StatusErrored, results.Tests[0].Status)
	require.Len(t, results.Tests[0].Errors, 1)
	assert.Contains(t, results.Tests[0].Errors[0].Error(), `fixture "bad" setup`)
	assert.Equal(t, 1, teardowns)
}

func TestTeardownErrorMarksInvocationErrored(t *testing.T) {
	s := NewSuite("demo")
	s.RegisterFixture("flaky", func() (interface{}, Teardown, error) {
		return "v", func() error {
			return errors.New("cleanup failed")
		}, nil
	})
	s.Register("test_body_passes", func(ft *T) {}, WithFixtures("flaky"))

	results := s.Run(RunOptions{})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, StatusErrored, results.Tests[0].Status)
}

func TestConfigurationErrorSurfacesAsErroredResult(t *testing.T) {
	s := NewSuite("demo")
	s.Register("test_unresolved", noop, WithFixtures("missing"))
	s.Register("test_fine", noop)

	results := s.Run(RunOptions{})
	statuses := statusByName(results)
	assert.Equal(t, StatusErrored, statuses["demo/test_unresolved"])
	assert.Equal(t, StatusPassed, statuses["demo/test_fine"])

	var ce *ConfigurationError
	require.Len(t, results.Failures, 1)
	require.True(t, errors.As(results.Failures[0].Errors[0], &ce))
	assert.Equal(t, "test_unresolved", ce.TestName)
}

func TestFilteredInvocationsAreSkipped(t *testing.T) {
	s := NewSuite("demo")
	s.Register("test_wanted", noop)
	s.Register("test_unwanted", noop)

	results := s.Run(RunOptions{
		Filter: func(id TestID) bool { return id.String() != "demo/test_unwanted" },
	})
	statuses := statusByName(results)
	assert.Equal(t, StatusPassed, statuses["demo/test_wanted"])
	assert.Equal(t, StatusSkipped, statuses["demo/test_unwanted"])
	assert.Equal(t, Summary{Passed: 1, Skipped: 1}, results.Summary())
	assert.True(t, results.OK())
}

func TestRunTwiceYieldsIdenticalCounts(t *testing.T) {
	build := func() *Suite {
		s := NewSuite("demo")
		s.RegisterFixture("box", func() (interface{}, Teardown, error) {
			return &[]int{}, nil, nil
		})
		s.Register("test_ok", func(ft *T) {
			b := ft.Fixture("box").(*[]int)
			*b = append(*b, 1)
			ft.AssertEqual(1, len(*b))
		}, WithFixtures("box"))
		s.Register("test_fails", func(ft *T) { ft.Errorf("always") })
		return s
	}

	first := build().Run(RunOptions{})
	second := build().Run(RunOptions{})
	assert.Equal(t, first.Summary(), second.Summary())
}

func TestFailNowStopsBodyButNotRun(t *testing.T) {
	var reached bool
	s := NewSuite("demo")
	s.Register("test_aborts", func(ft *T) {
		ft.Errorf("stop here")
		ft.FailNow()
		reached = true
	})
	s.Register("test_still_runs", noop)

	results := s.Run(RunOptions{})
	statuses := statusByName(results)
	assert.False(t, reached)
	assert.Equal(t, StatusFailed, statuses["demo/test_aborts"])
	assert.Equal(t, StatusPassed, statuses["demo/test_still_runs"])
}

func TestDefaultMarkerIsTest(t *testing.T) {
	s := NewSuite("demo")
	s.Register("test_found", noop)
	s.Register("helper_ignored", noop)

	results := s.Run(RunOptions{})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, "demo/test_found", results.Tests[0].TestID.String())
}

func TestLoggerReceivesLifecycleEvents(t *testing.T) {
	var events []string
	logger := &recordingTestLogger{events: &events}

	s := NewSuite("demo")
	s.Register("test_fails", func(ft *T) { ft.Errorf("nope") })

	s.Run(RunOptions{TestLogger: logger})
	assert.Equal(t, []string{
		"started demo/test_fails",
		"error demo/test_fails: nope",
		"finished demo/test_fails: failed",
	}, events)
}

type recordingTestLogger struct {
	events *[]string
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	*l.events = append(*l.events, "started "+id.String())
}

func (l *recordingTestLogger) TestError(id TestID, err error) {
	*l.events = append(*l.events, fmt.Sprintf("error %s: %s", id, err))
}

func (l *recordingTestLogger) TestFinished(id TestID, status Status, _ CapturedOutput) {
	*l.events = append(*l.events, fmt.Sprintf("finished %s: %s", id, status))
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	*l.events = append(*l.events, "skipped "+id.String())
}
