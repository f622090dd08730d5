package framework

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// T is the run context handed to a test body.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner: tests record failures
// against it, helpers abort the body early when continuing is pointless,
// and debug output is captured per invocation so it can be shown only when
// wanted.
type T struct {
	env         *environment
	id          TestID
	fixtures    map[string]interface{}
	args        map[string]ldvalue.Value
	debugLogger CapturingLogger
	failed      bool
	errored     bool
	errs        []error
}

func (t *T) ID() TestID {
	return t.id
}

// Fixture returns the resolved value for one of the test's declared fixture
// names. Asking for a name the test did not declare aborts the invocation
// with an errored outcome.
func (t *T) Fixture(name string) interface{} {
	v, ok := t.fixtures[name]
	if !ok {
		t.abortWithCondition(fmt.Errorf("test did not declare fixture %q", name))
	}
	return v
}

// Arg returns the bound value of one of the test's declared parameters.
func (t *T) Arg(name string) ldvalue.Value {
	v, ok := t.args[name]
	if !ok {
		t.abortWithCondition(fmt.Errorf("test has no parameter %q", name))
	}
	return v
}

// Errorf records a failure and keeps running the body.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := fmt.Errorf(format, args...)
	t.errs = append(t.errs, err)
	t.env.testLogger.TestError(t.id, err)
}

// FailNow aborts the invocation body. A failure should already have been
// recorded via Errorf or one of the assertion helpers.
func (t *T) FailNow() {
	panic(t)
}

// AssertEqual records a failure carrying both operands when expected and
// actual are not deeply equal. It reports whether they were equal.
func (t *T) AssertEqual(expected, actual interface{}) bool {
	if reflect.DeepEqual(expected, actual) {
		return true
	}
	t.failed = true
	err := &assertionError{expected: expected, actual: actual}
	t.errs = append(t.errs, err)
	t.env.testLogger.TestError(t.id, err)
	return false
}

// RequireEqual is AssertEqual, but aborts the body on mismatch.
func (t *T) RequireEqual(expected, actual interface{}) {
	if !t.AssertEqual(expected, actual) {
		t.FailNow()
	}
}

// AssertTrue records a failure with the given message when value is false.
func (t *T) AssertTrue(value bool, format string, args ...interface{}) bool {
	if value {
		return true
	}
	t.Errorf(format, args...)
	return false
}

// RequireNoError aborts with an errored outcome when err is a condition the
// test did not expect.
func (t *T) RequireNoError(err error) {
	if err == nil {
		return
	}
	t.abortWithCondition(fmt.Errorf("unexpected error: %w", err))
}

// ExpectError checks an expected-condition block: err must be non-nil,
// match want per errors.Is, and, when substr is non-empty, carry substr in
// its message. A match counts toward a passing outcome; anything else
// records a failure. It reports whether the condition matched.
func (t *T) ExpectError(err, want error, substr string) bool {
	if err != nil && errors.Is(err, want) &&
		(substr == "" || strings.Contains(err.Error(), substr)) {
		return true
	}
	t.failed = true
	e := &expectationError{want: want, substr: substr, got: err}
	t.errs = append(t.errs, e)
	t.env.testLogger.TestError(t.id, e)
	return false
}

// Debug writes to the invocation's captured debug log.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

func (t *T) DebugLogger() Logger {
	return &t.debugLogger
}

// abortWithCondition records an unexpected condition and unwinds out of the
// invocation body. The runner's deferred handler classifies the outcome.
func (t *T) abortWithCondition(err error) {
	t.errored = true
	t.errs = append(t.errs, err)
	t.env.testLogger.TestError(t.id, err)
	panic(t)
}
