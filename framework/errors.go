package framework

import "fmt"

// ConfigurationError marks a test that could not be prepared for execution:
// a fixture name with no registered provider, or a parameter row whose
// arity does not match the declared parameter names. It is detected at
// registration time and affects only the test it names; the rest of the
// suite still runs.
type ConfigurationError struct {
	TestName string
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %q: %s", e.TestName, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// assertionError records a failed comparison with both operands, so the
// report can show what was expected against what was actually seen.
type assertionError struct {
	expected interface{}
	actual   interface{}
}

func (e *assertionError) Error() string {
	return fmt.Sprintf("expected: %+v\nactual: %+v", e.expected, e.actual)
}

// expectationError records an expected-condition block that did not observe
// the condition it was declared for.
type expectationError struct {
	want   error
	substr string
	got    error
}

func (e *expectationError) Error() string {
	msg := fmt.Sprintf("expected condition %q", e.want)
	if e.substr != "" {
		msg += fmt.Sprintf(" with message containing %q", e.substr)
	}
	if e.got == nil {
		return msg + ", but no condition was raised"
	}
	return fmt.Sprintf("%s, but got %q", msg, e.got)
}

func (e *expectationError) Unwrap() error {
	return e.got
}
