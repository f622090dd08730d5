package framework

import (
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestFunc is the body of a registered callable.
type TestFunc func(*T)

// Suite is a registry of named callables and fixture providers. Callables
// are kept in registration order; which of them count as tests is decided
// later by Discover, based on the marker token.
//
// Fixture providers must be registered before any test that declares them,
// so that references can be checked immediately.
type Suite struct {
	name     string
	fixtures map[string]*fixtureDef
	tests    []*testCase
	invalid  []*ConfigurationError
}

type testCase struct {
	name       string
	fn         TestFunc
	fixtures   []string // declared dependency names, in resolution order
	paramNames []string
	paramRows  []Row
}

// Row is one tuple of parameter values, bound positionally to a test's
// declared parameter names.
type Row []ldvalue.Value

// Args builds a Row.
func Args(values ...ldvalue.Value) Row {
	return Row(values)
}

func NewSuite(name string) *Suite {
	return &Suite{
		name:     name,
		fixtures: make(map[string]*fixtureDef),
	}
}

func (s *Suite) Name() string {
	return s.name
}

// RegisterFixture registers an invocation-scoped fixture provider.
// Registering the same name again replaces the earlier provider.
func (s *Suite) RegisterFixture(name string, provider FixtureProvider) {
	s.RegisterScopedFixture(name, ScopeInvocation, provider)
}

// RegisterScopedFixture registers a fixture provider with an explicit scope.
func (s *Suite) RegisterScopedFixture(name string, scope FixtureScope, provider FixtureProvider) {
	s.fixtures[name] = &fixtureDef{name: name, provider: provider, scope: scope}
}

// TestOption modifies a callable being registered.
type TestOption func(*testCase)

// WithFixtures declares the fixture names the test body will ask for.
func WithFixtures(names ...string) TestOption {
	return func(tc *testCase) {
		tc.fixtures = append(tc.fixtures, names...)
	}
}

// WithParams declares parameter names and the argument rows to expand over.
func WithParams(names []string, rows ...Row) TestOption {
	return func(tc *testCase) {
		tc.paramNames = names
		tc.paramRows = rows
	}
}

// Register adds a named callable to the suite. Fixture references and
// parameter arity are validated here rather than at run time; a callable
// that fails validation is excluded from discovery and recorded as a
// configuration error, without affecting any other registration.
func (s *Suite) Register(name string, fn TestFunc, opts ...TestOption) {
	tc := &testCase{name: name, fn: fn}
	for _, opt := range opts {
		opt(tc)
	}
	if err := s.validate(tc); err != nil {
		s.invalid = append(s.invalid, &ConfigurationError{TestName: name, Err: err})
		return
	}
	s.tests = append(s.tests, tc)
}

func (s *Suite) validate(tc *testCase) error {
	for _, name := range tc.fixtures {
		if _, ok := s.fixtures[name]; !ok {
			return fmt.Errorf("no fixture provider registered for %q", name)
		}
	}
	if len(tc.paramRows) > 0 && len(tc.paramNames) == 0 {
		return fmt.Errorf("parameter rows given without parameter names")
	}
	for i, row := range tc.paramRows {
		if len(row) != len(tc.paramNames) {
			return fmt.Errorf("parameter row %d has %d values for %d names",
				i, len(row), len(tc.paramNames))
		}
	}
	return nil
}

// Discover returns the registered callables whose name contains the marker
// token (case-insensitively), preserving registration order. A marker that
// matches nothing yields an empty result, not an error.
func (s *Suite) Discover(marker string) []*testCase {
	marker = strings.ToLower(marker)
	var found []*testCase
	for _, tc := range s.tests {
		if strings.Contains(strings.ToLower(tc.name), marker) {
			found = append(found, tc)
		}
	}
	return found
}

// ConfigErrors returns the registrations that were rejected at validation
// time. The runner reports each of them as one errored result.
func (s *Suite) ConfigErrors() []*ConfigurationError {
	return append([]*ConfigurationError(nil), s.invalid...)
}
