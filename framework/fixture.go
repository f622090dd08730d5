package framework

// Teardown is the resume half of a two-phase fixture. The runner calls it
// after the invocation body, exactly once, on every exit path.
type Teardown func() error

// FixtureProvider produces one fixture value. Providers that have cleanup
// to do return a non-nil Teardown along with the value; setup-only
// providers return a nil Teardown.
type FixtureProvider func() (value interface{}, teardown Teardown, err error)

// FixtureScope controls how long one resolved fixture value lives.
type FixtureScope int

const (
	// ScopeInvocation resolves a fresh value for every invocation and tears
	// it down as soon as that invocation finishes. Nothing is ever shared
	// between invocations.
	ScopeInvocation FixtureScope = iota

	// ScopeSuite resolves the value once, on first use, shares it across
	// the suite's invocations, and tears it down after the whole run.
	ScopeSuite
)

type fixtureDef struct {
	name     string
	provider FixtureProvider
	scope    FixtureScope
}
