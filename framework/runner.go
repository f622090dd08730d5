package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// DefaultMarker is the token used to discover tests when RunOptions does
// not name one.
const DefaultMarker = "test"

// RunOptions configures a run. The zero value discovers with DefaultMarker,
// applies no filter, and logs nothing.
type RunOptions struct {
	Marker     string
	Filter     Filter
	TestLogger TestLogger
}

// environment is the per-suite shared state of a run. The fixture registry
// is read-only once the run starts; only suite-scoped fixture caching
// mutates it, and that never crosses into invocation state.
type environment struct {
	suiteName      string
	results        *Results
	testLogger     TestLogger
	fixtures       map[string]*fixtureDef
	suiteVals      map[string]interface{}
	suiteTeardowns []suiteTeardown
}

type suiteTeardown struct {
	name string
	fn   Teardown
}

// RunSuites executes every discovered invocation of every suite, one at a
// time, in order. Per-invocation errors never terminate the run; the
// returned Results account for every invocation, including tests that were
// rejected at registration time.
func RunSuites(suites []*Suite, opts RunOptions) Results {
	marker := opts.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	testLogger := opts.TestLogger
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}

	var results Results
	for _, s := range suites {
		env := &environment{
			suiteName:  s.name,
			results:    &results,
			testLogger: testLogger,
			fixtures:   s.fixtures,
			suiteVals:  make(map[string]interface{}),
		}
		for _, ce := range s.invalid {
			id := TestID{Path: []string{s.name, ce.TestName}}
			testLogger.TestStarted(id)
			testLogger.TestError(id, ce)
			testLogger.TestFinished(id, StatusErrored, nil)
			record(&results, TestResult{TestID: id, Status: StatusErrored, Errors: []error{ce}})
		}
		for _, inv := range s.Expand(marker) {
			runInvocation(env, inv, opts.Filter)
		}
		env.teardownSuiteFixtures()
	}
	return results
}

// Run executes a single suite with the given options.
func (s *Suite) Run(opts RunOptions) Results {
	return RunSuites([]*Suite{s}, opts)
}

func record(results *Results, r TestResult) {
	results.Tests = append(results.Tests, r)
	if r.Status == StatusFailed || r.Status == StatusErrored {
		results.Failures = append(results.Failures, r)
	}
}

func runInvocation(env *environment, inv Invocation, filter Filter) {
	env.testLogger.TestStarted(inv.ID)
	if filter != nil && !filter(inv.ID) {
		env.testLogger.TestSkipped(inv.ID, "excluded by filter parameters")
		record(env.results, TestResult{TestID: inv.ID, Status: StatusSkipped})
		return
	}
	t := &T{
		env:      env,
		id:       inv.ID,
		fixtures: make(map[string]interface{}, len(inv.test.fixtures)),
		args:     inv.args,
	}
	t.run(inv.test)
}

// run resolves the invocation's fixtures, executes the body, and classifies
// the outcome. Teardowns are deferred inside this frame so they execute
// exactly once on every exit path, including panics, before the outcome is
// recorded.
func (t *T) run(tc *testCase) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*T); !ok {
				t.errored = true
				err := fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				t.errs = append(t.errs, err)
				t.env.testLogger.TestError(t.id, err)
			} else if len(t.errs) == 0 {
				t.failed = true
				err := errors.New("test failed with no failure message")
				t.errs = append(t.errs, err)
				t.env.testLogger.TestError(t.id, err)
			}
		}
		status := StatusPassed
		switch {
		case t.errored:
			status = StatusErrored
		case t.failed:
			status = StatusFailed
		}
		t.env.testLogger.TestFinished(t.id, status, t.debugLogger.Output())
		record(t.env.results, TestResult{TestID: t.id, Status: status, Errors: t.errs})
	}()

	for _, name := range tc.fixtures {
		def := t.env.fixtures[name]
		if def.scope == ScopeSuite {
			value, err := t.env.acquireSuiteFixture(def)
			if err != nil {
				t.abortWithCondition(err)
			}
			t.fixtures[name] = value
			continue
		}
		value, teardown, err := def.provider()
		if err != nil {
			t.abortWithCondition(fmt.Errorf("fixture %q setup: %w", name, err))
		}
		if teardown != nil {
			td, fixtureName := teardown, name
			defer func() {
				if err := td(); err != nil {
					t.errored = true
					terr := fmt.Errorf("fixture %q teardown: %w", fixtureName, err)
					t.errs = append(t.errs, terr)
					t.env.testLogger.TestError(t.id, terr)
				}
			}()
		}
		t.fixtures[name] = value
	}

	tc.fn(t)
}

// acquireSuiteFixture resolves a suite-scoped fixture on first use and
// caches it for the rest of the run.
func (e *environment) acquireSuiteFixture(def *fixtureDef) (interface{}, error) {
	if v, ok := e.suiteVals[def.name]; ok {
		return v, nil
	}
	value, teardown, err := def.provider()
	if err != nil {
		return nil, fmt.Errorf("fixture %q setup: %w", def.name, err)
	}
	if teardown != nil {
		e.suiteTeardowns = append(e.suiteTeardowns, suiteTeardown{name: def.name, fn: teardown})
	}
	e.suiteVals[def.name] = value
	return value, nil
}

// teardownSuiteFixtures runs suite-scoped teardowns in reverse acquisition
// order after all of the suite's invocations have finished.
func (e *environment) teardownSuiteFixtures() {
	for i := len(e.suiteTeardowns) - 1; i >= 0; i-- {
		td := e.suiteTeardowns[i]
		if err := td.fn(); err != nil {
			id := TestID{Path: []string{e.suiteName, "fixture " + td.name}}
			e.testLogger.TestError(id, fmt.Errorf("suite fixture teardown: %w", err))
		}
	}
	e.suiteVals = nil
	e.suiteTeardowns = nil
}
