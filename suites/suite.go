// Package suites defines the built-in demonstration suites that exercise
// the harness against the example subjects.
package suites

import "github.com/unitest/harness/framework"

// All returns the built-in suites in their fixed order.
func All() []*framework.Suite {
	return []*framework.Suite{
		NewUserSuite(),
		NewDatabaseSuite(),
		NewPrimesSuite(),
	}
}

// RunAll runs every built-in suite with the given options.
func RunAll(opts framework.RunOptions) framework.Results {
	return framework.RunSuites(All(), opts)
}
