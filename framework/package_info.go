// Package framework contains the low-level implementation of a minimal
// test harness that runs outside of the Go test runner.
//
// The general model is:
//
// 1. A Suite is a registry of named callables and named fixture providers.
// Which callables are tests is decided by Discover, which selects the ones
// whose name contains a marker token, in registration order.
//
// 2. A test may declare fixture dependencies by name and a set of parameter
// rows. Parameterized tests expand into one independent invocation per row.
//
// 3. There is a general notion of a test context, T, which is similar to
// Go's *testing.T, allowing pieces of test logic to be associated with a
// test identifier and to accumulate success/failure results.
//
// The domain-specific code that knows what is being tested is responsible
// for registering the fixture providers and test bodies, and for choosing a
// TestLogger to observe the run.
package framework
