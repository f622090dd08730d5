package suites

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/unitest/harness/framework"
	"github.com/unitest/harness/mathx"
)

// NewPrimesSuite exercises parameterization: one registered test expands
// into one independent invocation per argument tuple.
func NewPrimesSuite() *framework.Suite {
	s := framework.NewSuite("primes")

	checkPrime := func(t *framework.T) {
		n := t.Arg("number").IntValue()
		want := t.Arg("expected").BoolValue()
		t.Debug("IsPrime(%d)", n)
		t.AssertEqual(want, mathx.IsPrime(n))
	}

	s.Register("test_is_prime", checkPrime,
		framework.WithParams([]string{"number", "expected"},
			framework.Args(ldvalue.Int(1), ldvalue.Bool(false)),
			framework.Args(ldvalue.Int(2), ldvalue.Bool(true)),
			framework.Args(ldvalue.Int(4), ldvalue.Bool(false)),
			framework.Args(ldvalue.Int(17), ldvalue.Bool(true)),
		))

	s.Register("test_is_prime_large", checkPrime,
		framework.WithParams([]string{"number", "expected"},
			framework.Args(ldvalue.Int(7919), ldvalue.Bool(true)),
			framework.Args(ldvalue.Int(7920), ldvalue.Bool(false)),
		))

	return s
}
