// Package mathx holds the primality example subject used by the
// parameterized demo suite.
package mathx

// IsPrime reports whether n is prime. Values below 2 are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
