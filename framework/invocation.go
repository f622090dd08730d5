package framework

import (
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Invocation is one concrete run of a test: the test case plus one bound
// parameter row. An unparameterized test expands to a single invocation
// with no bound arguments. Invocations are independent of each other; the
// outcome of one never affects another.
type Invocation struct {
	ID   TestID
	test *testCase
	args map[string]ldvalue.Value
}

// Expand discovers the suite's tests with the given marker and produces
// their invocations: tests in registration order, parameter rows in input
// order.
func (s *Suite) Expand(marker string) []Invocation {
	var invs []Invocation
	for _, tc := range s.Discover(marker) {
		invs = append(invs, s.expand(tc)...)
	}
	return invs
}

func (s *Suite) expand(tc *testCase) []Invocation {
	if len(tc.paramRows) == 0 {
		return []Invocation{{
			ID:   TestID{Path: []string{s.name, tc.name}},
			test: tc,
		}}
	}
	invs := make([]Invocation, 0, len(tc.paramRows))
	for _, row := range tc.paramRows {
		args := make(map[string]ldvalue.Value, len(tc.paramNames))
		for i, name := range tc.paramNames {
			args[name] = row[i]
		}
		invs = append(invs, Invocation{
			ID:   TestID{Path: []string{s.name, tc.name, rowLabel(row)}},
			test: tc,
			args: args,
		})
	}
	return invs
}

// rowLabel renders a parameter row the way it appears in test IDs and
// reports, e.g. "17,true".
func rowLabel(row Row) string {
	parts := make([]string, 0, len(row))
	for _, v := range row {
		parts = append(parts, v.JSONString())
	}
	return strings.Join(parts, ",")
}
