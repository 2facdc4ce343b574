// Package harness runs golden-output test cases and aggregates their
// outcomes: evaluate a graph, import the reference tensor, compute the
// error metric, decide pass or fail.
package harness

import "math"

// Pass decides a case outcome from its error value. The inequality is
// strict: an error exactly equal to the threshold fails, and NaN always
// fails (NaN compares false against everything).
func Pass(err, threshold float64) bool {
	if math.IsNaN(err) {
		return false
	}
	return err < threshold
}
