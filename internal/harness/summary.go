package harness

import (
	"fmt"
	"io"
	"time"
)

// Outcome records the result of one test case.
type Outcome struct {
	Name      string
	Elapsed   time.Duration
	Err       float64
	Threshold float64
	Passed    bool
	Msg       string // failure detail, empty on pass
}

// Summary aggregates outcomes across one suite run. It is an ordinary
// value threaded through the run, created at suite start and printed
// once at suite end.
type Summary struct {
	outcomes []Outcome
}

// Append records one case outcome.
func (s *Summary) Append(o Outcome) {
	s.outcomes = append(s.outcomes, o)
}

// Outcomes returns the recorded outcomes in run order.
func (s *Summary) Outcomes() []Outcome {
	return s.outcomes
}

// Failed reports whether any case failed.
func (s *Summary) Failed() bool {
	for _, o := range s.outcomes {
		if !o.Passed {
			return true
		}
	}
	return false
}

// Counts returns the number of passed and failed cases.
func (s *Summary) Counts() (passed, failed int) {
	for _, o := range s.outcomes {
		if o.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Print writes the per-case lines and the aggregate tally.
func (s *Summary) Print(w io.Writer) {
	for _, o := range s.outcomes {
		status := "PASS"
		if !o.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "[ %s ] %-40s err=%.6f threshold=%.6f (%s)\n",
			status, o.Name, o.Err, o.Threshold, o.Elapsed.Round(time.Microsecond))
		if o.Msg != "" {
			fmt.Fprintf(w, "         %s\n", o.Msg)
		}
	}

	passed, failed := s.Counts()
	fmt.Fprintf(w, "%d passed, %d failed, %d total\n", passed, failed, passed+failed)
}
