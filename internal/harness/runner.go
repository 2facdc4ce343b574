package harness

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/verdict-ml/verdict/internal/config"
	"github.com/verdict-ml/verdict/internal/graph"
	"github.com/verdict-ml/verdict/internal/idx"
	"github.com/verdict-ml/verdict/internal/metric"
)

// Runner executes suite cases against a reference-data filesystem.
type Runner struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewRunner creates a runner reading idx data from fsys.
func NewRunner(fsys afero.Fs, log zerolog.Logger) *Runner {
	return &Runner{fs: fsys, log: log}
}

// Run executes every case in order. A failing case is recorded and the
// suite moves on; nothing is retried.
func (r *Runner) Run(cases []config.CaseSpec) *Summary {
	summary := &Summary{}
	for _, c := range cases {
		r.log.Info().Str("case", c.Name).Msg("test start")
		o := r.runCase(c)
		summary.Append(o)

		var evt *zerolog.Event
		if o.Passed {
			evt = r.log.Info()
		} else {
			evt = r.log.Error()
		}
		evt.Str("case", o.Name).
			Bool("passed", o.Passed).
			Float64("err", o.Err).
			Float64("threshold", o.Threshold).
			Dur("elapsed", o.Elapsed).
			Str("detail", o.Msg).
			Msg("test done")
	}
	return summary
}

// runCase evaluates one graph, imports the golden tensor and compares.
// All failures surface as a failed outcome, never a panic or an abort.
func (r *Runner) runCase(c config.CaseSpec) Outcome {
	start := time.Now()
	fail := func(err error) Outcome {
		return Outcome{
			Name:      c.Name,
			Elapsed:   time.Since(start),
			Threshold: c.Threshold,
			Passed:    false,
			Msg:       err.Error(),
		}
	}

	ctx := graph.NewContext()

	// Node inputs attach in lexical name order so two-input ops see a
	// deterministic operand order.
	names := make([]string, 0, len(c.Inputs))
	for name := range c.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t, err := idx.ReadFile(r.fs, c.Inputs[name])
		if err != nil {
			return fail(fmt.Errorf("import input %q: %w", name, err))
		}
		ctx.Set(name, t)
	}

	ctx.AddNode(c.Op, c.Output, names...)
	if err := ctx.Eval(); err != nil {
		return fail(fmt.Errorf("evaluate graph: %w", err))
	}

	got, err := ctx.Get(c.Output)
	if err != nil {
		return fail(fmt.Errorf("lookup output %q: %w", c.Output, err))
	}

	ref, err := idx.ReadFile(r.fs, c.Reference)
	if err != nil {
		return fail(fmt.Errorf("import reference: %w", err))
	}

	mae, err := metric.MeanAbsErr(ref, got)
	if err != nil {
		return fail(fmt.Errorf("compare: %w", err))
	}

	if worst, werr := metric.MaxAbsErr(ref, got); werr == nil {
		rmse, _ := metric.RMSE(ref, got)
		r.log.Debug().Str("case", c.Name).
			Float64("mae", mae).
			Float64("max_abs", worst).
			Float64("rmse", rmse).
			Msg("error metrics")
	}

	return Outcome{
		Name:      c.Name,
		Elapsed:   time.Since(start),
		Err:       mae,
		Threshold: c.Threshold,
		Passed:    Pass(mae, c.Threshold),
	}
}
