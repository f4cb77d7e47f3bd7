package conformance

import (
	"context"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/wippyai/int-runtime/oracle"
)

// Runner evaluates conformance suites.
type Runner struct {
	log *zap.Logger
	orc *oracle.Oracle
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger directs the runner's output to l instead of the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.log = l }
}

// WithOracle enables differential checking of native-width vectors
// against the wasm reference.
func WithOracle(o *oracle.Oracle) Option {
	return func(r *Runner) { r.orc = o }
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = Logger()
	}
	return r
}

// Report aggregates the outcome of a run.
type Report struct {
	Total   int
	Failed  int
	Results []Result
}

// Run evaluates the given suites, or the full registry when none are
// named, and returns the aggregated report. Failures are logged as they
// are found.
func (r *Runner) Run(ctx context.Context, suites ...Suite) Report {
	if len(suites) == 0 {
		suites = Suites()
	}

	var rep Report
	for _, s := range suites {
		failed := rep.Failed
		for _, c := range s.Cases {
			results := c.Eval()
			if r.orc != nil {
				results = append(results, c.OracleEval(ctx, r.orc)...)
			}
			for _, res := range results {
				rep.Total++
				rep.Results = append(rep.Results, res)
				if !res.Pass {
					rep.Failed++
					r.log.Error("conformance mismatch",
						zap.String("suite", s.Name),
						zap.String("op", res.Op),
						zap.String("a", res.A),
						zap.String("b", res.B),
						zap.String("got", res.Got),
						zap.String("want", res.Want),
					)
				}
			}
		}
		r.log.Debug("suite complete",
			zap.String("suite", s.Name),
			zap.Int("failed", rep.Failed-failed),
		)
	}
	return rep
}

// Digest folds every (operation, operands, result) tuple into a single
// xxhash sum. Two runs that computed identical results produce the same
// digest, so a one-value comparison catches cross-platform divergence.
func (rep Report) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, res := range rep.Results {
		_, _ = h.WriteString(res.Op)
		for _, w := range res.words {
			binary.LittleEndian.PutUint64(buf[:], w)
			_, _ = h.Write(buf[:])
		}
	}
	return h.Sum64()
}
