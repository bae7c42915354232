package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/pencalc/pencalc/internal/difficulty"
	apperrors "github.com/pencalc/pencalc/internal/errors"
)

var tracer = otel.Tracer("pencalc.orchestration")

// Operation identifies one pencil-and-paper operation.
type Operation string

// The four scored operations.
const (
	OpSum        Operation = "sum"
	OpDifference Operation = "difference"
	OpProduct    Operation = "product"
	OpDivision   Operation = "division"
)

// symbol returns the operator used in rendered statements.
func (op Operation) symbol() string {
	switch op {
	case OpSum:
		return "+"
	case OpDifference:
		return "-"
	case OpProduct:
		return "×"
	case OpDivision:
		return "÷"
	}
	return "?"
}

// ScoreResult is the outcome of scoring one operation on an operand pair.
type ScoreResult struct {
	// Operation identifies which estimator produced the result.
	Operation Operation
	// Statement is the rendered problem, e.g. "47 + 38".
	Statement string
	// Score is the difficulty estimate. It is meaningless when Err is set.
	Score float64
	// Duration is the time taken to compute the score.
	Duration time.Duration
	// Err contains any error that occurred while scoring.
	Err error
}

// ApplicableOperations returns the operations that make sense for the pair
// (a, b): sum and product always, difference only when it stays
// non-negative, division only for an exact multiple.
func ApplicableOperations(a, b uint64) []Operation {
	ops := []Operation{OpSum, OpProduct}
	if a >= b {
		ops = append(ops, OpDifference)
	}
	if b != 0 && a%b == 0 {
		ops = append(ops, OpDivision)
	}
	return ops
}

// score dispatches one operation to its estimator.
func score(op Operation, a, b uint64, opts difficulty.Options) (float64, error) {
	switch op {
	case OpSum:
		return difficulty.SumOfTwo(a, b, opts)
	case OpDifference:
		v, err := difficulty.Difference(a, b, opts)
		return float64(v), err
	case OpProduct:
		return difficulty.ProductOfTwo(a, b, opts)
	case OpDivision:
		v, err := difficulty.LongDivision(a, b, opts)
		return float64(v), err
	}
	return 0, apperrors.NewInvalidOperationError(string(op), "unknown operation")
}

// ScoreOperation scores a single operation synchronously.
func ScoreOperation(op Operation, a, b uint64, opts difficulty.Options) ScoreResult {
	startTime := time.Now()
	value, err := score(op, a, b, opts)
	return ScoreResult{
		Operation: op,
		Statement: fmt.Sprintf("%d %s %d", a, op.symbol(), b),
		Score:     value,
		Duration:  time.Since(startTime),
		Err:       err,
	}
}

// ExecuteScoring scores every applicable operation for the pair (a, b)
// concurrently and returns one result per operation, in the order
// ApplicableOperations reports them. Individual failures land in the
// result's Err field; the call itself only observes the context.
func ExecuteScoring(ctx context.Context, a, b uint64, opts difficulty.Options) []ScoreResult {
	ops := ApplicableOperations(a, b)
	results := make([]ScoreResult, len(ops))

	g, ctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		idx, operation := i, op
		g.Go(func() error {
			_, span := tracer.Start(ctx, "pencalc.score", trace.WithAttributes(
				attribute.String("operation", string(operation)),
				attribute.Int64("a", int64(a)),
				attribute.Int64("b", int64(b)),
			))
			defer span.End()

			result := ScoreOperation(operation, a, b, opts)
			if result.Err != nil {
				span.SetStatus(codes.Error, result.Err.Error())
			} else {
				span.SetAttributes(attribute.Float64("score", result.Score))
			}

			results[idx] = result
			return nil
		})
	}
	g.Wait()

	return results
}

// ResultPresenter defines how aggregated results reach the user. It
// decouples orchestration from the CLI so other frontends can reuse the
// analysis.
type ResultPresenter interface {
	// PresentComparisonTable displays all scored operations side by side.
	PresentComparisonTable(results []ScoreResult, out io.Writer)

	// HandleError reports a scoring failure and returns its exit code.
	HandleError(err error, out io.Writer) int
}

// AnalyzeResults orders the results from easiest to hardest, presents the
// comparison and returns the process exit code: success when at least one
// operation scored, otherwise the code of the first failure.
func AnalyzeResults(results []ScoreResult, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Score < results[j].Score
	})

	var firstError error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No operation could be scored.\n")
		return presenter.HandleError(firstError, out)
	}
	return apperrors.ExitSuccess
}
