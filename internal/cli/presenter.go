package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/format"
	"github.com/pencalc/pencalc/internal/orchestration"
	"github.com/pencalc/pencalc/internal/sweep"
	"github.com/pencalc/pencalc/internal/ui"
)

// Presenter renders scoring results, distributions and errors for the
// command line.
type Presenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = Presenter{}

// PresentScore displays a single scored operation.
func (Presenter) PresentScore(result orchestration.ScoreResult, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s = difficulty %s%s%s  (%s)\n",
		ui.ColorPrimary(), result.Statement, ui.ColorReset(),
		ui.ColorBold(), format.Level(result.Score), ui.ColorReset(),
		format.Duration(result.Duration))
}

// PresentComparisonTable displays all scored operations side by side,
// easiest first. Manual padding keeps alignment correct despite ANSI color
// codes.
func (Presenter) PresentComparisonTable(results []orchestration.ScoreResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxStatementLen := len("Problem")
	maxScoreLen := len("Difficulty")
	for _, res := range results {
		if len(res.Statement) > maxStatementLen {
			maxStatementLen = len(res.Statement)
		}
		if l := len(format.Level(res.Score)); res.Err == nil && l > maxScoreLen {
			maxScoreLen = l
		}
	}

	fmt.Fprintf(out, "%sProblem%s%s   %sDifficulty%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), pad(maxStatementLen-len("Problem")),
		ui.ColorUnderline(), ui.ColorReset(), pad(maxScoreLen-len("Difficulty")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		score := "-"
		status := fmt.Sprintf("%sok%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%s%v%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			score = format.Level(res.Score)
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorPrimary(), res.Statement, ui.ColorReset(), pad(maxStatementLen-len(res.Statement)),
			ui.ColorYellow(), score, ui.ColorReset(), pad(maxScoreLen-len(score)),
			status)
	}
}

// pad returns n spaces, or nothing for non-positive n.
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}

// PresentDistribution displays a sweep distribution as a table of levels,
// counts and shares.
func (Presenter) PresentDistribution(dist sweep.Distribution, out io.Writer) {
	fmt.Fprintf(out, "\nSampled %d problems, %d unique.\n", dist.Sampled, dist.Unique)
	fmt.Fprintf(out, "Difficulty distribution:\n")

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "  Level\tCount\tShare\t\n")
	for _, bucket := range dist.Buckets {
		fmt.Fprintf(tw, "  %s\t%d\t%.2f%%\t\n", format.Level(bucket.Level), bucket.Count, dist.Ratio(bucket))
	}
	tw.Flush()
}

// HandleError reports a scoring failure and returns the matching process
// exit code.
func (Presenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}

	switch {
	case apperrors.IsContextError(err):
		fmt.Fprintf(out, "%sCanceled: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	default:
		var unsupported apperrors.UnsupportedOperationError
		if errors.As(err, &unsupported) {
			fmt.Fprintf(out, "%sUnsupported: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
			break
		}
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitCodeFor(err)
}

// PrintExecutionConfig summarizes the estimator parameters before scoring,
// unless quiet mode suppresses it.
func PrintExecutionConfig(radix, cacheSize int, quiet bool, out io.Writer) {
	if quiet {
		return
	}
	fmt.Fprintf(out, "%sConfiguration%s: radix=%s%d%s, recency window=%s%d%s\n",
		ui.ColorGreen(), ui.ColorReset(),
		ui.ColorYellow(), radix, ui.ColorReset(),
		ui.ColorYellow(), cacheSize, ui.ColorReset())
}
