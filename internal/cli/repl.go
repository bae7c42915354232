package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pencalc/pencalc/internal/difficulty"
	"github.com/pencalc/pencalc/internal/factorise"
	"github.com/pencalc/pencalc/internal/format"
	"github.com/pencalc/pencalc/internal/generate"
	"github.com/pencalc/pencalc/internal/orchestration"
	"github.com/pencalc/pencalc/internal/ui"
)

// REPL is an interactive difficulty-estimation session. Expressions typed
// at the prompt are scored immediately; commands adjust the estimator
// parameters.
type REPL struct {
	opts      difficulty.Options
	presenter Presenter
	fact      *factorise.Factoriser
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a REPL with the given estimator options, reading from
// stdin and writing to stdout.
func NewREPL(opts difficulty.Options) *REPL {
	return &REPL{
		opts: opts,
		in:   os.Stdin,
		out:  os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// SetFactoriser sets the factoriser backing the factors and pairs commands.
// Without one, those commands run against a memory-only prime cache.
func (r *REPL) SetFactoriser(f *factorise.Factoriser) { r.fact = f }

// factoriser returns the configured factoriser, creating a memory-only one
// on first use.
func (r *REPL) factoriser() *factorise.Factoriser {
	if r.fact == nil {
		r.fact = factorise.New(nil, nil)
	}
	return r.fact
}

// Start runs the session until the user exits or input reaches EOF.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"pencalc> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.processCommand(ctx, input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%sPencil-and-paper difficulty estimator - interactive mode%s\n\n",
		ui.ColorBold(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a><op><b>%s    - Score an expression, e.g. 47+38, 840/35, 84x32\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scompare <expr>%s - Score every applicable operation for the pair\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfactors <n>%s   - Show the prime factorisation of n\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %spairs <n>%s     - List factor pairs of n, scored as products\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sradix <n>%s     - Change the positional base (currently %d)\n", ui.ColorYellow(), ui.ColorReset(), r.opts.Radix)
	fmt.Fprintf(r.out, "  %scache <n>%s     - Change the recency window size (currently %d)\n", ui.ColorYellow(), ui.ColorReset(), r.opts.CacheSize)
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Leave interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes one line. Returns false when the
// session should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "compare", "cmp":
		if len(args) == 0 {
			fmt.Fprintf(r.out, "%sUsage: compare <expression>%s\n", ui.ColorRed(), ui.ColorReset())
			return true
		}
		r.compare(ctx, strings.Join(args, ""))
	case "factors", "f":
		r.factors(args)
	case "pairs":
		r.pairs(args)
	case "radix":
		r.setRadix(args)
	case "cache":
		r.setCache(args)
	case "status", "st":
		fmt.Fprintf(r.out, "radix=%d, recency window=%d\n", r.opts.Radix, r.opts.CacheSize)
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.score(input)
	}
	return true
}

func (r *REPL) setRadix(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: radix <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	candidate := difficulty.Options{Radix: n, CacheSize: r.opts.CacheSize}
	if err := candidate.Validate(); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.opts = candidate
	fmt.Fprintf(r.out, "radix set to %d\n", n)
}

func (r *REPL) setCache(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: cache <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	candidate := difficulty.Options{Radix: r.opts.Radix, CacheSize: n}
	if err := candidate.Validate(); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.opts = candidate
	fmt.Fprintf(r.out, "recency window set to %d\n", n)
}

// score parses and scores a single expression.
func (r *REPL) score(input string) {
	a, b, op, err := ParseExpression(input)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	result := orchestration.ScoreOperation(op, a, b, r.opts)
	if result.Err != nil {
		r.presenter.HandleError(result.Err, r.out)
		return
	}
	r.presenter.PresentScore(result, r.out)
}

// factors prints the prime factorisation of a positive integer.
func (r *REPL) factors(args []string) {
	n, ok := r.parsePositive(args, "factors")
	if !ok {
		return
	}

	powers, err := r.factoriser().Factorise(n)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	if len(powers) == 0 {
		fmt.Fprintf(r.out, "%d has no prime factors\n", n)
		return
	}

	parts := make([]string, len(powers))
	for i, pp := range powers {
		if pp.Exponent == 1 {
			parts[i] = strconv.FormatUint(pp.Prime, 10)
		} else {
			parts[i] = fmt.Sprintf("%d^%d", pp.Prime, pp.Exponent)
		}
	}
	fmt.Fprintf(r.out, "%d = %s\n", n, strings.Join(parts, " × "))
}

// pairs lists every ordered factor pair of n with its product difficulty.
func (r *REPL) pairs(args []string) {
	n, ok := r.parsePositive(args, "pairs")
	if !ok {
		return
	}

	gen := generate.NewProductsGenerator(r.factoriser(), n)
	count := 0
	for {
		pair, more := gen.Next()
		if !more {
			break
		}
		count++
		score, err := difficulty.ProductOfTwo(pair.A, pair.B, r.opts)
		if err != nil {
			fmt.Fprintf(r.out, "  %d × %d: %s%v%s\n", pair.A, pair.B, ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		fmt.Fprintf(r.out, "  %d × %d = %d  difficulty %s\n", pair.A, pair.B, n, format.Level(score))
	}
	if err := gen.Err(); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%d factor pairs\n", count)
}

func (r *REPL) parsePositive(args []string, usage string) (uint64, bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: %s <n>%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return 0, false
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil || n == 0 {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return 0, false
	}
	return n, true
}

// compare scores every applicable operation for the expression's operands.
func (r *REPL) compare(ctx context.Context, input string) {
	a, b, _, err := ParseExpression(input)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	results := orchestration.ExecuteScoring(ctx, a, b, r.opts)
	orchestration.AnalyzeResults(results, r.presenter, r.out)
}
