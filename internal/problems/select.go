package problems

import (
	apperrors "github.com/pencalc/pencalc/internal/errors"
)

// GenerateParams bounds a worksheet selection: how many problems, and the
// inclusive difficulty band they must fall in.
type GenerateParams struct {
	Amount   int
	MinLevel float64
	MaxLevel float64
}

// attemptFactor caps the total number of random draws per requested
// candidate, so an impossible band terminates instead of spinning.
const attemptFactor = 200

// Generate draws random problems until it has collected Amount problems
// inside the difficulty band, or the attempt budget runs out. The selection
// repeats no signature, lets no single answer dominate (at most 10% of the
// requested amount), and for two-term problems balances additions against
// subtractions.
func (f *Factory) Generate(params GenerateParams) ([]Scored, error) {
	if params.Amount < 1 {
		return nil, apperrors.NewInvalidInputError("amount", "need at least 1, got %d", params.Amount)
	}
	if params.MaxLevel < params.MinLevel {
		return nil, apperrors.NewInvalidInputError("maxLevel", "band is empty: max %g below min %g", params.MaxLevel, params.MinLevel)
	}

	attemptLimit := params.Amount * 2 * attemptFactor

	balanceSingleStep := f.terms == 2
	plusTarget := params.Amount / 2
	minusTarget := params.Amount / 2
	if params.Amount%2 == 1 {
		if f.rng.Int63n(2) == 0 {
			plusTarget++
		} else {
			minusTarget++
		}
	}

	maxPerAnswer := (params.Amount + 9) / 10
	if maxPerAnswer < 1 {
		maxPerAnswer = 1
	}

	collected := make([]Scored, 0, params.Amount)
	answerCounts := make(map[uint64]int)
	seen := make(map[string]struct{})
	plusCount, minusCount := 0, 0

	for attempts := 0; attempts < attemptLimit && len(collected) < params.Amount; attempts++ {
		problem, ok := f.Create()
		if !ok || len(problem.Operators) == 0 {
			continue
		}
		if _, dup := seen[problem.Signature()]; dup {
			continue
		}

		level, err := f.Difficulty(problem)
		if err != nil {
			return nil, err
		}
		if level < params.MinLevel || level > params.MaxLevel {
			continue
		}

		answer := problem.Answer()
		if answerCounts[answer] >= maxPerAnswer {
			continue
		}

		leading := problem.Operators[0]
		if balanceSingleStep {
			if leading == Plus && plusCount >= plusTarget {
				continue
			}
			if leading == Minus && minusCount >= minusTarget {
				continue
			}
		}

		seen[problem.Signature()] = struct{}{}
		collected = append(collected, Scored{Problem: problem, Level: level})
		answerCounts[answer]++
		if balanceSingleStep {
			if leading == Plus {
				plusCount++
			} else {
				minusCount++
			}
		}
	}

	return collected, nil
}
