// Package sweep estimates the difficulty distribution of a problem type by
// random sampling: draw problems from a factory, deduplicate them, score
// each survivor and bucket the scores at a fixed decimal precision.
package sweep

import (
	"context"
	"math"
	"sort"

	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/problems"
)

// Defaults for distribution snapshots.
const (
	DefaultSampleSize = 100_000
	DefaultPrecision  = 2
)

// Bucket is one row of a distribution: a rounded difficulty level and how
// many unique problems landed on it.
type Bucket struct {
	Level float64
	Count int
}

// Distribution is the outcome of a sampling sweep.
type Distribution struct {
	// Buckets is sorted by ascending level.
	Buckets []Bucket
	// Sampled is the number of random draws performed.
	Sampled int
	// Unique is how many distinct problems survived deduplication; bucket
	// ratios are relative to this.
	Unique int
	// Scored holds every unique problem with its exact (unrounded) level,
	// for reuse as a worksheet candidate pool.
	Scored []problems.Scored
}

// Ratio returns the share of unique problems in the bucket, in percent.
func (d Distribution) Ratio(b Bucket) float64 {
	if d.Unique == 0 {
		return 0
	}
	return float64(b.Count) / float64(d.Unique) * 100
}

// Progress receives sampling progress in [0, 1]. Used to drive a terminal
// spinner; a nil callback disables reporting.
type Progress func(fraction float64)

// Params configures a sweep.
type Params struct {
	SampleSize int
	Precision  int
	OnProgress Progress
}

// Run samples SampleSize random problems from the factory and returns their
// difficulty distribution. The context cancels a long sweep between draws.
func Run(ctx context.Context, factory *problems.Factory, params Params) (Distribution, error) {
	if params.SampleSize < 1 {
		return Distribution{}, apperrors.NewInvalidInputError("sampleSize", "need at least 1, got %d", params.SampleSize)
	}
	if params.Precision < 0 || params.Precision > 8 {
		return Distribution{}, apperrors.NewInvalidInputError("precision", "must be between 0 and 8, got %d", params.Precision)
	}

	// Progress checkpoints are coarse so the callback does not dominate
	// the sweep itself.
	reportEvery := params.SampleSize / 100
	if reportEvery < 1 {
		reportEvery = 1
	}

	samples := make([]problems.Problem, 0, params.SampleSize)
	for len(samples) < params.SampleSize {
		if err := ctx.Err(); err != nil {
			return Distribution{}, err
		}
		problem, ok := factory.Create()
		if !ok || len(problem.Operators) == 0 {
			continue
		}
		samples = append(samples, problem)
		if params.OnProgress != nil && len(samples)%reportEvery == 0 {
			params.OnProgress(float64(len(samples)) / float64(params.SampleSize))
		}
	}

	unique := problems.Deduplicate(samples)

	scale := math.Pow(10, float64(params.Precision))
	counts := make(map[float64]int)
	scored := make([]problems.Scored, 0, len(unique))
	for _, problem := range unique {
		if err := ctx.Err(); err != nil {
			return Distribution{}, err
		}
		level, err := factory.Difficulty(problem)
		if err != nil {
			return Distribution{}, err
		}
		scored = append(scored, problems.Scored{Problem: problem, Level: level})
		counts[math.Round(level*scale)/scale]++
	}

	buckets := make([]Bucket, 0, len(counts))
	for level, count := range counts {
		buckets = append(buckets, Bucket{Level: level, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Level < buckets[j].Level })

	return Distribution{
		Buckets: buckets,
		Sampled: params.SampleSize,
		Unique:  len(unique),
		Scored:  scored,
	}, nil
}
