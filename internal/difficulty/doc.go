// Package difficulty estimates the cognitive cost of performing an arithmetic
// operation with pencil and paper. Each estimator walks the corresponding
// manual algorithm step by step (column additions threading a carry, column
// subtractions threading a borrow, the full digit grid of long multiplication,
// quotient-digit trials of long division) and accumulates a per-step cost.
// A bounded recency window discounts sub-steps repeated while still "warm" in
// short-term memory. Scores are relative: only their ordering is meaningful,
// and every completed operation scores at least 1.
package difficulty
