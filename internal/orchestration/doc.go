// Package orchestration coordinates concurrent scoring of every operation
// that applies to one operand pair and aggregates the results for
// comparison. Presentation is decoupled behind the ResultPresenter
// interface.
package orchestration
