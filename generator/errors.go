// SPDX-License-Identifier: MIT
// Package: pgdfgen/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Configuration problems are marked with ErrInvalidConfig while keeping
//     the underlying cause (e.g. alloc.ErrZeroWeights) reachable by errors.Is.
//   • Context is attached as "<Method>: <detail>".
//   • Nothing here panics at runtime; only option constructors panic on
//     programmer errors (nil logger).

package generator

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidConfig marks every configuration error (negative sizes, ratio
// out of range, bad schema catalog, unusable weights, bad output paths).
// Detected before any output is opened.
var ErrInvalidConfig = errors.New("generator: invalid configuration")

// ErrNoPersons indicates edges were requested but the Person population is
// empty. Detected after the node output is complete; no edge output is produced.
var ErrNoPersons = errors.New("generator: no Person nodes; cannot create typed edges")

// ErrPopulationTooSmall indicates a label needs a Person→Person draw but
// fewer than two Persons exist, so a self-loop could not be avoided.
// New reports it marked as ErrInvalidConfig, before any output is opened.
var ErrPopulationTooSmall = errors.New("generator: Person population too small to avoid self-loops")

// ErrOutput marks I/O failures on the output files or writers.
var ErrOutput = errors.New("generator: output failure")

// configErrorf builds "<method>: <detail>" marked as ErrInvalidConfig.
func configErrorf(method, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfig, method+": "+format, args...)
}

// configCause wraps cause with context and marks it as ErrInvalidConfig.
func configCause(cause error, method, format string, args ...interface{}) error {
	return errors.Mark(errors.Wrapf(cause, method+": "+format, args...), ErrInvalidConfig)
}

// wrapf wraps a sentinel with "<method>: <detail>".
func wrapf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, method+": "+format, args...)
}

// outputError wraps an I/O cause and marks it as ErrOutput.
func outputError(cause error, method, what string) error {
	return errors.Mark(errors.Wrapf(cause, "%s: %s", method, what), ErrOutput)
}
