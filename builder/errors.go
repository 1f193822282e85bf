// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the call site, never baked into the sentinel.

package builder

import "errors"

// ErrSourceUnavailable indicates the text source could not be read (missing
// file, I/O failure, nil reader). It is the only failure class that escapes
// the core; every query engine degrades to a descriptive result instead.
// Usage: if errors.Is(err, ErrSourceUnavailable) { /* report load failure */ }.
var ErrSourceUnavailable = errors.New("builder: text source unavailable")

// ErrConstructFailed indicates the graph could not be populated, e.g. the
// build was cancelled through its context before finishing.
var ErrConstructFailed = errors.New("builder: construction failed")
