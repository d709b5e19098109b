// SPDX-License-Identifier: MPL-2.0

// Package fortune implements the quote-selection engine.
//
// A corpus file holds quotes separated by a line containing a single '%'.
// The engine picks a file (weighted by its byte size unless weighting is
// disabled), splits it into quotes and selects one according to a Criterion:
// a uniformly random quote, a quote no longer than a halving length threshold,
// a quote no longer than an explicit byte limit, or every quote matching a
// regular expression across the whole corpus.
//
// The engine never writes to the terminal and never exits the process. Run
// returns a tagged Outcome and the caller decides how to present it.
package fortune
