// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fortune-kind/fortune-kind/internal/corpus"
	"github.com/fortune-kind/fortune-kind/internal/fortune"
	"github.com/fortune-kind/fortune-kind/internal/issue"
)

// notFoundGuidance is printed on stdout when a fortune directory is missing.
const notFoundGuidance = `Couldn't find "%s", make sure you set FORTUNE_DIR correctly, or verify that you're in a directory with a folder named "%s".`

// renderOutcome writes a successful outcome to w.
func renderOutcome(w io.Writer, outcome fortune.Outcome) error {
	switch outcome.Kind {
	case fortune.OutcomeMatches:
		var sb strings.Builder
		for _, m := range outcome.Matches {
			fmt.Fprintf(&sb, "%s\n%%\n", m)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	default:
		_, err := fmt.Fprintln(w, outcome.Quote)
		return err
	}
}

// renderRunError reports an engine failure and returns the exit error for it.
// A missing directory gets the guidance line on stdout; everything else is
// shown as an ActionableError on stderr.
func (a *App) renderRunError(err error, verbose bool, style string) error {
	var notFound *corpus.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+err.Error())
		fmt.Fprintf(a.stdout, notFoundGuidance+"\n", notFound.Dir, notFound.Dir)
		if verbose {
			a.renderIssue(issue.CorpusNotFoundId, style)
		}
		return &ExitError{Code: 1, Err: err, Rendered: true}
	}

	ae, id := classifyRunError(err)
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+ae.Format(verbose))
	if verbose && id != 0 {
		a.renderIssue(id, style)
	}
	return &ExitError{Code: 1, Err: ae, Rendered: true}
}

// renderConfigError reports a configuration failure.
func (a *App) renderConfigError(err error, verbose bool) error {
	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	if verbose {
		a.renderIssue(issue.ConfigLoadFailedId, "auto")
	}
	return &ExitError{Code: 1, Err: err, Rendered: true}
}

func (a *App) renderIssue(id issue.Id, style string) {
	i := issue.Get(id)
	if i == nil {
		return
	}
	rendered, err := i.Render(style)
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// classifyRunError wraps an engine error with user-facing context and returns
// the catalog issue that explains it, or 0 when there is none.
func classifyRunError(err error) (*issue.ActionableError, issue.Id) {
	switch {
	case errors.Is(err, fortune.ErrEmptyCorpus):
		return issue.NewErrorContext().
			WithOperation("pick a fortune file").
			WithSuggestion("Add fortune files to the fortune directory").
			WithSuggestion("Check that FORTUNE_DIR points at the files, not at their parent").
			Wrap(err).
			Build(), issue.EmptyCorpusId
	case errors.Is(err, corpus.ErrRead):
		return issue.NewErrorContext().
			WithOperation("read fortune file").
			WithSuggestion("Check the file permissions").
			Wrap(err).
			Build(), issue.FortuneFileUnreadableId
	case errors.Is(err, fortune.ErrNoMatchingQuote):
		return issue.NewErrorContext().
			WithOperation("find a short fortune").
			WithSuggestion("Use fewer -s flags").
			WithSuggestion("Use --length N to set an explicit byte limit").
			Wrap(err).
			Build(), issue.NoShortFortuneId
	case errors.Is(err, fortune.ErrEmptyQuoteSet):
		return issue.NewErrorContext().
			WithOperation("select a fortune").
			WithSuggestion("Remove empty files from the fortune directory").
			Wrap(err).
			Build(), 0
	case errors.Is(err, fortune.ErrInvalidPattern):
		return issue.NewErrorContext().
			WithOperation("search fortunes").
			WithSuggestion("Escape regular expression metacharacters with a backslash").
			Wrap(err).
			Build(), issue.InvalidPatternId
	case errors.Is(err, fortune.ErrInvalidCriterion):
		return issue.NewErrorContext().
			WithOperation("parse flags").
			WithSuggestion("--length takes a positive number of bytes").
			Wrap(err).
			Build(), 0
	default:
		return issue.WrapWithOperation(err, "print a fortune"), 0
	}
}
