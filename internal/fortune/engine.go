// SPDX-License-Identifier: MPL-2.0

package fortune

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/fortune-kind/fortune-kind/internal/corpus"
)

const (
	// OutcomeQuote carries a single selected quote.
	OutcomeQuote OutcomeKind = iota
	// OutcomeMatches carries every quote found by a search.
	OutcomeMatches
	// OutcomeHumorousExit carries HumorousMessage; the corpus was not read.
	OutcomeHumorousExit
)

type (
	// OutcomeKind tags an Outcome.
	OutcomeKind int

	// Outcome is the result of a successful Run.
	Outcome struct {
		Kind OutcomeKind
		// Quote is the selected quote, or HumorousMessage.
		Quote string
		// Source is the file Quote was taken from (OutcomeQuote only).
		Source string
		// Matches holds search results (OutcomeMatches only).
		Matches []string
	}

	// Options configures an Engine.
	Options struct {
		// Dirs are the corpus directories, read in order.
		Dirs []string
		// ShortLength is the threshold of a single short flag (default 150).
		ShortLength int
		// Weighted picks files proportionally to their size.
		Weighted bool
		// IgnoreCase makes searches case-insensitive.
		IgnoreCase bool
		// Logger receives debug output. Nil discards.
		Logger *log.Logger
		// Rand overrides the random source. Nil uses the global generator.
		Rand Rand
	}

	// Engine runs selections against a corpus.
	Engine struct {
		dirs       []string
		weighted   bool
		ignoreCase bool
		rng        Rand
		logger     *log.Logger
		reader     *corpus.Reader
		selector   *Selector
	}
)

// New creates an Engine from opts.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = globalRand{}
	}

	return &Engine{
		dirs:       append([]string(nil), opts.Dirs...),
		weighted:   opts.Weighted,
		ignoreCase: opts.IgnoreCase,
		rng:        rng,
		logger:     logger,
		reader:     corpus.NewReader(logger),
		selector:   NewSelector(rng, opts.ShortLength),
	}
}

// Run evaluates c against the corpus.
//
// HumorousExit is answered without touching the filesystem. Errors from the
// corpus reader keep their corpus.ErrNotFound / corpus.ErrRead identity.
func (e *Engine) Run(ctx context.Context, c Criterion) (Outcome, error) {
	if err := c.Validate(); err != nil {
		return Outcome{}, err
	}
	if c.Mode == ModeHumorousExit {
		return Outcome{Kind: OutcomeHumorousExit, Quote: HumorousMessage}, nil
	}

	select {
	case <-ctx.Done():
		return Outcome{}, fmt.Errorf("fortune canceled: %w", ctx.Err())
	default:
	}

	if len(e.dirs) == 0 {
		return Outcome{}, ErrEmptyCorpus
	}

	if c.Mode == ModeSearch {
		return e.search(c.Pattern)
	}
	return e.quote(c)
}

func (e *Engine) search(pattern string) (Outcome, error) {
	// Compile before reading so a bad pattern fails fast.
	s, err := NewSearcher(pattern, e.ignoreCase)
	if err != nil {
		return Outcome{}, err
	}

	texts, err := e.reader.ReadAll(e.dirs...)
	if err != nil {
		return Outcome{}, err
	}

	matches := s.Search(texts)
	e.logger.Debug("search finished", "pattern", pattern, "files", len(texts), "matches", len(matches))
	return Outcome{Kind: OutcomeMatches, Matches: matches}, nil
}

func (e *Engine) quote(c Criterion) (Outcome, error) {
	files, err := e.reader.ListAll(e.dirs...)
	if err != nil {
		return Outcome{}, err
	}

	pick := PickUniform
	if e.weighted {
		pick = PickWeighted
	}
	file, err := pick(e.rng, files)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w in %v", err, e.dirs)
	}
	e.logger.Debug("picked fortune file", "path", file.Path, "size", file.Size, "weighted", e.weighted)

	text, err := e.reader.Read(file.Path)
	if err != nil {
		return Outcome{}, err
	}

	q, err := e.selector.Select(Split(text), c)
	if err != nil {
		return Outcome{}, fmt.Errorf("%s: %w", file.Path, err)
	}
	return Outcome{Kind: OutcomeQuote, Quote: q, Source: file.Path}, nil
}
