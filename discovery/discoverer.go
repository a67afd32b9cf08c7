package discovery

import (
	"context"
	"log/slog"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/astro"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/storage"
)

const kindredSimilarityThreshold = 0.60

// Discoverer runs the full wish-to-names pipeline: parse the free-text wish,
// resolve filters, enrich with astrology, and match against the corpus.
type Discoverer struct {
	nameRepository storage.NameRepository
	parser         ai.WishParser
	embedder       ai.Embedder
	calculator     astro.Calculator
	logger         *slog.Logger
}

// Option configures a Discoverer.
type Option func(*Discoverer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Discoverer) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// WithCalculator sets the astrology calculator used for enrichment.
// Without one, vedic enrichment is skipped.
func WithCalculator(calc astro.Calculator) Option {
	return func(d *Discoverer) error {
		d.calculator = calc
		return nil
	}
}

// NewDiscoverer creates a new discoverer.
func NewDiscoverer(
	nameRepository storage.NameRepository,
	provider ai.Provider,
	opts ...Option,
) (*Discoverer, error) {
	if nameRepository == nil {
		return nil, ErrNameRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	d := &Discoverer{
		nameRepository: nameRepository,
		parser:         provider.WishParser(),
		embedder:       provider.Embedder(),
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Discover resolves the wish against the baseline filters and returns
// matching records in corpus order, capped at MaxResults.
// An empty wish skips parsing and uses the baseline filters alone; a
// failing or unreachable parser is logged and falls back the same way.
func (d *Discoverer) Discover(ctx context.Context, wish string, base *core.WishFilters) ([]*core.NameRecord, error) {
	return d.DiscoverWithMonitor(ctx, wish, base, nil)
}

// DiscoverWithMonitor runs Discover with monitoring callbacks at each stage.
func (d *Discoverer) DiscoverWithMonitor(ctx context.Context, wish string, base *core.WishFilters, monitor DiscoveryMonitor) ([]*core.NameRecord, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if base == nil {
		return nil, ErrBaseFiltersRequired
	}
	if err := core.ValidateWishFilters(base); err != nil {
		return nil, err
	}

	monitor.Start(wish)

	// 1. Parse the wish, if one was given. The parse collaborator is
	// advisory: an unreachable parser degrades to a baseline-only search,
	// it never aborts discovery.
	var fragment *ai.ParsedWish
	if wish != "" {
		parsed, err := d.parser.ParseWish(ctx, wish)
		if err != nil {
			d.logger.Warn("wish parser unreachable, using baseline filters only", "err", err)
		} else {
			if parsed.Raw != "" {
				d.logger.Warn("wish produced unparseable output, using baseline filters only")
			}
			fragment = parsed
			monitor.AfterWishParse(parsed)
		}
	}

	// 2. Resolve the canonical filter set.
	filters := ResolveFilters(base, fragment)
	monitor.AfterResolve(filters)

	// 3. Astrological enrichment.
	if reason := enrichmentSkipReason(d.calculator, filters); reason != "" {
		monitor.EnrichmentSkipped(reason)
	} else {
		reading := EnrichFilters(ctx, filters, d.calculator, d.logger)
		monitor.AfterEnrichment(filters, reading)
	}

	// 4. Match against the corpus in insertion order.
	records, err := d.nameRepository.ListNames(ctx)
	if err != nil {
		d.logger.Error("error listing corpus", "err", err)
		return nil, err
	}

	results := MatchNames(filters, records)
	for _, r := range results {
		monitor.Matched(r)
	}

	monitor.Finish(results)
	return results, nil
}

// FindKindred returns corpus names whose meanings are semantically close to
// the query text, ranked by similarity.
func (d *Discoverer) FindKindred(ctx context.Context, query string, maxHits int) ([]*core.NameMatch, error) {
	embedding, err := d.embedder.EmbedText(ctx, query)
	if err != nil {
		d.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	matches, err := d.nameRepository.FindSimilar(ctx, embedding, kindredSimilarityThreshold, maxHits)
	if err != nil {
		d.logger.Error("error querying for similar names", "err", err)
		return nil, err
	}
	return matches, nil
}

// enrichmentSkipReason is the single gate for astrological enrichment.
// It returns the reason enrichment cannot run, or "" when it can.
func enrichmentSkipReason(calc astro.Calculator, filters *core.WishFilters) string {
	switch {
	case calc == nil:
		return "no calculator configured"
	case !filters.VedicMode:
		return "vedic mode off"
	case !filters.Birth.Complete():
		return "birth details incomplete"
	}
	return ""
}
