package match

import (
	"sort"
	"strings"

	"portfolio-chat-be/pkg/knowledge"
)

// Config holds the scorer knobs. The historical scoring variants differ only
// in these values, so they are configuration rather than separate scorers.
type Config struct {
	// MinScore filters entries; selection requires score strictly above it.
	MinScore float64

	// TagBoost is added to the lexical score when an entry tag is a prefix
	// of any query token (not the reverse). 0 disables tag matching.
	TagBoost float64

	// MaxResults caps the number of blended entries.
	MaxResults int

	// BroadCutoff / NarrowCutoff drive the follow-up suggestion tiers.
	BroadCutoff  float64
	NarrowCutoff float64
}

// DefaultConfig matches the markdown corpus variant.
func DefaultConfig() Config {
	return Config{
		MinScore:     0.1,
		TagBoost:     0,
		MaxResults:   3,
		BroadCutoff:  0.25,
		NarrowCutoff: 0.45,
	}
}

// TaggedConfig matches the tagged/weighted corpus variant.
func TaggedConfig() Config {
	return Config{
		MinScore:     0.15,
		TagBoost:     0.15,
		MaxResults:   3,
		BroadCutoff:  0.25,
		NarrowCutoff: 0.45,
	}
}

// ScoredEntry pairs a knowledge entry with its relevance for one query.
type ScoredEntry struct {
	knowledge.Entry
	Score float64
}

// Scorer ranks corpus entries against visitor queries.
type Scorer struct {
	corpus  *knowledge.Corpus
	cfg     Config
	vectors []Vector // entry vectors, precomputed once per corpus
}

func NewScorer(corpus *knowledge.Corpus, cfg Config) *Scorer {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 3
	}
	vectors := make([]Vector, len(corpus.Entries))
	for i, e := range corpus.Entries {
		vectors[i] = TextToVector(e.Text)
	}
	return &Scorer{corpus: corpus, cfg: cfg, vectors: vectors}
}

func (s *Scorer) Corpus() *knowledge.Corpus { return s.corpus }

// Select scores every entry and returns those above the threshold, sorted
// descending by score and capped at MaxResults. The sort is stable, so
// tied entries keep their corpus order.
func (s *Scorer) Select(query string) []ScoredEntry {
	queryVec := TextToVector(query)
	queryTokens := Normalize(query)

	var selected []ScoredEntry
	for i, entry := range s.corpus.Entries {
		score := CosineSimilarity(queryVec, s.vectors[i])
		if s.cfg.TagBoost > 0 && tagMatches(entry.Tags, queryTokens) {
			score += s.cfg.TagBoost
		}
		score *= entry.EffectiveWeight()

		if score > s.cfg.MinScore {
			selected = append(selected, ScoredEntry{Entry: entry, Score: score})
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Score > selected[j].Score
	})

	if len(selected) > s.cfg.MaxResults {
		selected = selected[:s.cfg.MaxResults]
	}
	return selected
}

// Blend concatenates the selected entries' text with the corpus separator.
// Empty selections fall back to the corpus self-description instead of an
// empty reply.
func (s *Scorer) Blend(selected []ScoredEntry) string {
	if len(selected) == 0 {
		return s.corpus.Fallback
	}
	parts := make([]string, len(selected))
	for i, e := range selected {
		parts[i] = strings.TrimSpace(e.Text)
	}
	return strings.Join(parts, s.corpus.Separator)
}

// Confidence is the arithmetic mean of the selected scores; 0 when nothing
// was selected (never NaN).
func (s *Scorer) Confidence(selected []ScoredEntry) float64 {
	if len(selected) == 0 {
		return 0
	}
	var sum float64
	for _, e := range selected {
		sum += e.Score
	}
	return sum / float64(len(selected))
}

// FollowUp returns the suggestion appended below the confidence cutoffs:
// broad below BroadCutoff, narrow below NarrowCutoff, nothing above.
func (s *Scorer) FollowUp(confidence float64) string {
	switch {
	case confidence < s.cfg.BroadCutoff:
		return s.corpus.FollowUpBroad
	case confidence < s.cfg.NarrowCutoff:
		return s.corpus.FollowUpNarrow
	default:
		return ""
	}
}

// tagMatches reports whether any tag is a prefix of any query token.
// Prefix direction matters: query token "internship" matches tag "intern",
// but tag "internship" does not match token "intern".
func tagMatches(tags []string, queryTokens []string) bool {
	for _, tag := range tags {
		for _, token := range queryTokens {
			if strings.HasPrefix(token, tag) {
				return true
			}
		}
	}
	return false
}
