package match

import (
	"strings"
	"testing"

	"portfolio-chat-be/pkg/knowledge"
)

func testCorpus() *knowledge.Corpus {
	return &knowledge.Corpus{
		Name:           "test",
		Format:         knowledge.FormatPlainText,
		Separator:      " | ",
		Fallback:       "generic self description",
		FollowUpBroad:  " broad suggestion",
		FollowUpNarrow: " narrow suggestion",
		Entries: []knowledge.Entry{
			{ID: "projects", Tags: []string{"projects", "tarag"}, Text: "I built TaraG a travel companion app"},
			{ID: "skills", Tags: []string{"skills", "stack"}, Text: "frontend react typescript tailwind"},
			{ID: "goals", Tags: []string{"intern"}, Text: "seeking real world experience"},
		},
	}
}

func TestSelectNoOverlap(t *testing.T) {
	s := NewScorer(testCorpus(), DefaultConfig())

	selected := s.Select("asdkjASD123")
	if len(selected) != 0 {
		t.Fatalf("Select with no token overlap = %d entries, want 0", len(selected))
	}
	if got := s.Blend(selected); got != "generic self description" {
		t.Errorf("Blend of empty selection = %q, want fallback", got)
	}
	if got := s.Confidence(selected); got != 0 {
		t.Errorf("Confidence of empty selection = %f, want 0", got)
	}
}

func TestSelectExactMatch(t *testing.T) {
	s := NewScorer(testCorpus(), DefaultConfig())

	selected := s.Select("I built TaraG a travel companion app")
	if len(selected) == 0 {
		t.Fatal("exact-match query selected nothing")
	}
	if selected[0].ID != "projects" {
		t.Errorf("top entry = %s, want projects", selected[0].ID)
	}
	if selected[0].Score < 0.99 || selected[0].Score > 1.01 {
		t.Errorf("exact-match score = %f, want ~1", selected[0].Score)
	}
}

func TestSelectCapAndStableOrder(t *testing.T) {
	corpus := &knowledge.Corpus{
		Name:      "cap",
		Format:    knowledge.FormatPlainText,
		Separator: " ",
		Fallback:  "none",
		Entries: []knowledge.Entry{
			{ID: "a", Text: "same exact words"},
			{ID: "b", Text: "same exact words"},
			{ID: "c", Text: "same exact words"},
			{ID: "d", Text: "same exact words"},
		},
	}
	s := NewScorer(corpus, DefaultConfig())

	selected := s.Select("same exact words")
	if len(selected) != 3 {
		t.Fatalf("selected %d entries, want cap of 3", len(selected))
	}
	// Tied scores keep corpus order
	for i, want := range []string{"a", "b", "c"} {
		if selected[i].ID != want {
			t.Errorf("entry %d = %s, want %s", i, selected[i].ID, want)
		}
	}
}

func TestTagBoostPrefixDirection(t *testing.T) {
	s := NewScorer(testCorpus(), TaggedConfig())

	// Query token "internship" has tag "intern" as prefix, so the entry
	// gets boosted above the threshold.
	selected := s.Select("internship experience")
	found := false
	for _, e := range selected {
		if e.ID == "goals" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected goals entry selected via tag boost, got %v", ids(selected))
	}
}

func TestTagBoostNotReversed(t *testing.T) {
	corpus := &knowledge.Corpus{
		Name:      "rev",
		Format:    knowledge.FormatPlainText,
		Separator: " ",
		Fallback:  "none",
		Entries: []knowledge.Entry{
			// Tag longer than the query token: must NOT match
			{ID: "x", Tags: []string{"internship"}, Text: "nothing shared here"},
		},
	}
	s := NewScorer(corpus, TaggedConfig())

	if selected := s.Select("intern"); len(selected) != 0 {
		t.Errorf("tag prefix matched in reverse direction: %v", ids(selected))
	}
}

func TestWeightOrdersTies(t *testing.T) {
	corpus := &knowledge.Corpus{
		Name:      "weights",
		Format:    knowledge.FormatPlainText,
		Separator: " ",
		Fallback:  "none",
		Entries: []knowledge.Entry{
			{ID: "light", Text: "shared words here"},
			{ID: "heavy", Text: "shared words here", Weight: 2.0},
		},
	}
	s := NewScorer(corpus, DefaultConfig())

	selected := s.Select("shared words here")
	if len(selected) != 2 {
		t.Fatalf("selected %d entries, want 2", len(selected))
	}
	if selected[0].ID != "heavy" {
		t.Errorf("top entry = %s, want heavy (weight 2.0)", selected[0].ID)
	}
	if selected[0].Score <= selected[1].Score {
		t.Errorf("weighted score %f not above unweighted %f", selected[0].Score, selected[1].Score)
	}
}

func TestConfidenceMean(t *testing.T) {
	s := NewScorer(testCorpus(), DefaultConfig())

	selected := []ScoredEntry{
		{Entry: knowledge.Entry{ID: "a"}, Score: 0.25},
		{Entry: knowledge.Entry{ID: "b"}, Score: 0.75},
	}
	if got := s.Confidence(selected); got != 0.5 {
		t.Errorf("Confidence = %f, want 0.5", got)
	}
}

func TestFollowUpTiers(t *testing.T) {
	s := NewScorer(testCorpus(), DefaultConfig())

	tests := []struct {
		confidence float64
		want       string
	}{
		{0.0, " broad suggestion"},
		{0.24, " broad suggestion"},
		{0.25, " narrow suggestion"}, // cutoffs are strict less-than
		{0.44, " narrow suggestion"},
		{0.45, ""},
		{0.9, ""},
	}

	for _, tt := range tests {
		if got := s.FollowUp(tt.confidence); got != tt.want {
			t.Errorf("FollowUp(%f) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestBlendJoinsWithSeparator(t *testing.T) {
	s := NewScorer(testCorpus(), DefaultConfig())

	selected := []ScoredEntry{
		{Entry: knowledge.Entry{ID: "a", Text: "  first  "}, Score: 0.5},
		{Entry: knowledge.Entry{ID: "b", Text: "second"}, Score: 0.4},
	}
	if got := s.Blend(selected); got != "first | second" {
		t.Errorf("Blend = %q", got)
	}
}

func TestTaggedCorpusProjectsQuery(t *testing.T) {
	s := NewScorer(knowledge.TaggedCorpus(), TaggedConfig())

	// "projects" never appears in the entry text; the tag boost alone must
	// carry it over the threshold.
	selected := s.Select("tell me about your projects")
	found := false
	for _, e := range selected {
		if e.ID == "projects" {
			found = true
		}
	}
	if !found {
		t.Errorf("projects query did not match projects entry, got %v", ids(selected))
	}

	blended := s.Blend(selected)
	if !strings.Contains(blended, "TaraG") {
		t.Errorf("blended reply missing project content: %q", blended)
	}
}

func TestMarkdownCorpusTaraGQuery(t *testing.T) {
	s := NewScorer(knowledge.MarkdownCorpus(), DefaultConfig())

	selected := s.Select("tell me about the TaraG travel app")
	found := false
	for _, e := range selected {
		if e.ID == "projects" {
			found = true
		}
	}
	if !found {
		t.Errorf("TaraG query did not match projects entry, got %v", ids(selected))
	}
}

func ids(selected []ScoredEntry) []string {
	out := make([]string, 0, len(selected))
	for _, e := range selected {
		out = append(out, e.ID)
	}
	return out
}
