package knowledge

// Format indicates how a corpus expects its replies to be rendered.
type Format string

const (
	FormatMarkdown  Format = "markdown"
	FormatPlainText Format = "plain-text"
)

// Entry is a single topic snippet the scorer matches against.
// Tags and Weight are optional; Weight defaults to 1.0 when zero.
type Entry struct {
	ID     string   `json:"id"`
	Text   string   `json:"text"`
	Tags   []string `json:"tags,omitempty"`
	Weight float64  `json:"weight,omitempty"`
}

// Corpus is the fixed knowledge base plus its presentation strings.
// Loaded once at startup, immutable afterwards.
type Corpus struct {
	Name    string  `json:"name"`
	Format  Format  `json:"format"`
	Entries []Entry `json:"entries"`

	// Separator joins the selected entries into one blended reply.
	Separator string `json:"separator"`

	// Fallback is returned when no entry clears the score threshold.
	Fallback string `json:"fallback"`

	// FollowUpBroad / FollowUpNarrow are appended below the low / mid
	// confidence cutoffs respectively.
	FollowUpBroad  string `json:"follow_up_broad"`
	FollowUpNarrow string `json:"follow_up_narrow"`
}

// EffectiveWeight returns the entry weight multiplier, defaulting to 1.0.
func (e Entry) EffectiveWeight() float64 {
	if e.Weight == 0 {
		return 1.0
	}
	return e.Weight
}
