package dto

// AskRequest is the knowledge-base chat payload from the browser widget.
type AskRequest struct {
	Message string `json:"message" validate:"required"`
}

// AskResponse carries the blended reply. Field names are part of the
// browser contract and mirror the deployed widget.
type AskResponse struct {
	Reply         string   `json:"reply"`
	Confidence    float64  `json:"confidence"`
	MatchedTopics []string `json:"matchedTopics"`
	Format        string   `json:"format"`
}
