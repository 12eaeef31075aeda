package match

import (
	"math"
	"strings"
)

// Vector is a bag-of-words term vector: lowercase token -> occurrence count.
type Vector map[string]int

// Normalize lowercases the text, strips everything outside [a-z0-9\s],
// splits on whitespace and drops empty tokens. This is the only
// tokenization rule: no stemming, no stopword removal.
func Normalize(text string) []string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			sb.WriteRune(' ')
		}
	}
	return strings.Fields(sb.String())
}

// TextToVector builds a term-count vector from free text.
func TextToVector(text string) Vector {
	vec := Vector{}
	for _, w := range Normalize(text) {
		vec[w]++
	}
	return vec
}

// CosineSimilarity computes the normalized dot product between two term
// vectors. Returns 0 when either vector has zero magnitude.
func CosineSimilarity(a, b Vector) float64 {
	var dot, magA, magB float64

	for k, av := range a {
		magA += float64(av) * float64(av)
		if bv, ok := b[k]; ok {
			dot += float64(av) * float64(bv)
		}
	}
	for _, bv := range b {
		magB += float64(bv) * float64(bv)
	}

	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
