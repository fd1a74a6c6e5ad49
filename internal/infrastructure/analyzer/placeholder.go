// Package analyzer provides interview content generators.
package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/talento-hq/talento/internal/domain/interview"
)

var keywordCatalog = []string{
	"experienced", "motivated", "team", "leadership", "communication",
	"ownership", "deadline", "customer", "mentor", "design", "testing",
	"architecture", "performance", "collaboration",
}

// Placeholder is a deterministic analyzer used until a model-backed one is
// configured. The same answers always produce the same analysis.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

func (p *Placeholder) OpeningQuestions(_ context.Context, jobTitle string) ([]string, error) {
	return []string{
		fmt.Sprintf("Tell me about your experience relevant to %s.", strings.TrimSpace(jobTitle)),
		"What are your key strengths for this role?",
		"Describe a challenging project you worked on.",
	}, nil
}

func (p *Placeholder) Analyze(_ context.Context, _ string, answers []interview.Answer) (interview.Analysis, error) {
	words := 0
	found := map[string]struct{}{}
	for _, a := range answers {
		for _, w := range strings.FieldsFunc(strings.ToLower(a.Answer), func(r rune) bool {
			return !unicode.IsLetter(r)
		}) {
			words++
			for _, k := range keywordCatalog {
				if strings.HasPrefix(w, k) {
					found[k] = struct{}{}
				}
			}
		}
	}

	keywords := make([]string, 0, len(found))
	for k := range found {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	// 50 base, up to +30 for length and +20 for keywords.
	score := 50 + min(words/10, 30) + min(len(keywords)*5, 20)

	analysis := interview.Analysis{
		Summary:         "Candidate demonstrates good understanding of the role requirements.",
		ConfidenceScore: score,
		KeywordAnalysis: keywords,
		Strengths:       []string{"Good communication"},
		Concerns:        []string{},
		Recommendation:  "Recommended for next round",
	}
	if words < 30 {
		analysis.Concerns = append(analysis.Concerns, "Answers are brief")
	} else {
		analysis.Strengths = append(analysis.Strengths, "Detailed answers")
	}
	if len(keywords) == 0 {
		analysis.Concerns = append(analysis.Concerns, "Limited technical depth in some areas")
	}
	if score < 60 {
		analysis.Recommendation = "Needs further evaluation"
	}
	return analysis, nil
}
