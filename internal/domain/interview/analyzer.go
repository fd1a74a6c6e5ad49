package interview

import "context"

// Analyzer produces interview content. Implementations may call an external
// model; they must not mutate the interview.
type Analyzer interface {
	// OpeningQuestions returns the questions asked when a candidate starts.
	OpeningQuestions(ctx context.Context, jobTitle string) ([]string, error)

	// Analyze evaluates the submitted answers.
	Analyze(ctx context.Context, jobTitle string, answers []Answer) (Analysis, error)
}
