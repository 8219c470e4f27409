package usecase

import (
	"context"
	"strings"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

const exampleMarker = "Example"

// SummarizeProblem resolves raw and splits its description into the examples it contains.
func SummarizeProblem(ctx context.Context, resolver ports.ProblemResolver, raw string) (model.ProblemSummary, error) {
	problem, err := resolver.GetProblemData(ctx, raw)
	if err != nil {
		return model.ProblemSummary{}, err
	}
	return model.ProblemSummary{
		Description: problem.Description,
		Examples:    extractExamples(problem.Description),
	}, nil
}

func extractExamples(description string) []string {
	examples := make([]string, 0)
	start := strings.Index(description, exampleMarker)
	if start < 0 {
		return examples
	}
	for _, part := range strings.Split(description[start:], exampleMarker) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			examples = append(examples, trimmed)
		}
	}
	return examples
}
