package providers

import "context"

// GeneratedAnswer carries the natural-language answer plus the document
// sources it was grounded on.
type GeneratedAnswer struct {
	Text    string
	Sources []string
}

// AnswerGenerator produces a natural-language answer for a pregnancy health
// question. Failures must never prevent the caller from returning the rule
// engine's risk table.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, question string) (*GeneratedAnswer, error)
}
