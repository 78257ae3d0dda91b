package openai

import (
	"fmt"
	"strings"

	"github.com/nuranest/pregnancy-triage/internal/domain/entities"
)

const answerSystemPrompt = `You are a specialized pregnancy health assistant.

You ONLY answer questions related to pregnancy, prenatal care, maternal
health, and closely related topics. If a question is not about pregnancy,
politely redirect the user to ask a pregnancy-related question instead.

Guidelines:
- Base your answer on the reference passages when they are provided.
- Be clear, supportive, and factual. Avoid alarmist language.
- Keep answers concise and practical.
- Always close with a reminder that this is general information and not a
  substitute for advice from a doctor or midwife.`

// buildAnswerUserPrompt embeds retrieved reference passages ahead of the
// question so the model can ground its answer on them.
func buildAnswerUserPrompt(question string, docs []entities.Document) string {
	if len(docs) == 0 {
		return question
	}

	var sb strings.Builder
	sb.WriteString("Reference passages:\n\n")
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.Source
		}
		sb.WriteString(fmt.Sprintf("[%d] %s\n%s\n\n", i+1, title, doc.Text))
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)
	return sb.String()
}
