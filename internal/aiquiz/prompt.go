package aiquiz

import "fmt"

const (
	defaultCount      = 3
	defaultDifficulty = "medium"
)

const systemPrompt = `
You write multiple-choice questions for timed practice test series.

Rules:
1. Only educational topics (maths, physics, chemistry, biology, history, geography, literature, languages, aptitude, etc.).
2. Every question has exactly 4 options and exactly one correct option.
3. "answer" must be copied verbatim from "options". Do not use letters like "A" or "C".
4. Options must have similar length and structure; wrong options must be plausible.
5. Never reveal the answer in the question text. Explain only in "explanation".
6. Difficulty:
   - easy: definitions and direct recall.
   - medium: applying or interpreting a concept.
   - hard: analysis, multi-step reasoning or calculation.

Reply with pure JSON, no text outside it, in this shape:

[
  {
    "text": "<question>",
    "options": ["<option 1>", "<option 2>", "<option 3>", "<option 4>"],
    "answer": "<one of the options, verbatim>",
    "explanation": "<short explanation of why the answer is correct>"
  }
]

If the topic is not educational reply with [].
`

func BuildUserPrompt(req DraftRequest) string {
	count := req.Count
	if count <= 0 {
		count = defaultCount
	}
	if count > 10 {
		count = 10
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	context := ""
	if req.Context != "" {
		context = fmt.Sprintf("Ground the questions in this exam context: %s. ", req.Context)
	}

	return fmt.Sprintf(
		"Write %d multiple-choice questions about \"%s\" at %s difficulty. %s"+
			"Mix conceptual, applied and analytical styles.",
		count, req.Topic, difficulty, context,
	)
}
