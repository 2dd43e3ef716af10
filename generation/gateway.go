package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/smartstudy/flashcards-api/apperr"
)

const flashcardInstruction = `
You generate flashcards from the given text.

Requirements:
- Use only information contained in the text.
- Create concise flashcards.
- Each flashcard must have:
    question
    answer
    mnemonic (optional)
- No commentary or explanations.
- Output strictly in this JSON format:

{
    "flashcards": [
        {
        "question": "...",
        "answer": "...",
        "mnemonic": "..."
        }
    ]
}

Text:
<<<START>>>
{content}
<<<END>>>
`

const chatInstruction = `
You are a friendly chatbot and will answer the user's question briefly.
Output strictly in this JSON format:

{
    "response": "..."
}

Text:
<<<START>>>
{user_prompt}
<<<END>>>
`

// Card is a generated question/answer pair. The model is asked for a
// mnemonic too but it is not part of the returned shape.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateFlashcards prompts the model once per chunk and concatenates
// the parsed results in chunk order. A chunk whose response is not
// valid JSON fails the whole call; there is no partial result. Cards
// lacking a non-empty question or answer after trimming are dropped.
func GenerateFlashcards(ctx context.Context, g Generator, chunks []string) ([]Card, error) {
	var all []Card

	for _, chunk := range chunks {
		prompt := strings.Replace(flashcardInstruction, "{content}", chunk, 1)

		raw, err := g.Generate(ctx, prompt, true)
		if err != nil {
			return nil, apperr.Generation(err, "Flashcard generation failed: %v", err)
		}

		var parsed struct {
			Flashcards []struct {
				Question string `json:"question"`
				Answer   string `json:"answer"`
			} `json:"flashcards"`
		}
		if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
			return nil, apperr.Generation(err, "Flashcard model returned invalid JSON: %v", err)
		}

		for _, c := range parsed.Flashcards {
			q := strings.TrimSpace(c.Question)
			a := strings.TrimSpace(c.Answer)
			if q != "" && a != "" {
				all = append(all, Card{Question: q, Answer: a})
			}
		}
	}

	return all, nil
}

// Chat answers a free-form prompt and returns the model's reply text.
func Chat(ctx context.Context, g Generator, prompt string) (string, error) {
	instruction := strings.Replace(chatInstruction, "{user_prompt}", prompt, 1)

	raw, err := g.Generate(ctx, instruction, true)
	if err != nil {
		return "", apperr.Generation(err, "Chat generation failed: %v", err)
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err != nil {
		return "", apperr.Generation(err, "Model returned invalid JSON")
	}

	return parsed.Response, nil
}
