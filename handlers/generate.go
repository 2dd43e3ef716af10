package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/smartstudy/flashcards-api/apperr"
	"github.com/smartstudy/flashcards-api/generation"
	"github.com/smartstudy/flashcards-api/pdftext"
)

// PageExtractor turns document bytes into per-page text.
type PageExtractor func(data []byte) ([]string, error)

// AIHandler serves the endpoints that call the language-model service.
type AIHandler struct {
	Generator generation.Generator
	Extract   PageExtractor
	ChunkSize int
}

func NewAIHandler(g generation.Generator) *AIHandler {
	return &AIHandler{
		Generator: g,
		Extract:   pdftext.ExtractPages,
		ChunkSize: pdftext.DefaultChunkSize,
	}
}

type flashcardsResponse struct {
	Flashcards []generation.Card `json:"flashcards"`
}

func (h *AIHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		handleErr(w, r, apperr.InvalidInput(err, "Invalid file type. Upload a PDF."))
		return
	}
	defer file.Close()

	if ct := header.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/pdf") {
		handleErr(w, r, apperr.InvalidInput(nil, "Invalid file type. Upload a PDF."))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	pages, err := h.Extract(content)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	chunks, err := pdftext.Chunk(pages, h.ChunkSize)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	cards, err := generation.GenerateFlashcards(r.Context(), h.Generator, chunks)
	if err != nil {
		handleErr(w, r, err)
		return
	}
	if cards == nil {
		cards = []generation.Card{}
	}

	writeJSON(w, http.StatusOK, flashcardsResponse{Flashcards: cards})
}

func (h *AIHandler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleErr(w, r, apperr.Validation("Could not decode request"))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		handleErr(w, r, apperr.Validation("prompt is required"))
		return
	}

	answer, err := generation.Chat(r.Context(), h.Generator, req.Prompt)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": answer})
}
