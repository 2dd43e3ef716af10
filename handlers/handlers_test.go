package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/smartstudy/flashcards-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Deck{}, &models.Flashcard{}))

	return db
}

// newTestMux mirrors the route table from main.go. Either handler may
// be nil when a test does not exercise its routes.
func newTestMux(db *DBHandler, ai *AIHandler) *http.ServeMux {
	mux := http.NewServeMux()

	if db != nil {
		mux.HandleFunc("POST /decks/{$}", db.CreateDeck)
		mux.HandleFunc("GET /decks/{$}", db.GetDecks)
		mux.HandleFunc("DELETE /decks/{deckID}", db.DeleteDeck)
		mux.HandleFunc("POST /decks/{deckID}/flashcards/{$}", db.CreateFlashcard)
		mux.HandleFunc("GET /decks/{deckID}/flashcards/{$}", db.GetFlashcardsForDeck)
		mux.HandleFunc("GET /flashcards/{cardID}", db.GetFlashcardByID)
		mux.HandleFunc("PUT /flashcards/{cardID}", db.UpdateFlashcardByID)
		mux.HandleFunc("DELETE /flashcards/{cardID}", db.DeleteFlashcardByID)
	}
	if ai != nil {
		mux.HandleFunc("POST /generate_flashcards", ai.GenerateFlashcards)
		mux.HandleFunc("POST /chatbot", ai.Chatbot)
	}

	return mux
}

func sendJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func parseResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var resp T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

type generatorFunc func(ctx context.Context, prompt string, wantJSON bool) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	return f(ctx, prompt, wantJSON)
}
