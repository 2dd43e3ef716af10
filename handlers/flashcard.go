package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/smartstudy/flashcards-api/apperr"
	"github.com/smartstudy/flashcards-api/models"
)

func cardIDFromRequest(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("cardID"))
	if err != nil {
		return 0, apperr.Validation("card_id must be an integer")
	}
	return id, nil
}

func (db *DBHandler) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	deckID, err := strconv.Atoi(r.PathValue("deckID"))
	if err != nil {
		handleErr(w, r, apperr.Validation("deck_id must be an integer"))
		return
	}

	var deck models.Deck
	if err := db.WithContext(r.Context()).First(&deck, deckID).Error; err != nil {
		handleErr(w, r, apperr.NotFound("Deck not found"))
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req struct {
		Question      string  `json:"question"`
		Answer        string  `json:"answer"`
		Mnemonic      *string `json:"mnemonic"`
		IsAIGenerated int     `json:"is_ai_generated"`
	}
	if err := decoder.Decode(&req); err != nil {
		handleErr(w, r, apperr.Validation("Could not decode request"))
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		handleErr(w, r, apperr.Validation("question and answer are required"))
		return
	}

	card := models.Flashcard{
		DeckID:        deck.DeckID,
		Question:      req.Question,
		Answer:        req.Answer,
		Mnemonic:      req.Mnemonic,
		IsAIGenerated: req.IsAIGenerated,
	}
	if err := db.WithContext(r.Context()).Create(&card).Error; err != nil {
		handleErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (db *DBHandler) GetFlashcardsForDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := strconv.Atoi(r.PathValue("deckID"))
	if err != nil {
		handleErr(w, r, apperr.Validation("deck_id must be an integer"))
		return
	}

	// A missing deck and an empty deck both yield []; callers that
	// care check deck existence separately.
	cards := []models.Flashcard{}
	if err := db.WithContext(r.Context()).Where("deck_id = ?", deckID).Find(&cards).Error; err != nil {
		handleErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cards)
}

func (db *DBHandler) GetFlashcardByID(w http.ResponseWriter, r *http.Request) {
	cardID, err := cardIDFromRequest(r)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	var card models.Flashcard
	if err := db.WithContext(r.Context()).First(&card, cardID).Error; err != nil {
		handleErr(w, r, apperr.NotFound("Flashcard not found"))
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (db *DBHandler) UpdateFlashcardByID(w http.ResponseWriter, r *http.Request) {
	cardID, err := cardIDFromRequest(r)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	var card models.Flashcard
	if err := db.WithContext(r.Context()).First(&card, cardID).Error; err != nil {
		handleErr(w, r, apperr.NotFound("Flashcard not found"))
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req struct {
		Question      *string `json:"question"`
		Answer        *string `json:"answer"`
		Mnemonic      *string `json:"mnemonic"`
		IsAIGenerated *int    `json:"is_ai_generated"`
	}
	if err := decoder.Decode(&req); err != nil {
		handleErr(w, r, apperr.Validation("Could not decode request"))
		return
	}

	if req.Question != nil && strings.TrimSpace(*req.Question) == "" {
		handleErr(w, r, apperr.Validation("question must not be empty"))
		return
	}
	if req.Answer != nil && strings.TrimSpace(*req.Answer) == "" {
		handleErr(w, r, apperr.Validation("answer must not be empty"))
		return
	}

	// Only supplied fields change; everything else keeps its value.
	if req.Question != nil {
		card.Question = *req.Question
	}
	if req.Answer != nil {
		card.Answer = *req.Answer
	}
	if req.Mnemonic != nil {
		card.Mnemonic = req.Mnemonic
	}
	if req.IsAIGenerated != nil {
		card.IsAIGenerated = *req.IsAIGenerated
	}

	if err := db.WithContext(r.Context()).Save(&card).Error; err != nil {
		handleErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, card)
}

func (db *DBHandler) DeleteFlashcardByID(w http.ResponseWriter, r *http.Request) {
	cardID, err := cardIDFromRequest(r)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	result := db.WithContext(r.Context()).Delete(&models.Flashcard{}, cardID)
	if result.Error != nil {
		handleErr(w, r, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		handleErr(w, r, apperr.NotFound("Flashcard not found"))
		return
	}

	writeJSON(w, http.StatusOK, detailResponse{Detail: "Flashcard deleted successfully"})
}
