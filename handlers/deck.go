package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/smartstudy/flashcards-api/apperr"
	"github.com/smartstudy/flashcards-api/models"
)

type DBHandler struct {
	*gorm.DB
}

type deckResponse struct {
	DeckID      uint    `json:"deck_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

func toDeckResponse(d models.Deck) deckResponse {
	return deckResponse{DeckID: d.DeckID, Title: d.Title, Description: d.Description}
}

func (db *DBHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := decoder.Decode(&req); err != nil {
		handleErr(w, r, apperr.Validation("Could not decode request"))
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		handleErr(w, r, apperr.Validation("title is required"))
		return
	}

	deck := models.Deck{Title: req.Title, Description: req.Description}
	if err := db.WithContext(r.Context()).Create(&deck).Error; err != nil {
		handleErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(deck))
}

func (db *DBHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	var decks []models.Deck
	if err := db.WithContext(r.Context()).Find(&decks).Error; err != nil {
		handleErr(w, r, err)
		return
	}

	resp := make([]deckResponse, 0, len(decks))
	for _, d := range decks {
		resp = append(resp, toDeckResponse(d))
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteDeck removes a deck and all of its flashcards in a single
// transaction, so a failure partway cannot leave orphan cards.
func (db *DBHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	deckID, err := strconv.Atoi(r.PathValue("deckID"))
	if err != nil {
		handleErr(w, r, apperr.Validation("deck_id must be an integer"))
		return
	}

	tx := db.WithContext(r.Context()).Begin()
	if tx.Error != nil {
		handleErr(w, r, tx.Error)
		return
	}

	var deck models.Deck
	if err := tx.First(&deck, deckID).Error; err != nil {
		tx.Rollback()
		handleErr(w, r, apperr.NotFound("Deck not found"))
		return
	}

	if err := tx.Where("deck_id = ?", deck.DeckID).Delete(&models.Flashcard{}).Error; err != nil {
		tx.Rollback()
		handleErr(w, r, err)
		return
	}
	if err := tx.Delete(&deck).Error; err != nil {
		tx.Rollback()
		handleErr(w, r, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		handleErr(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detailResponse{Detail: "Deck deleted successfully"})
}
