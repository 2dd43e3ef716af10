package models

import "time"

// Flashcard represents an individual flashcard
type Flashcard struct {
	CardID   uint    `gorm:"primaryKey" json:"card_id"`
	Question string  `gorm:"not null;type:text" json:"question"`
	Answer   string  `gorm:"not null;type:text" json:"answer"`
	Mnemonic *string `gorm:"type:text" json:"mnemonic"`

	DeckID uint `gorm:"not null" json:"deck_id"`
	Deck   Deck `gorm:"foreignKey:DeckID" json:"-"`

	// Integer flag rather than bool to stay wire-compatible with
	// existing clients.
	IsAIGenerated int `gorm:"column:is_ai_generated;default:0" json:"is_ai_generated"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
