package models

// Deck is a named collection of flashcards
type Deck struct {
	DeckID      uint    `gorm:"primaryKey" json:"deck_id"`
	Title       string  `gorm:"not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`

	Flashcards []Flashcard `gorm:"foreignKey:DeckID;constraint:OnDelete:CASCADE" json:"-"`
}
