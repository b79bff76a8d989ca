package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GameType values accepted for a live session
const (
	GameTypeCash       = "cash"
	GameTypeTournament = "tournament"
)

// Session represents a manually tracked live poker session
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	StartedAt       time.Time        `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time       `json:"ended_at"`
	GameType        string           `gorm:"not null" json:"game_type"` // cash, tournament
	BuyIn           decimal.Decimal  `gorm:"not null;type:decimal(10,2)" json:"buy_in"`
	CashOut         *decimal.Decimal `gorm:"type:decimal(10,2)" json:"cash_out"`
	Profit          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"profit"` // cash_out - buy_in, stored for queries
	DurationMinutes int              `json:"duration_minutes"`
	Location        string           `json:"location"`
	Game            string           `json:"game"`   // NLHE, PLO, ...
	Blinds          string           `json:"blinds"` // $1/$3, $2/$5, ...
	Notes           string           `json:"notes"`
	// No default tag: gorm must always write the value, or creating a
	// completed session (IsActive false) would fall back to a column default.
	IsActive bool `json:"is_active"`

	// Relationships
	HandNotes []HandNote `gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hand_notes,omitempty"`
}

// HandNote is a free-text note about a single hand, scoped to a session
type HandNote struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	SessionID uint   `gorm:"not null;index" json:"session_id"`
	HandCards string `json:"hand_cards"`
	Position  string `json:"position"`
	Result    string `json:"result"`
	NoteText  string `gorm:"not null" json:"note_text"`
}
