package db

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/balkashynov/stax/internal/models"
)

// ErrNotFound marks lookups for ids that don't exist, so callers can tell them
// apart from validation failures.
var ErrNotFound = errors.New("not found")

// CreateSessionRequest holds the data needed to start a live session
type CreateSessionRequest struct {
	GameType string
	BuyIn    decimal.Decimal
	Location string
	Game     string
	Blinds   string
	Notes    string
}

// CreateCompletedSessionRequest holds the data for a backdated, finished session
type CreateCompletedSessionRequest struct {
	GameType  string
	BuyIn     decimal.Decimal
	CashOut   decimal.Decimal
	StartedAt time.Time
	EndedAt   time.Time
	Location  string
	Game      string
	Blinds    string
	Notes     string
}

// UpdateSessionRequest is a partial update; nil fields are left untouched.
type UpdateSessionRequest struct {
	GameType        *string
	BuyIn           *decimal.Decimal
	CashOut         *decimal.Decimal
	StartedAt       *time.Time
	EndedAt         *time.Time
	DurationMinutes *int
	Location        *string
	Game            *string
	Blinds          *string
	Notes           *string
}

func validateGameType(gameType string) error {
	if gameType != models.GameTypeCash && gameType != models.GameTypeTournament {
		return fmt.Errorf("game type must be %q or %q, got %q",
			models.GameTypeCash, models.GameTypeTournament, gameType)
	}
	return nil
}

// CreateSession starts a new active session. The session stays active until a
// cash-out is recorded.
func CreateSession(req CreateSessionRequest) (*models.Session, error) {
	if err := validateGameType(req.GameType); err != nil {
		return nil, err
	}
	if !req.BuyIn.IsPositive() {
		return nil, fmt.Errorf("buy-in must be greater than 0")
	}

	session := models.Session{
		StartedAt: time.Now(),
		GameType:  req.GameType,
		BuyIn:     req.BuyIn,
		Location:  req.Location,
		Game:      req.Game,
		Blinds:    req.Blinds,
		Notes:     req.Notes,
		IsActive:  true,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// CreateCompletedSession records a finished session with explicit start and end
// times. Duration is derived from the two timestamps, rounded to minutes.
func CreateCompletedSession(req CreateCompletedSessionRequest) (*models.Session, error) {
	if err := validateGameType(req.GameType); err != nil {
		return nil, err
	}
	if !req.BuyIn.IsPositive() {
		return nil, fmt.Errorf("buy-in must be greater than 0")
	}
	if req.CashOut.IsNegative() {
		return nil, fmt.Errorf("cash-out cannot be negative")
	}
	if req.StartedAt.IsZero() || req.EndedAt.IsZero() {
		return nil, fmt.Errorf("start and end times are required")
	}
	if !req.EndedAt.After(req.StartedAt) {
		return nil, fmt.Errorf("end time must be after start time")
	}

	duration := int(math.Round(req.EndedAt.Sub(req.StartedAt).Minutes()))
	profit := req.CashOut.Sub(req.BuyIn)
	ended := req.EndedAt
	cashOut := req.CashOut

	session := models.Session{
		StartedAt:       req.StartedAt,
		EndedAt:         &ended,
		GameType:        req.GameType,
		BuyIn:           req.BuyIn,
		CashOut:         &cashOut,
		Profit:          &profit,
		DurationMinutes: duration,
		Location:        req.Location,
		Game:            req.Game,
		Blinds:          req.Blinds,
		Notes:           req.Notes,
		IsActive:        false,
	}

	if err := DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// CashOutSession completes an active session. Duration is caller-supplied or
// derived from elapsed wall-clock time. There is no way back to active.
func CashOutSession(id uint, cashOut decimal.Decimal, durationMinutes *int, notes string) (*models.Session, error) {
	if cashOut.IsNegative() {
		return nil, fmt.Errorf("cash-out cannot be negative")
	}

	session, err := GetSessionByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if session.EndedAt == nil {
		session.EndedAt = &now
	}
	if durationMinutes != nil {
		session.DurationMinutes = *durationMinutes
	} else {
		session.DurationMinutes = int(math.Round(session.EndedAt.Sub(session.StartedAt).Minutes()))
	}

	profit := cashOut.Sub(session.BuyIn)
	session.CashOut = &cashOut
	session.Profit = &profit
	session.IsActive = false
	if notes != "" {
		session.Notes = notes
	}

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// UpdateSession applies a partial edit. Supplying a cash-out recomputes profit
// and forces the session completed. Duration is recomputed only when both
// timestamps are present and end is after start; an edit that leaves end at or
// before start keeps the stored duration.
func UpdateSession(id uint, req UpdateSessionRequest) (*models.Session, error) {
	session, err := GetSessionByID(id)
	if err != nil {
		return nil, err
	}

	if req.GameType != nil {
		if err := validateGameType(*req.GameType); err != nil {
			return nil, err
		}
		session.GameType = *req.GameType
	}
	if req.BuyIn != nil {
		if !req.BuyIn.IsPositive() {
			return nil, fmt.Errorf("buy-in must be greater than 0")
		}
		session.BuyIn = *req.BuyIn
	}
	if req.StartedAt != nil {
		session.StartedAt = *req.StartedAt
	}
	if req.EndedAt != nil {
		ended := *req.EndedAt
		session.EndedAt = &ended
	}
	if req.DurationMinutes != nil {
		session.DurationMinutes = *req.DurationMinutes
	}
	if req.Location != nil {
		session.Location = *req.Location
	}
	if req.Game != nil {
		session.Game = *req.Game
	}
	if req.Blinds != nil {
		session.Blinds = *req.Blinds
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}

	if req.CashOut != nil {
		if req.CashOut.IsNegative() {
			return nil, fmt.Errorf("cash-out cannot be negative")
		}
		cashOut := *req.CashOut
		profit := cashOut.Sub(session.BuyIn)
		session.CashOut = &cashOut
		session.Profit = &profit
		session.IsActive = false
	} else if session.CashOut != nil && req.BuyIn != nil {
		profit := session.CashOut.Sub(session.BuyIn)
		session.Profit = &profit
	}

	if session.EndedAt != nil && session.EndedAt.After(session.StartedAt) &&
		(req.StartedAt != nil || req.EndedAt != nil) {
		session.DurationMinutes = int(math.Round(session.EndedAt.Sub(session.StartedAt).Minutes()))
	}

	if err := DB.Save(session).Error; err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession removes a session and its hand notes.
func DeleteSession(id uint) error {
	if _, err := GetSessionByID(id); err != nil {
		return err
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&models.HandNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Session{}, id).Error
	})
}

// GetSessions returns all sessions, newest first
func GetSessions() ([]models.Session, error) {
	var sessions []models.Session

	if err := DB.Order("started_at DESC").Find(&sessions).Error; err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetCompletedSessions returns finished sessions ordered by start time, the
// read the aggregation engine works from.
func GetCompletedSessions() ([]models.Session, error) {
	var sessions []models.Session

	err := DB.Where("is_active = ?", false).
		Order("started_at ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetSessionByID retrieves a session by ID
func GetSessionByID(id uint) (*models.Session, error) {
	var session models.Session

	err := DB.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("session #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}
