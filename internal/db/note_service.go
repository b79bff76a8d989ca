package db

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/balkashynov/stax/internal/models"
)

// MaxNoteTextLength caps hand note text before persistence.
const MaxNoteTextLength = 500

// AddHandNoteRequest holds the data for one hand note
type AddHandNoteRequest struct {
	HandCards string
	Position  string
	Result    string
	NoteText  string
}

// AddHandNote appends a note to a session's hand history.
func AddHandNote(sessionID uint, req AddHandNoteRequest) (*models.HandNote, error) {
	text := strings.TrimSpace(req.NoteText)
	if text == "" {
		return nil, fmt.Errorf("note text is required")
	}
	if utf8.RuneCountInString(text) > MaxNoteTextLength {
		return nil, fmt.Errorf("note text exceeds %d characters", MaxNoteTextLength)
	}

	if _, err := GetSessionByID(sessionID); err != nil {
		return nil, err
	}

	note := models.HandNote{
		SessionID: sessionID,
		HandCards: req.HandCards,
		Position:  req.Position,
		Result:    req.Result,
		NoteText:  text,
	}

	if err := DB.Create(&note).Error; err != nil {
		return nil, err
	}

	return &note, nil
}

// GetHandNotes returns a session's notes in creation order
func GetHandNotes(sessionID uint) ([]models.HandNote, error) {
	var notes []models.HandNote

	err := DB.Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// DeleteHandNote removes a single note by id
func DeleteHandNote(id uint) error {
	var note models.HandNote
	err := DB.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("hand note #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}

	return DB.Delete(&note).Error
}
