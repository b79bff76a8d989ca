package db

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/stax/internal/models"
)

func TestAddHandNote(t *testing.T) {
	setupTestDB(t)

	session, err := CreateSession(CreateSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("100"),
	})
	require.NoError(t, err)

	note, err := AddHandNote(session.ID, AddHandNoteRequest{
		HandCards: "AhKh",
		Position:  "BTN",
		Result:    "won",
		NoteText:  "  3-bet pre, barreled twice  ",
	})
	require.NoError(t, err)

	assert.Equal(t, session.ID, note.SessionID)
	assert.Equal(t, "3-bet pre, barreled twice", note.NoteText)
	assert.Equal(t, "AhKh", note.HandCards)
}

func TestAddHandNoteValidation(t *testing.T) {
	setupTestDB(t)

	session, err := CreateSession(CreateSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("100"),
	})
	require.NoError(t, err)

	_, err = AddHandNote(session.ID, AddHandNoteRequest{NoteText: "   "})
	assert.Error(t, err, "blank text")

	_, err = AddHandNote(session.ID, AddHandNoteRequest{
		NoteText: strings.Repeat("x", MaxNoteTextLength+1),
	})
	assert.Error(t, err, "over the length cap")

	_, err = AddHandNote(session.ID, AddHandNoteRequest{
		NoteText: strings.Repeat("x", MaxNoteTextLength),
	})
	assert.NoError(t, err, "exactly at the cap")
}

func TestAddHandNoteLengthCountsRunes(t *testing.T) {
	setupTestDB(t)

	session, err := CreateSession(CreateSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("100"),
	})
	require.NoError(t, err)

	// Two bytes per rune: well over the cap in bytes, exactly at it in runes.
	_, err = AddHandNote(session.ID, AddHandNoteRequest{
		NoteText: strings.Repeat("é", MaxNoteTextLength),
	})
	assert.NoError(t, err)

	_, err = AddHandNote(session.ID, AddHandNoteRequest{
		NoteText: strings.Repeat("é", MaxNoteTextLength+1),
	})
	assert.Error(t, err)
}

func TestAddHandNoteMissingSession(t *testing.T) {
	setupTestDB(t)

	_, err := AddHandNote(999, AddHandNoteRequest{NoteText: "orphan"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetHandNotesOrder(t *testing.T) {
	setupTestDB(t)

	session, err := CreateSession(CreateSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("100"),
	})
	require.NoError(t, err)

	for _, text := range []string{"first", "second", "third"} {
		_, err := AddHandNote(session.ID, AddHandNoteRequest{NoteText: text})
		require.NoError(t, err)
	}

	notes, err := GetHandNotes(session.ID)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "first", notes[0].NoteText)
	assert.Equal(t, "third", notes[2].NoteText)
}

func TestDeleteHandNote(t *testing.T) {
	setupTestDB(t)

	session, err := CreateSession(CreateSessionRequest{
		GameType: models.GameTypeCash, BuyIn: money("100"),
	})
	require.NoError(t, err)

	note, err := AddHandNote(session.ID, AddHandNoteRequest{NoteText: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, DeleteHandNote(note.ID))

	notes, err := GetHandNotes(session.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.True(t, errors.Is(DeleteHandNote(note.ID), ErrNotFound))
}
