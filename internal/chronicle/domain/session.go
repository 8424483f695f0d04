package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emberlight/chronicle/internal/platform/id"
)

var (
	// ErrInvalidSessionNumber indicates a session number below 1.
	ErrInvalidSessionNumber = errors.New("session number must be at least 1")
	// ErrZeroSessionTime indicates a missing session date.
	ErrZeroSessionTime = errors.New("session date is required")
)

// Session is a numbered, dated unit of play within a campaign. Session
// numbers are unique per campaign; the schema enforces what authoring flows
// are expected to maintain.
type Session struct {
	ID         string
	CampaignID string
	Number     int
	OccurredAt time.Time
}

// CreateSessionInput describes the metadata needed to create a session.
type CreateSessionInput struct {
	CampaignID string
	Number     int
	OccurredAt time.Time
}

// CreateSession creates a new session with a generated ID.
func CreateSession(input CreateSessionInput, idGenerator func() (string, error)) (Session, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateSessionInput(input)
	if err != nil {
		return Session{}, err
	}

	sessionID, err := idGenerator()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}

	return Session{
		ID:         sessionID,
		CampaignID: normalized.CampaignID,
		Number:     normalized.Number,
		OccurredAt: normalized.OccurredAt.UTC(),
	}, nil
}

// NormalizeCreateSessionInput trims and validates session input metadata.
func NormalizeCreateSessionInput(input CreateSessionInput) (CreateSessionInput, error) {
	input.CampaignID = strings.TrimSpace(input.CampaignID)
	if input.CampaignID == "" {
		return CreateSessionInput{}, ErrEmptyCampaignID
	}
	if input.Number < 1 {
		return CreateSessionInput{}, ErrInvalidSessionNumber
	}
	if input.OccurredAt.IsZero() {
		return CreateSessionInput{}, ErrZeroSessionTime
	}
	return input, nil
}
