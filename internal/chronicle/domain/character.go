package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emberlight/chronicle/internal/platform/id"
)

var (
	// ErrEmptyCharacterName indicates a missing character name.
	ErrEmptyCharacterName = errors.New("character name is required")
	// ErrInvalidCharacterLevel indicates a level below 1.
	ErrInvalidCharacterLevel = errors.New("character level must be at least 1")
	// ErrEmptyCharacterID indicates a missing character ID.
	ErrEmptyCharacterID = errors.New("character id is required")
	// ErrEmptyAlias indicates a missing alias string.
	ErrEmptyAlias = errors.New("alias is required")
)

// Character is a named entity within a campaign. Display names are not
// guaranteed unique within a campaign; duplicates are a valid state.
type Character struct {
	ID         string
	CampaignID string
	Name       string
	Level      int
	CreatedAt  time.Time
}

// Alias is an alternate name bound to exactly one character. The campaign id
// is stored redundantly so alias lookups stay scoped without a join.
type Alias struct {
	CharacterID string
	CampaignID  string
	Alias       string
}

// CreateCharacterInput describes the metadata needed to create a character.
type CreateCharacterInput struct {
	CampaignID string
	Name       string
	Level      int
}

// CreateCharacter creates a new character with a generated ID and timestamp.
// A zero level defaults to 1.
func CreateCharacter(input CreateCharacterInput, now func() time.Time, idGenerator func() (string, error)) (Character, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateCharacterInput(input)
	if err != nil {
		return Character{}, err
	}

	characterID, err := idGenerator()
	if err != nil {
		return Character{}, fmt.Errorf("generate character id: %w", err)
	}

	return Character{
		ID:         characterID,
		CampaignID: normalized.CampaignID,
		Name:       normalized.Name,
		Level:      normalized.Level,
		CreatedAt:  now().UTC(),
	}, nil
}

// NormalizeCreateCharacterInput trims and validates character input metadata.
func NormalizeCreateCharacterInput(input CreateCharacterInput) (CreateCharacterInput, error) {
	input.CampaignID = strings.TrimSpace(input.CampaignID)
	if input.CampaignID == "" {
		return CreateCharacterInput{}, ErrEmptyCampaignID
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CreateCharacterInput{}, ErrEmptyCharacterName
	}
	if input.Level == 0 {
		input.Level = 1
	}
	if input.Level < 1 {
		return CreateCharacterInput{}, ErrInvalidCharacterLevel
	}
	return input, nil
}

// NewAlias validates and builds an alias record for a character.
func NewAlias(campaignID, characterID, alias string) (Alias, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return Alias{}, ErrEmptyCampaignID
	}
	characterID = strings.TrimSpace(characterID)
	if characterID == "" {
		return Alias{}, ErrEmptyCharacterID
	}
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return Alias{}, ErrEmptyAlias
	}
	return Alias{
		CharacterID: characterID,
		CampaignID:  campaignID,
		Alias:       alias,
	}, nil
}
