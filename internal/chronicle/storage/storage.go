package storage

import (
	"context"
	"errors"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// CampaignStore persists campaign metadata records.
type CampaignStore interface {
	PutCampaign(ctx context.Context, campaign domain.Campaign) error
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
}

// CharacterStore persists characters and their aliases. The List methods
// back the character side of the resolution port.
type CharacterStore interface {
	PutCharacter(ctx context.Context, character domain.Character) error
	PutAlias(ctx context.Context, alias domain.Alias) error
	ListCharacters(ctx context.Context, campaignID string) ([]domain.Character, error)
	ListAliases(ctx context.Context, campaignID string) ([]domain.Alias, error)
}

// SessionStore persists play sessions. The Find methods back the session
// side of the resolution port; absence is reported through the boolean.
type SessionStore interface {
	PutSession(ctx context.Context, session domain.Session) error
	FindSessionByNumber(ctx context.Context, campaignID string, number int) (domain.Session, bool, error)
	FindLatestSession(ctx context.Context, campaignID string) (domain.Session, bool, error)
}

// Store groups all chronicle storage interfaces. Implementations satisfy the
// resolve.Reader port.
type Store interface {
	CampaignStore
	CharacterStore
	SessionStore
}
