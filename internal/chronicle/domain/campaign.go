package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emberlight/chronicle/internal/platform/id"
)

var (
	// ErrEmptyCampaignTitle indicates a missing campaign title.
	ErrEmptyCampaignTitle = errors.New("campaign title is required")
	// ErrEmptyCampaignID indicates a missing campaign ID.
	ErrEmptyCampaignID = errors.New("campaign id is required")
)

// Campaign is the top-level scope for characters, aliases, and sessions.
// All resolution is performed within exactly one campaign.
type Campaign struct {
	ID        string
	Title     string
	CreatedAt time.Time
}

// CreateCampaignInput describes the metadata needed to create a campaign.
type CreateCampaignInput struct {
	Title string
}

// CreateCampaign creates a new campaign with a generated ID and timestamp.
func CreateCampaign(input CreateCampaignInput, now func() time.Time, idGenerator func() (string, error)) (Campaign, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Campaign{}, ErrEmptyCampaignTitle
	}

	campaignID, err := idGenerator()
	if err != nil {
		return Campaign{}, fmt.Errorf("generate campaign id: %w", err)
	}

	return Campaign{
		ID:        campaignID,
		Title:     input.Title,
		CreatedAt: now().UTC(),
	}, nil
}
