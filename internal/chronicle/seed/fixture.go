// Package seed loads campaign fixtures from YAML files into the chronicle
// store, for local development and demos.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
	"github.com/emberlight/chronicle/internal/chronicle/storage"
)

// Fixture is the YAML shape of a seedable campaign.
type Fixture struct {
	Campaign   CampaignFixture    `yaml:"campaign"`
	Characters []CharacterFixture `yaml:"characters"`
	Sessions   []SessionFixture   `yaml:"sessions"`
}

// CampaignFixture describes the campaign record.
type CampaignFixture struct {
	Title string `yaml:"title"`
}

// CharacterFixture describes one character and its aliases.
type CharacterFixture struct {
	Name    string   `yaml:"name"`
	Level   int      `yaml:"level"`
	Aliases []string `yaml:"aliases"`
}

// SessionFixture describes one numbered, dated session.
type SessionFixture struct {
	Number     int       `yaml:"number"`
	OccurredAt time.Time `yaml:"occurred_at"`
}

// Load reads and parses a fixture file.
func Load(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("unmarshal fixture: %w", err)
	}
	return fixture, nil
}

// Result summarizes what Apply wrote.
type Result struct {
	CampaignID string
	Characters int
	Aliases    int
	Sessions   int
}

// Apply writes the fixture into the store, creating the campaign and all of
// its characters, aliases, and sessions.
func Apply(ctx context.Context, store storage.Store, fixture Fixture) (Result, error) {
	campaign, err := domain.CreateCampaign(domain.CreateCampaignInput{Title: fixture.Campaign.Title}, nil, nil)
	if err != nil {
		return Result{}, fmt.Errorf("create campaign: %w", err)
	}
	if err := store.PutCampaign(ctx, campaign); err != nil {
		return Result{}, err
	}

	result := Result{CampaignID: campaign.ID}

	for _, characterFixture := range fixture.Characters {
		character, err := domain.CreateCharacter(domain.CreateCharacterInput{
			CampaignID: campaign.ID,
			Name:       characterFixture.Name,
			Level:      characterFixture.Level,
		}, nil, nil)
		if err != nil {
			return Result{}, fmt.Errorf("create character %q: %w", characterFixture.Name, err)
		}
		if err := store.PutCharacter(ctx, character); err != nil {
			return Result{}, err
		}
		result.Characters++

		for _, aliasText := range characterFixture.Aliases {
			alias, err := domain.NewAlias(campaign.ID, character.ID, aliasText)
			if err != nil {
				return Result{}, fmt.Errorf("alias %q for %q: %w", aliasText, characterFixture.Name, err)
			}
			if err := store.PutAlias(ctx, alias); err != nil {
				return Result{}, err
			}
			result.Aliases++
		}
	}

	for _, sessionFixture := range fixture.Sessions {
		session, err := domain.CreateSession(domain.CreateSessionInput{
			CampaignID: campaign.ID,
			Number:     sessionFixture.Number,
			OccurredAt: sessionFixture.OccurredAt,
		}, nil)
		if err != nil {
			return Result{}, fmt.Errorf("create session %d: %w", sessionFixture.Number, err)
		}
		if err := store.PutSession(ctx, session); err != nil {
			return Result{}, err
		}
		result.Sessions++
	}

	return result, nil
}
