package domain

import (
	"errors"
	"testing"
	"time"
)

func TestCreateCharacterDefaultsLevel(t *testing.T) {
	now := time.Date(2025, 7, 18, 18, 30, 0, 0, time.UTC)

	character, err := CreateCharacter(CreateCharacterInput{
		CampaignID: "c1",
		Name:       " Thalion the Ranger ",
	}, fixedClock(now), staticID("r1"))
	if err != nil {
		t.Fatalf("create character: %v", err)
	}
	if character.Name != "Thalion the Ranger" {
		t.Fatalf("expected trimmed name, got %q", character.Name)
	}
	if character.Level != 1 {
		t.Fatalf("expected default level 1, got %d", character.Level)
	}
}

func TestCreateCharacterValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateCharacterInput
		wantErr error
	}{
		{
			name:    "missing campaign",
			input:   CreateCharacterInput{Name: "Thalion"},
			wantErr: ErrEmptyCampaignID,
		},
		{
			name:    "missing name",
			input:   CreateCharacterInput{CampaignID: "c1", Name: "  "},
			wantErr: ErrEmptyCharacterName,
		},
		{
			name:    "negative level",
			input:   CreateCharacterInput{CampaignID: "c1", Name: "Thalion", Level: -3},
			wantErr: ErrInvalidCharacterLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CreateCharacter(tc.input, nil, staticID("r1"))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNewAlias(t *testing.T) {
	alias, err := NewAlias("c1", "r1", "  Thal ")
	if err != nil {
		t.Fatalf("new alias: %v", err)
	}
	if alias.Alias != "Thal" {
		t.Fatalf("expected trimmed alias, got %q", alias.Alias)
	}
	if alias.CampaignID != "c1" || alias.CharacterID != "r1" {
		t.Fatalf("unexpected alias scope: %+v", alias)
	}
}

func TestNewAliasValidation(t *testing.T) {
	if _, err := NewAlias("", "r1", "Thal"); !errors.Is(err, ErrEmptyCampaignID) {
		t.Fatalf("expected ErrEmptyCampaignID, got %v", err)
	}
	if _, err := NewAlias("c1", "", "Thal"); !errors.Is(err, ErrEmptyCharacterID) {
		t.Fatalf("expected ErrEmptyCharacterID, got %v", err)
	}
	if _, err := NewAlias("c1", "r1", "   "); !errors.Is(err, ErrEmptyAlias) {
		t.Fatalf("expected ErrEmptyAlias, got %v", err)
	}
}
