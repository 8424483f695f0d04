package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
)

// MatchType tags how a character resolution result was obtained.
type MatchType string

const (
	// MatchTypeName indicates the query matched a canonical character name.
	MatchTypeName MatchType = "name"
	// MatchTypeAlias indicates the query matched a character alias.
	MatchTypeAlias MatchType = "alias"
	// MatchTypeNone indicates no character matched the query.
	MatchTypeNone MatchType = "none"
)

// Match is the outcome of resolving a name reference. CharacterID is empty
// exactly when Type is MatchTypeNone. Contenders counts the candidates that
// matched the winning stage; values above one mean the tie-breaker chose.
type Match struct {
	CharacterID string
	Type        MatchType
	Contenders  int
}

// CharacterResolver resolves a name string to a character within a campaign.
type CharacterResolver struct {
	reader Reader
}

// NewCharacterResolver creates a character resolver backed by reader.
func NewCharacterResolver(reader Reader) *CharacterResolver {
	return &CharacterResolver{reader: reader}
}

// matchStage is one tier of the name-then-alias matching order. Stages are
// evaluated in sequence until one yields candidates.
type matchStage struct {
	kind       MatchType
	candidates func() []Candidate
}

// Resolve maps name to a character id within campaignID. Canonical names
// take strict precedence over aliases, and ambiguity within a stage is
// settled by PickBest rather than reported as an error. A whitespace-only
// name resolves to MatchTypeNone without touching the store; store failures
// propagate unchanged.
func (r *CharacterResolver) Resolve(ctx context.Context, campaignID, name string) (Match, error) {
	query := Normalize(name)
	if query == "" {
		return Match{Type: MatchTypeNone}, nil
	}

	// The two reads have no dependency on each other; fetch them together.
	var characters []domain.Character
	var aliases []domain.Alias
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		characters, err = r.reader.ListCharacters(groupCtx, campaignID)
		return err
	})
	group.Go(func() error {
		var err error
		aliases, err = r.reader.ListAliases(groupCtx, campaignID)
		return err
	})
	if err := group.Wait(); err != nil {
		return Match{Type: MatchTypeNone}, err
	}

	stages := []matchStage{
		{kind: MatchTypeName, candidates: func() []Candidate {
			return nameCandidates(characters, query)
		}},
		{kind: MatchTypeAlias, candidates: func() []Candidate {
			return aliasCandidates(characters, aliases, query)
		}},
	}
	for _, stage := range stages {
		candidates := stage.candidates()
		best, ok := PickBest(candidates)
		if !ok {
			continue
		}
		return Match{
			CharacterID: best.ID,
			Type:        stage.kind,
			Contenders:  len(candidates),
		}, nil
	}

	return Match{Type: MatchTypeNone}, nil
}

func nameCandidates(characters []domain.Character, query string) []Candidate {
	var candidates []Candidate
	for _, character := range characters {
		if Normalize(character.Name) == query {
			candidates = append(candidates, Candidate{ID: character.ID, Label: character.Name})
		}
	}
	return candidates
}

// aliasCandidates labels each hit with the canonical character name when the
// alias points at a known character, falling back to the alias text for
// dangling records.
func aliasCandidates(characters []domain.Character, aliases []domain.Alias, query string) []Candidate {
	nameByID := make(map[string]string, len(characters))
	for _, character := range characters {
		nameByID[character.ID] = character.Name
	}

	var candidates []Candidate
	for _, alias := range aliases {
		if Normalize(alias.Alias) != query {
			continue
		}
		label := nameByID[alias.CharacterID]
		if label == "" {
			label = alias.Alias
		}
		candidates = append(candidates, Candidate{ID: alias.CharacterID, Label: label})
	}
	return candidates
}
