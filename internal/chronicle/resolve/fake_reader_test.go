package resolve

import (
	"context"
	"sync"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
)

// fakeReader is an in-memory Reader that counts calls so tests can assert
// which queries a resolution issued. List calls run concurrently, so the
// counters are guarded.
type fakeReader struct {
	mu sync.Mutex

	characters []domain.Character
	aliases    []domain.Alias
	sessions   []domain.Session

	listCharactersErr error
	listAliasesErr    error

	listCharactersCalls int
	listAliasesCalls    int
	findByNumberCalls   int
	findLatestCalls     int
}

func (f *fakeReader) ListCharacters(ctx context.Context, campaignID string) ([]domain.Character, error) {
	f.mu.Lock()
	f.listCharactersCalls++
	f.mu.Unlock()
	if f.listCharactersErr != nil {
		return nil, f.listCharactersErr
	}
	var scoped []domain.Character
	for _, character := range f.characters {
		if character.CampaignID == campaignID {
			scoped = append(scoped, character)
		}
	}
	return scoped, nil
}

func (f *fakeReader) ListAliases(ctx context.Context, campaignID string) ([]domain.Alias, error) {
	f.mu.Lock()
	f.listAliasesCalls++
	f.mu.Unlock()
	if f.listAliasesErr != nil {
		return nil, f.listAliasesErr
	}
	var scoped []domain.Alias
	for _, alias := range f.aliases {
		if alias.CampaignID == campaignID {
			scoped = append(scoped, alias)
		}
	}
	return scoped, nil
}

func (f *fakeReader) FindSessionByNumber(ctx context.Context, campaignID string, number int) (domain.Session, bool, error) {
	f.mu.Lock()
	f.findByNumberCalls++
	f.mu.Unlock()
	for _, session := range f.sessions {
		if session.CampaignID == campaignID && session.Number == number {
			return session, true, nil
		}
	}
	return domain.Session{}, false, nil
}

func (f *fakeReader) FindLatestSession(ctx context.Context, campaignID string) (domain.Session, bool, error) {
	f.mu.Lock()
	f.findLatestCalls++
	f.mu.Unlock()
	var latest domain.Session
	var found bool
	for _, session := range f.sessions {
		if session.CampaignID != campaignID {
			continue
		}
		if !found || session.OccurredAt.After(latest.OccurredAt) ||
			(session.OccurredAt.Equal(latest.OccurredAt) && session.Number > latest.Number) {
			latest = session
			found = true
		}
	}
	return latest, found, nil
}

func (f *fakeReader) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCharactersCalls + f.listAliasesCalls + f.findByNumberCalls + f.findLatestCalls
}
