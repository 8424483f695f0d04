package resolve

import (
	"context"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
)

// Hints carries the caller-supplied reference for a session lookup. An
// explicit Number always wins over the Latest flag.
type Hints struct {
	Number *int
	Latest bool
}

// SessionResolver resolves a session reference within a campaign.
type SessionResolver struct {
	reader Reader
}

// NewSessionResolver creates a session resolver backed by reader.
func NewSessionResolver(reader Reader) *SessionResolver {
	return &SessionResolver{reader: reader}
}

// sessionStrategy is one tier of the number-then-latest dispatch order. The
// first applicable strategy decides the outcome; later tiers are never
// consulted as fallbacks.
type sessionStrategy struct {
	applies bool
	lookup  func(ctx context.Context, campaignID string) (domain.Session, bool, error)
}

// Resolve maps hints to a session within campaignID. An explicit number is
// looked up directly, absent that a true Latest flag selects the most recent
// session by date, and with neither hint Resolve reports absence without
// querying the store.
func (r *SessionResolver) Resolve(ctx context.Context, campaignID string, hints Hints) (domain.Session, bool, error) {
	strategies := []sessionStrategy{
		{applies: hints.Number != nil, lookup: func(ctx context.Context, campaignID string) (domain.Session, bool, error) {
			return r.ByNumber(ctx, campaignID, *hints.Number)
		}},
		{applies: hints.Latest, lookup: r.Latest},
	}
	for _, strategy := range strategies {
		if !strategy.applies {
			continue
		}
		return strategy.lookup(ctx, campaignID)
	}
	return domain.Session{}, false, nil
}

// ByNumber looks up the session with the given number in campaignID.
func (r *SessionResolver) ByNumber(ctx context.Context, campaignID string, number int) (domain.Session, bool, error) {
	return r.reader.FindSessionByNumber(ctx, campaignID, number)
}

// Latest looks up the most recent session in campaignID by date. Identical
// dates are broken by session number descending.
func (r *SessionResolver) Latest(ctx context.Context, campaignID string) (domain.Session, bool, error) {
	return r.reader.FindLatestSession(ctx, campaignID)
}
