package resolve

import (
	"context"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
)

// Reader is the read-only data access port the resolvers depend on. The
// storage layer implements it; tests use in-memory fakes. Find* methods
// report absence through the boolean so a missing record is never conflated
// with a store failure.
type Reader interface {
	ListCharacters(ctx context.Context, campaignID string) ([]domain.Character, error)
	ListAliases(ctx context.Context, campaignID string) ([]domain.Alias, error)
	FindSessionByNumber(ctx context.Context, campaignID string, number int) (domain.Session, bool, error)
	FindLatestSession(ctx context.Context, campaignID string) (domain.Session, bool, error)
}
