// Package app wires the resolution core to its operational concerns: a TTL
// snapshot cache over the character and alias reads, tracing spans per
// resolution, and a debug audit trail for tie-broken ambiguity.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
	"github.com/emberlight/chronicle/internal/chronicle/resolve"
)

const tracerName = "github.com/emberlight/chronicle/internal/chronicle/app"

// Service exposes campaign-scoped entity resolution to transports and
// ingestion callers. It is safe for concurrent use.
type Service struct {
	characters *resolve.CharacterResolver
	sessions   *resolve.SessionResolver
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Options configures optional service behavior.
type Options struct {
	// SnapshotTTL bounds how long cached character and alias snapshots are
	// served before re-reading the store. Zero disables caching.
	SnapshotTTL time.Duration
	// Logger receives resolution audit logs. Nil falls back to slog.Default.
	Logger *slog.Logger
}

// NewService creates a resolution service over the given reader.
func NewService(reader resolve.Reader, options Options) *Service {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.SnapshotTTL > 0 {
		reader = newCachedReader(reader, options.SnapshotTTL)
	}
	return &Service{
		characters: resolve.NewCharacterResolver(reader),
		sessions:   resolve.NewSessionResolver(reader),
		logger:     options.Logger,
		tracer:     otel.Tracer(tracerName),
	}
}

// ResolveCharacter maps a free-form name to a character within a campaign.
func (s *Service) ResolveCharacter(ctx context.Context, campaignID, name string) (resolve.Match, error) {
	ctx, span := s.tracer.Start(ctx, "chronicle.resolve_character",
		trace.WithAttributes(attribute.String("campaign.id", campaignID)),
	)
	defer span.End()

	match, err := s.characters.Resolve(ctx, campaignID, name)
	if err != nil {
		span.RecordError(err)
		return match, err
	}
	span.SetAttributes(attribute.String("match.type", string(match.Type)))

	if match.Contenders > 1 {
		s.logger.DebugContext(ctx, "ambiguous character reference tie-broken",
			"campaign_id", campaignID,
			"match_type", match.Type,
			"character_id", match.CharacterID,
			"contenders", match.Contenders,
		)
	}
	return match, nil
}

// ResolveSession maps session hints to a stored session within a campaign.
func (s *Service) ResolveSession(ctx context.Context, campaignID string, hints resolve.Hints) (domain.Session, bool, error) {
	ctx, span := s.tracer.Start(ctx, "chronicle.resolve_session",
		trace.WithAttributes(attribute.String("campaign.id", campaignID)),
	)
	defer span.End()

	session, found, err := s.sessions.Resolve(ctx, campaignID, hints)
	if err != nil {
		span.RecordError(err)
		return domain.Session{}, false, err
	}
	span.SetAttributes(attribute.Bool("session.found", found))
	return session, found, nil
}
