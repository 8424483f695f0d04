package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
	"github.com/emberlight/chronicle/internal/chronicle/storage"
	"github.com/emberlight/chronicle/internal/chronicle/storage/sqlite/migrations"
	"github.com/emberlight/chronicle/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for chronicle data. It satisfies
// storage.Store and, through it, the resolve.Reader port.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a chronicle SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutCampaign upserts a campaign record.
func (s *Store) PutCampaign(ctx context.Context, campaign domain.Campaign) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO campaigns (id, title, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET title = excluded.title`,
		campaign.ID,
		campaign.Title,
		timeToUnixMillis(campaign.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put campaign: %w", err)
	}
	return nil
}

// GetCampaign loads a campaign by id.
func (s *Store) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	if err := s.ready(); err != nil {
		return domain.Campaign{}, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, created_at FROM campaigns WHERE id = ?`,
		id,
	)

	var campaign domain.Campaign
	var createdAt int64
	if err := row.Scan(&campaign.ID, &campaign.Title, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Campaign{}, storage.ErrNotFound
		}
		return domain.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}
	campaign.CreatedAt = unixMillisToTime(createdAt)
	return campaign, nil
}

// PutCharacter upserts a character record.
func (s *Store) PutCharacter(ctx context.Context, character domain.Character) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO characters (id, campaign_id, name, level, created_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET name = excluded.name, level = excluded.level`,
		character.ID,
		character.CampaignID,
		character.Name,
		character.Level,
		timeToUnixMillis(character.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put character: %w", err)
	}
	return nil
}

// PutAlias upserts an alias record for a character.
func (s *Store) PutAlias(ctx context.Context, alias domain.Alias) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO aliases (character_id, campaign_id, alias) VALUES (?, ?, ?)
		 ON CONFLICT (character_id, alias) DO NOTHING`,
		alias.CharacterID,
		alias.CampaignID,
		alias.Alias,
	)
	if err != nil {
		return fmt.Errorf("put alias: %w", err)
	}
	return nil
}

// ListCharacters loads all characters in a campaign.
func (s *Store) ListCharacters(ctx context.Context, campaignID string) ([]domain.Character, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, campaign_id, name, level, created_at FROM characters WHERE campaign_id = ? ORDER BY id`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var characters []domain.Character
	for rows.Next() {
		var character domain.Character
		var createdAt int64
		if err := rows.Scan(&character.ID, &character.CampaignID, &character.Name, &character.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		character.CreatedAt = unixMillisToTime(createdAt)
		characters = append(characters, character)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return characters, nil
}

// ListAliases loads all aliases in a campaign.
func (s *Store) ListAliases(ctx context.Context, campaignID string) ([]domain.Alias, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT character_id, campaign_id, alias FROM aliases WHERE campaign_id = ? ORDER BY character_id, alias`,
		campaignID,
	)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var aliases []domain.Alias
	for rows.Next() {
		var alias domain.Alias
		if err := rows.Scan(&alias.CharacterID, &alias.CampaignID, &alias.Alias); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		aliases = append(aliases, alias)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate aliases: %w", err)
	}
	return aliases, nil
}

// PutSession upserts a session record.
func (s *Store) PutSession(ctx context.Context, session domain.Session) error {
	if err := s.ready(); err != nil {
		return err
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (id, campaign_id, number, occurred_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET number = excluded.number, occurred_at = excluded.occurred_at`,
		session.ID,
		session.CampaignID,
		session.Number,
		timeToUnixMillis(session.OccurredAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// FindSessionByNumber loads the session with the given number in a campaign.
func (s *Store) FindSessionByNumber(ctx context.Context, campaignID string, number int) (domain.Session, bool, error) {
	if err := s.ready(); err != nil {
		return domain.Session{}, false, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, campaign_id, number, occurred_at FROM sessions WHERE campaign_id = ? AND number = ?`,
		campaignID,
		number,
	)
	return scanSession(row, "find session by number")
}

// FindLatestSession loads the most recent session in a campaign by date.
// Identical dates are broken by session number descending so the result is
// deterministic regardless of insert order.
func (s *Store) FindLatestSession(ctx context.Context, campaignID string) (domain.Session, bool, error) {
	if err := s.ready(); err != nil {
		return domain.Session{}, false, err
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, campaign_id, number, occurred_at FROM sessions
		 WHERE campaign_id = ?
		 ORDER BY occurred_at DESC, number DESC
		 LIMIT 1`,
		campaignID,
	)
	return scanSession(row, "find latest session")
}

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func scanSession(row *sql.Row, op string) (domain.Session, bool, error) {
	var session domain.Session
	var occurredAt int64
	if err := row.Scan(&session.ID, &session.CampaignID, &session.Number, &occurredAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.Session{}, false, nil
		}
		return domain.Session{}, false, fmt.Errorf("%s: %w", op, err)
	}
	session.OccurredAt = unixMillisToTime(occurredAt)
	return session, true, nil
}

func timeToUnixMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UTC().UnixMilli()
}

func unixMillisToTime(millis int64) time.Time {
	if millis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC()
}
