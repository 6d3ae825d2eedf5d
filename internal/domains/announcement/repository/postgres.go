package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/pkg/cache"
)

// postgresRepository implements announcement.Repository.
// Uses pgxpool for PostgreSQL and Redis for caching single lookups.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) announcement.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Key prefixes live in the announcement package so cascade deletes
// elsewhere can invalidate the same entries.
const cacheTTL = 5 * time.Minute

const selectColumns = `
        a.id, a.title, a.text, a.price, a.active, a.heading_id, a.author_id,
        a.version, a.published_at, a.created_at, a.updated_at, h.name
`

func scanAnnouncement(row pgx.Row, a *announcement.Announcement) error {
	return row.Scan(
		&a.ID,
		&a.Title,
		&a.Text,
		&a.Price,
		&a.Active,
		&a.HeadingID,
		&a.AuthorID,
		&a.Version,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.HeadingName,
	)
}

// Create inserts a new announcement. A missing heading surfaces as a
// foreign key violation and maps to ErrHeadingNotFound.
func (r *postgresRepository) Create(ctx context.Context, a *announcement.Announcement) (*announcement.Announcement, error) {
	query := `
        INSERT INTO announcements (title, text, price, active, heading_id, author_id, version, published_at)
        VALUES ($1, $2, $3, true, $4, $5, 0, NOW())
        RETURNING id, version, active, published_at, created_at, updated_at
    `

	created := *a
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Title,
		a.Text,
		a.Price,
		a.HeadingID,
		a.AuthorID,
	).Scan(
		&created.ID,
		&created.Version,
		&created.Active,
		&created.PublishedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return nil, announcement.ErrHeadingNotFound
		}
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

// GetByID retrieves an announcement with its heading name, cached
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*announcement.Announcement, error) {
	cacheKey := announcement.CacheKeyPrefix + id.String()

	var a announcement.Announcement
	cached, err := r.cache.Get(ctx, cacheKey, &a)
	if err == nil && cached {
		// Cache hit
		return &a, nil
	}

	query := `
        SELECT ` + selectColumns + `
        FROM announcements a
        JOIN headings h ON h.id = a.heading_id
        WHERE a.id = $1
    `

	if err := scanAnnouncement(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, announcement.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("failed to get announcement by id: %w", err)
	}

	if data, err := json.Marshal(a); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return &a, nil
}

// GetPage returns one page of announcements, newest first, plus the
// total count for pagination metadata.
func (r *postgresRepository) GetPage(ctx context.Context, filter announcement.ListFilter) ([]announcement.Announcement, int64, error) {
	query := `
        SELECT ` + selectColumns + `
        FROM announcements a
        JOIN headings h ON h.id = a.heading_id
        ORDER BY a.published_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := scanAnnouncement(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating announcements: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	return announcements, total, nil
}

// Update updates an announcement with optimistic locking
func (r *postgresRepository) Update(ctx context.Context, a *announcement.Announcement, currentVersion int) (*announcement.Announcement, error) {
	query := `
        UPDATE announcements
        SET title = $1,
            text = $2,
            price = $3,
            active = $4,
            heading_id = $5,
            version = version + 1,
            updated_at = NOW()
        WHERE id = $6 AND version = $7
        RETURNING id, title, text, price, active, heading_id, author_id,
                  version, published_at, created_at, updated_at
    `

	var updated announcement.Announcement
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Title,
		a.Text,
		a.Price,
		a.Active,
		a.HeadingID,
		a.ID,
		currentVersion,
	).Scan(
		&updated.ID,
		&updated.Title,
		&updated.Text,
		&updated.Price,
		&updated.Active,
		&updated.HeadingID,
		&updated.AuthorID,
		&updated.Version,
		&updated.PublishedAt,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if checkErr := r.pool.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM announcements WHERE id = $1)`, a.ID,
			).Scan(&exists); checkErr != nil {
				return nil, fmt.Errorf("failed to check announcement existence: %w", checkErr)
			}
			if !exists {
				return nil, announcement.ErrAnnouncementNotFound
			}
			return nil, announcement.ErrVersionMismatch
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, announcement.ErrHeadingNotFound
		}
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	r.invalidateAnnouncementCache(ctx, a.ID)
	r.invalidateListCache(ctx)

	return &updated, nil
}

// DeleteByID removes one announcement by id
func (r *postgresRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	r.invalidateAnnouncementCache(ctx, id)
	r.invalidateListCache(ctx)

	return nil
}

// DeleteByHeading removes all announcements under a heading
func (r *postgresRepository) DeleteByHeading(ctx context.Context, headingID uuid.UUID) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM announcements WHERE heading_id = $1`, headingID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete announcements by heading: %w", err)
	}

	announcement.InvalidateCaches(ctx, r.cache)

	return cmdTag.RowsAffected(), nil
}

// PurgeInactive removes only rows flagged inactive
func (r *postgresRepository) PurgeInactive(ctx context.Context) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM announcements WHERE active = false`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inactive announcements: %w", err)
	}

	announcement.InvalidateCaches(ctx, r.cache)

	return cmdTag.RowsAffected(), nil
}

// Cache helper methods

func (r *postgresRepository) invalidateAnnouncementCache(ctx context.Context, id uuid.UUID) {
	r.cache.Delete(ctx, announcement.CacheKeyPrefix+id.String())
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.DeletePattern(ctx, announcement.ListCacheKeyPrefix+"*")
}
