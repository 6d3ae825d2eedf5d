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
	"adboard-backend/internal/domains/heading"
	"adboard-backend/pkg/cache"
	"adboard-backend/pkg/database"
)

// postgresRepository implements heading.Repository.
// Uses pgxpool for PostgreSQL and Redis for caching.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) heading.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	headingCacheKeyPrefix = "heading:"
	headingListKey        = "headings:list"
	cacheTTL              = 15 * time.Minute
)

// Create inserts new heading with generated ID and timestamps
func (r *postgresRepository) Create(ctx context.Context, h *heading.Heading) (*heading.Heading, error) {
	query := `
        INSERT INTO headings (name, version)
        VALUES ($1, 0)
        RETURNING id, name, version, created_at, updated_at
    `

	var created heading.Heading
	err := r.pool.QueryRow(ctx, query, h.Name).Scan(
		&created.ID,
		&created.Name,
		&created.Version,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, heading.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create heading: %w", err)
	}

	r.invalidateListCache(ctx)

	return &created, nil
}

// GetByID retrieves heading by UUID with caching
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*heading.Heading, error) {
	cacheKey := headingCacheKeyPrefix + id.String()

	var h heading.Heading
	cached, err := r.cache.Get(ctx, cacheKey, &h)
	if err == nil && cached {
		// Cache hit
		return &h, nil
	}

	// Cache miss - query database
	query := `
        SELECT id, name, version, created_at, updated_at
        FROM headings
        WHERE id = $1
    `

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&h.ID,
		&h.Name,
		&h.Version,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, heading.ErrHeadingNotFound
		}
		return nil, fmt.Errorf("failed to get heading by id: %w", err)
	}

	if data, err := json.Marshal(h); err == nil {
		r.cache.Set(ctx, cacheKey, string(data), cacheTTL)
	}

	return &h, nil
}

// GetAll retrieves all headings, list-cached as one entry
func (r *postgresRepository) GetAll(ctx context.Context) ([]heading.Heading, error) {
	var headings []heading.Heading
	cached, err := r.cache.Get(ctx, headingListKey, &headings)
	if err == nil && cached {
		return headings, nil
	}

	query := `
        SELECT id, name, version, created_at, updated_at
        FROM headings
        ORDER BY name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query headings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h heading.Heading
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Version,
			&h.CreatedAt,
			&h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan heading: %w", err)
		}
		headings = append(headings, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating headings: %w", err)
	}

	if data, err := json.Marshal(headings); err == nil {
		r.cache.Set(ctx, headingListKey, string(data), cacheTTL)
	}

	return headings, nil
}

// Update updates heading with optimistic locking
func (r *postgresRepository) Update(ctx context.Context, h *heading.Heading, currentVersion int) (*heading.Heading, error) {
	query := `
        UPDATE headings
        SET name = $1,
            version = version + 1,
            updated_at = NOW()
        WHERE id = $2 AND version = $3
        RETURNING id, name, version, created_at, updated_at
    `

	var updated heading.Heading
	err := r.pool.QueryRow(ctx, query, h.Name, h.ID, currentVersion).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Version,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			exists, checkErr := r.ExistsByID(ctx, h.ID)
			if checkErr != nil {
				return nil, checkErr
			}
			if !exists {
				return nil, heading.ErrHeadingNotFound
			}
			return nil, heading.ErrVersionMismatch
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, heading.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to update heading: %w", err)
	}

	r.invalidateHeadingCache(ctx, h.ID)
	r.invalidateListCache(ctx)

	return &updated, nil
}

// Delete removes the heading after deleting its announcements.
// Both statements run in one transaction so a failure leaves
// everything in place.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM announcements WHERE heading_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to delete announcements by heading: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM headings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete heading: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return heading.ErrHeadingNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.invalidateHeadingCache(ctx, id)
	r.invalidateListCache(ctx)
	// The cascade removed announcement rows, their cache entries must
	// not outlive them.
	announcement.InvalidateCaches(ctx, r.cache)

	return nil
}

// ExistsByID checks if heading exists (lightweight query)
func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM headings WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check heading existence: %w", err)
	}

	return exists, nil
}

// Cache helper methods

func (r *postgresRepository) invalidateHeadingCache(ctx context.Context, id uuid.UUID) {
	r.cache.Delete(ctx, headingCacheKeyPrefix+id.String())
}

func (r *postgresRepository) invalidateListCache(ctx context.Context) {
	r.cache.Delete(ctx, headingListKey)
}
