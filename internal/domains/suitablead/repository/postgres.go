package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adboard-backend/internal/domains/suitablead"
)

// postgresRepository implements suitablead.Repository on pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) suitablead.Repository {
	return &postgresRepository{pool: pool}
}

const columns = `id, author_id, category, title, price_from, price_to, email, version, created_at, updated_at`

func scanSuitableAd(row pgx.Row, s *suitablead.SuitableAd) error {
	return row.Scan(
		&s.ID,
		&s.AuthorID,
		&s.Category,
		&s.Title,
		&s.PriceFrom,
		&s.PriceTo,
		&s.Email,
		&s.Version,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, s *suitablead.SuitableAd) (*suitablead.SuitableAd, error) {
	query := `
        INSERT INTO suitable_ads (author_id, category, title, price_from, price_to, email, version)
        VALUES ($1, $2, $3, $4, $5, $6, 0)
        RETURNING ` + columns

	var created suitablead.SuitableAd
	err := scanSuitableAd(r.pool.QueryRow(
		ctx,
		query,
		s.AuthorID,
		s.Category,
		s.Title,
		s.PriceFrom,
		s.PriceTo,
		s.Email,
	), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create suitable ad: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*suitablead.SuitableAd, error) {
	query := `SELECT ` + columns + ` FROM suitable_ads WHERE id = $1`

	var s suitablead.SuitableAd
	if err := scanSuitableAd(r.pool.QueryRow(ctx, query, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, suitablead.ErrSuitableAdNotFound
		}
		return nil, fmt.Errorf("failed to get suitable ad by id: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) GetByAuthor(ctx context.Context, authorID uuid.UUID) ([]suitablead.SuitableAd, error) {
	query := `SELECT ` + columns + ` FROM suitable_ads WHERE author_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suitable ads: %w", err)
	}
	defer rows.Close()

	var ads []suitablead.SuitableAd
	for rows.Next() {
		var s suitablead.SuitableAd
		if err := scanSuitableAd(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan suitable ad: %w", err)
		}
		ads = append(ads, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suitable ads: %w", err)
	}

	return ads, nil
}

func (r *postgresRepository) Update(ctx context.Context, s *suitablead.SuitableAd, currentVersion int) (*suitablead.SuitableAd, error) {
	query := `
        UPDATE suitable_ads
        SET category = $1,
            title = $2,
            price_from = $3,
            price_to = $4,
            email = $5,
            version = version + 1,
            updated_at = NOW()
        WHERE id = $6 AND version = $7
        RETURNING ` + columns

	var updated suitablead.SuitableAd
	err := scanSuitableAd(r.pool.QueryRow(
		ctx,
		query,
		s.Category,
		s.Title,
		s.PriceFrom,
		s.PriceTo,
		s.Email,
		s.ID,
		currentVersion,
	), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if checkErr := r.pool.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM suitable_ads WHERE id = $1)`, s.ID,
			).Scan(&exists); checkErr != nil {
				return nil, fmt.Errorf("failed to check suitable ad existence: %w", checkErr)
			}
			if !exists {
				return nil, suitablead.ErrSuitableAdNotFound
			}
			return nil, suitablead.ErrVersionMismatch
		}
		return nil, fmt.Errorf("failed to update suitable ad: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM suitable_ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete suitable ad: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return suitablead.ErrSuitableAdNotFound
	}

	return nil
}

func (r *postgresRepository) DeleteByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM suitable_ads WHERE author_id = $1`, authorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete suitable ads by author: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// FindMatching returns the subscriptions satisfied by an announcement.
// The title match is substring containment: a subscription with title
// "bicycle" matches the announcement "Blue bicycle, barely used".
func (r *postgresRepository) FindMatching(ctx context.Context, category, title string, price decimal.Decimal) ([]suitablead.SuitableAd, error) {
	query := `
        SELECT ` + columns + `
        FROM suitable_ads
        WHERE category = $1
          AND $2 ILIKE '%' || title || '%'
          AND price_from <= $3
          AND price_to >= $3
    `

	rows, err := r.pool.Query(ctx, query, category, title, price)
	if err != nil {
		return nil, fmt.Errorf("failed to query matching suitable ads: %w", err)
	}
	defer rows.Close()

	var ads []suitablead.SuitableAd
	for rows.Next() {
		var s suitablead.SuitableAd
		if err := scanSuitableAd(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan suitable ad: %w", err)
		}
		ads = append(ads, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matching suitable ads: %w", err)
	}

	return ads, nil
}
