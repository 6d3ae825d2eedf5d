package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard-backend/internal/domains/announcement"
	"adboard-backend/internal/domains/author"
	"adboard-backend/pkg/cache"
	"adboard-backend/pkg/database"
)

// postgresRepository implements author.Repository on pgxpool.
// The cache handle exists only to invalidate announcement entries
// when a cascade delete removes announcement rows.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository creates a new author repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

// Create inserts the author, its role association and its contact rows
// in one transaction. Contact rows get author_id assigned here so a
// contact record can never reference anyone but its owner.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
            INSERT INTO authors (name, password_hash, version)
            VALUES ($1, $2, 0)
            RETURNING id, version, created_at, updated_at
        `

		err := tx.QueryRow(ctx, query, a.Name, a.PasswordHash).Scan(
			&a.ID,
			&a.Version,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				if pgErr.Code == "23505" { // unique_violation
					if strings.Contains(pgErr.Message, "name") {
						return author.ErrDuplicateName
					}
				}
			}
			return fmt.Errorf("failed to create author: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`INSERT INTO author_roles (author_id, role) VALUES ($1, $2)`,
			a.ID, a.Role,
		); err != nil {
			return fmt.Errorf("failed to create role association: %w", err)
		}

		if err := insertContacts(ctx, tx, a); err != nil {
			return err
		}

		return nil
	})
}

func insertContacts(ctx context.Context, tx pgx.Tx, a *author.Author) error {
	for i := range a.Emails {
		a.Emails[i].AuthorID = a.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO author_emails (author_id, email) VALUES ($1, $2) RETURNING id`,
			a.ID, a.Emails[i].Email,
		).Scan(&a.Emails[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert author email: %w", err)
		}
	}

	for i := range a.Phones {
		a.Phones[i].AuthorID = a.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO author_phones (author_id, number) VALUES ($1, $2) RETURNING id`,
			a.ID, a.Phones[i].Number,
		).Scan(&a.Phones[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert author phone: %w", err)
		}
	}

	for i := range a.Addresses {
		a.Addresses[i].AuthorID = a.ID
		err := tx.QueryRow(ctx,
			`INSERT INTO author_addresses (author_id, city, street) VALUES ($1, $2, $3) RETURNING id`,
			a.ID, a.Addresses[i].City, a.Addresses[i].Street,
		).Scan(&a.Addresses[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert author address: %w", err)
		}
	}

	return nil
}

// GetByID retrieves the author together with its contact collections
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `
        SELECT a.id, a.name, a.password_hash, COALESCE(ar.role, 'user'), a.version, a.created_at, a.updated_at
        FROM authors a
        LEFT JOIN author_roles ar ON ar.author_id = a.id
        WHERE a.id = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.PasswordHash,
		&a.Role,
		&a.Version,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if err := r.loadContacts(ctx, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

// GetByName is the login lookup, no contact collections needed
func (r *postgresRepository) GetByName(ctx context.Context, name string) (*author.Author, error) {
	query := `
        SELECT a.id, a.name, a.password_hash, COALESCE(ar.role, 'user'), a.version, a.created_at, a.updated_at
        FROM authors a
        LEFT JOIN author_roles ar ON ar.author_id = a.id
        WHERE a.name = $1
    `

	var a author.Author
	err := r.pool.QueryRow(ctx, query, name).Scan(
		&a.ID,
		&a.Name,
		&a.PasswordHash,
		&a.Role,
		&a.Version,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by name: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) loadContacts(ctx context.Context, a *author.Author) error {
	rows, err := r.pool.Query(ctx,
		`SELECT id, author_id, email FROM author_emails WHERE author_id = $1 ORDER BY email`, a.ID)
	if err != nil {
		return fmt.Errorf("failed to query author emails: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e author.Email
		if err := rows.Scan(&e.ID, &e.AuthorID, &e.Email); err != nil {
			return fmt.Errorf("failed to scan author email: %w", err)
		}
		a.Emails = append(a.Emails, e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating author emails: %w", err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, author_id, number FROM author_phones WHERE author_id = $1 ORDER BY number`, a.ID)
	if err != nil {
		return fmt.Errorf("failed to query author phones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p author.Phone
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.Number); err != nil {
			return fmt.Errorf("failed to scan author phone: %w", err)
		}
		a.Phones = append(a.Phones, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating author phones: %w", err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT id, author_id, city, street FROM author_addresses WHERE author_id = $1 ORDER BY city, street`, a.ID)
	if err != nil {
		return fmt.Errorf("failed to query author addresses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ad author.Address
		if err := rows.Scan(&ad.ID, &ad.AuthorID, &ad.City, &ad.Street); err != nil {
			return fmt.Errorf("failed to scan author address: %w", err)
		}
		a.Addresses = append(a.Addresses, ad)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating author addresses: %w", err)
	}

	return nil
}

// GetAll finds and returns all authors, without contact collections
func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `
        SELECT a.id, a.name, a.password_hash, COALESCE(ar.role, 'user'), a.version, a.created_at, a.updated_at
        FROM authors a
        LEFT JOIN author_roles ar ON ar.author_id = a.id
        ORDER BY a.created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.PasswordHash,
			&a.Role,
			&a.Version,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

// Update replaces profile fields and contact collections with
// optimistic locking. The WHERE clause includes the version check.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author, currentVersion int) (*author.Author, error) {
	updated, err := database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*author.Author, error) {
		query := `
            UPDATE authors
            SET name = $1,
                version = version + 1,
                updated_at = NOW()
            WHERE id = $2 AND version = $3
            RETURNING id, name, password_hash, version, created_at, updated_at
        `

		var u author.Author
		err := tx.QueryRow(ctx, query, a.Name, a.ID, currentVersion).Scan(
			&u.ID,
			&u.Name,
			&u.PasswordHash,
			&u.Version,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Distinguish missing author from version conflict
				var exists bool
				if checkErr := tx.QueryRow(ctx,
					`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, a.ID,
				).Scan(&exists); checkErr != nil {
					return nil, fmt.Errorf("failed to check author existence: %w", checkErr)
				}
				if !exists {
					return nil, author.ErrAuthorNotFound
				}
				return nil, author.ErrVersionMismatch
			}

			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return nil, author.ErrDuplicateName
			}
			return nil, fmt.Errorf("failed to update author: %w", err)
		}
		if err := tx.QueryRow(ctx,
			`SELECT COALESCE(role, 'user') FROM author_roles WHERE author_id = $1`, u.ID,
		).Scan(&u.Role); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to load author role: %w", err)
		}
		if u.Role == "" {
			u.Role = author.RoleUser
		}

		// Contact collections are replaced wholesale
		for _, table := range []string{"author_emails", "author_phones", "author_addresses"} {
			if _, err := tx.Exec(ctx,
				fmt.Sprintf("DELETE FROM %s WHERE author_id = $1", table), a.ID,
			); err != nil {
				return nil, fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		a.ID = u.ID
		if err := insertContacts(ctx, tx, a); err != nil {
			return nil, err
		}
		u.Emails = a.Emails
		u.Phones = a.Phones
		u.Addresses = a.Addresses

		return &u, nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the author and every dependent row in one transaction.
// Order matters: announcements reference the author, so they go first,
// then the role association and contacts, then the author row itself.
// Suitable ads are removed by the service through the suitable ad
// repository before this is called.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM announcements WHERE author_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to delete announcements by author: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM author_roles WHERE author_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to delete role association: %w", err)
		}

		for _, table := range []string{"author_emails", "author_phones", "author_addresses"} {
			if _, err := tx.Exec(ctx,
				fmt.Sprintf("DELETE FROM %s WHERE author_id = $1", table), id,
			); err != nil {
				return fmt.Errorf("failed to delete from %s: %w", table, err)
			}
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return author.ErrAuthorNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	announcement.InvalidateCaches(ctx, r.cache)

	return nil
}

// DeleteAnnouncementsByAuthor removes all announcements published by
// the author and reports how many rows went.
func (r *postgresRepository) DeleteAnnouncementsByAuthor(ctx context.Context, id uuid.UUID) (int64, error) {
	cmdTag, err := r.pool.Exec(ctx,
		`DELETE FROM announcements WHERE author_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete announcements by author: %w", err)
	}

	announcement.InvalidateCaches(ctx, r.cache)

	return cmdTag.RowsAffected(), nil
}

// ExistsByName checks if an author name is taken (lightweight query)
func (r *postgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE name = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}
