package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/voleisexta/roster-system/models"
)

var (
	ErrConfirmationNotFound     = errors.New("confirmation not found")
	ErrConfirmationNameConflict = errors.New("confirmation name conflict: name already confirmed")
)

type ConfirmationRepository interface {
	Insert(ctx context.Context, c *models.Confirmation) error
	ListActive(ctx context.Context, excludeTest bool) ([]*models.Confirmation, error)
	FindByID(ctx context.Context, id int) (*models.Confirmation, error)
	DeleteByID(ctx context.Context, id int) error
	DeleteByName(ctx context.Context, name string) (int, error)
	DeleteAll(ctx context.Context) (int, error)
	CountActive(ctx context.Context, excludeTest bool) (int, error)
}

type postgresConfirmationRepository struct {
	db *sql.DB
}

func NewPostgresConfirmationRepository(db *sql.DB) ConfirmationRepository {
	return &postgresConfirmationRepository{db: db}
}

func (r *postgresConfirmationRepository) Insert(ctx context.Context, c *models.Confirmation) error {
	query := `
		INSERT INTO confirmations (name, category, gender, is_test)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, confirmed_at`

	err := r.db.QueryRowContext(ctx, query,
		c.Name,
		c.Category,
		string(c.Gender),
		c.IsTest,
	).Scan(&c.ID, &c.ConfirmedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return ErrConfirmationNameConflict
			}
		}
		return fmt.Errorf("failed to insert confirmation: %w", err)
	}
	return nil
}

func (r *postgresConfirmationRepository) scanConfirmation(rowScanner interface {
	Scan(dest ...interface{}) error
}, c *models.Confirmation) error {
	var gender sql.NullString
	if err := rowScanner.Scan(&c.ID, &c.Name, &c.Category, &gender, &c.IsTest, &c.ConfirmedAt); err != nil {
		return err
	}
	c.Gender = models.Gender(gender.String)
	return nil
}

func (r *postgresConfirmationRepository) ListActive(ctx context.Context, excludeTest bool) ([]*models.Confirmation, error) {
	query := `
		SELECT id, name, category, gender, is_test, confirmed_at
		FROM confirmations`
	if excludeTest {
		query += ` WHERE NOT is_test`
	}
	query += ` ORDER BY confirmed_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	defer rows.Close()

	confirmations := make([]*models.Confirmation, 0)
	for rows.Next() {
		var c models.Confirmation
		if err := r.scanConfirmation(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan confirmation row: %w", err)
		}
		confirmations = append(confirmations, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating confirmation rows: %w", err)
	}
	return confirmations, nil
}

func (r *postgresConfirmationRepository) FindByID(ctx context.Context, id int) (*models.Confirmation, error) {
	query := `
		SELECT id, name, category, gender, is_test, confirmed_at
		FROM confirmations
		WHERE id = $1`

	c := &models.Confirmation{}
	err := r.scanConfirmation(r.db.QueryRowContext(ctx, query, id), c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("failed to find confirmation: %w", err)
	}
	return c, nil
}

func (r *postgresConfirmationRepository) DeleteByID(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM confirmations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete confirmation: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for confirmation deletion: %w", err)
	}
	if rowsAffected == 0 {
		return ErrConfirmationNotFound
	}
	return nil
}

func (r *postgresConfirmationRepository) DeleteByName(ctx context.Context, name string) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM confirmations WHERE LOWER(name) = LOWER($1)`, name)
	if err != nil {
		return 0, fmt.Errorf("failed to delete confirmation by name: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows for confirmation deletion by name: %w", err)
	}
	return int(rowsAffected), nil
}

func (r *postgresConfirmationRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM confirmations`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear confirmations: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows for confirmation clearing: %w", err)
	}
	return int(rowsAffected), nil
}

func (r *postgresConfirmationRepository) CountActive(ctx context.Context, excludeTest bool) (int, error) {
	query := `SELECT COUNT(*) FROM confirmations`
	if excludeTest {
		query += ` WHERE NOT is_test`
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count confirmations: %w", err)
	}
	return count, nil
}
