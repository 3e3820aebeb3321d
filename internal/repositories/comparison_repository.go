package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Rajan16703/gitcompare/internal/models"
)

type ComparisonRepository struct {
	db *sql.DB
}

func NewComparisonRepository(db *sql.DB) *ComparisonRepository {
	return &ComparisonRepository{
		db: db,
	}
}

// Create persists a saved comparison. Usernames and results are stored as
// JSON columns.
func (r *ComparisonRepository) Create(comparison *models.Comparison) error {
	usernames, err := json.Marshal(comparison.Usernames)
	if err != nil {
		return err
	}

	results, err := json.Marshal(comparison.Results)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO comparisons (id, owner_id, usernames, results, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.db.Exec(query,
		comparison.ID,
		comparison.OwnerID,
		string(usernames),
		string(results),
		comparison.CreatedAt,
	)

	return err
}

// GetByID retrieves a saved comparison
func (r *ComparisonRepository) GetByID(id string) (*models.Comparison, error) {
	query := `
		SELECT id, owner_id, usernames, results, created_at
		FROM comparisons
		WHERE id = $1
	`

	return r.scanComparison(r.db.QueryRow(query, id))
}

// GetByOwnerID retrieves all comparisons saved by an owner, newest first
func (r *ComparisonRepository) GetByOwnerID(ownerID string) ([]*models.Comparison, error) {
	query := `
		SELECT id, owner_id, usernames, results, created_at
		FROM comparisons
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparisons []*models.Comparison
	for rows.Next() {
		comparison, err := r.scanComparison(rows)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, comparison)
	}

	return comparisons, rows.Err()
}

// Delete removes a saved comparison
func (r *ComparisonRepository) Delete(id string) error {
	query := `DELETE FROM comparisons WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DeleteAnonymousOlderThan removes anonymous comparisons created before the
// cutoff and returns how many rows were pruned
func (r *ComparisonRepository) DeleteAnonymousOlderThan(cutoff time.Time) (int64, error) {
	query := `DELETE FROM comparisons WHERE owner_id IS NULL AND created_at < $1`

	result, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ComparisonRepository) scanComparison(row rowScanner) (*models.Comparison, error) {
	comparison := &models.Comparison{}
	var usernames, results string

	err := row.Scan(
		&comparison.ID,
		&comparison.OwnerID,
		&usernames,
		&results,
		&comparison.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(usernames), &comparison.Usernames); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(results), &comparison.Results); err != nil {
		return nil, err
	}

	return comparison, nil
}
