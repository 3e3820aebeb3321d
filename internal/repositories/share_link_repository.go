package repositories

import (
	"database/sql"

	"github.com/Rajan16703/gitcompare/internal/models"
)

type ShareLinkRepository struct {
	db *sql.DB
}

func NewShareLinkRepository(db *sql.DB) *ShareLinkRepository {
	return &ShareLinkRepository{
		db: db,
	}
}

// Create persists a new share link
func (r *ShareLinkRepository) Create(link *models.ShareLink) error {
	query := `
		INSERT INTO share_links (token, comparison_id, view_count, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(query,
		link.Token,
		link.ComparisonID,
		link.ViewCount,
		link.CreatedAt,
	)

	return err
}

// GetByToken retrieves a share link by its public token
func (r *ShareLinkRepository) GetByToken(token string) (*models.ShareLink, error) {
	query := `
		SELECT token, comparison_id, view_count, created_at
		FROM share_links
		WHERE token = $1
	`

	link := &models.ShareLink{}
	err := r.db.QueryRow(query, token).Scan(
		&link.Token,
		&link.ComparisonID,
		&link.ViewCount,
		&link.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return link, nil
}

// IncrementViewCount bumps the view counter of a share link
func (r *ShareLinkRepository) IncrementViewCount(token string) error {
	query := `UPDATE share_links SET view_count = view_count + 1 WHERE token = $1`

	result, err := r.db.Exec(query, token)
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

// DeleteOrphaned removes share links whose comparison no longer exists and
// returns how many rows were pruned
func (r *ShareLinkRepository) DeleteOrphaned() (int64, error) {
	query := `
		DELETE FROM share_links
		WHERE comparison_id NOT IN (SELECT id FROM comparisons)
	`

	result, err := r.db.Exec(query)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
