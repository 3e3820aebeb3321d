package services

import (
	"errors"

	"github.com/Rajan16703/gitcompare/internal/models"
	"github.com/Rajan16703/gitcompare/internal/repositories"
	"github.com/google/uuid"
)

// ErrForbidden means the caller does not own the requested comparison
var ErrForbidden = errors.New("comparison belongs to another owner")

type ComparisonService struct {
	comparisonRepo *repositories.ComparisonRepository
	shareLinkRepo  *repositories.ShareLinkRepository
}

func NewComparisonService(comparisonRepo *repositories.ComparisonRepository, shareLinkRepo *repositories.ShareLinkRepository) *ComparisonService {
	return &ComparisonService{
		comparisonRepo: comparisonRepo,
		shareLinkRepo:  shareLinkRepo,
	}
}

// SaveComparison persists a comparison run. Repo lists are dropped; only the
// account snapshots and their metrics are stored.
func (s *ComparisonService) SaveComparison(ownerID *string, profiles []*models.ProfileWithMetrics) (*models.Comparison, error) {
	if len(profiles) == 0 {
		return nil, errors.New("at least one profile is required")
	}

	usernames := make([]string, 0, len(profiles))
	entries := make([]models.ComparisonEntry, 0, len(profiles))
	for _, profile := range profiles {
		usernames = append(usernames, profile.User.Login)
		entries = append(entries, models.ComparisonEntry{
			User:    profile.User,
			Metrics: profile.Metrics,
		})
	}

	comparison := models.NewComparison(ownerID, usernames, entries)
	if err := s.comparisonRepo.Create(comparison); err != nil {
		return nil, err
	}

	return comparison, nil
}

// GetComparison retrieves a saved comparison after an ownership check.
// Anonymous saves have no owner and are readable through share tokens only.
func (s *ComparisonService) GetComparison(id, ownerID string) (*models.Comparison, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.New("invalid comparison ID format")
	}

	comparison, err := s.comparisonRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if comparison.OwnerID == nil || *comparison.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	return comparison, nil
}

// ListComparisons retrieves all comparisons saved by an owner
func (s *ComparisonService) ListComparisons(ownerID string) ([]*models.Comparison, error) {
	if ownerID == "" {
		return nil, errors.New("owner ID is required")
	}

	return s.comparisonRepo.GetByOwnerID(ownerID)
}

// DeleteComparison removes a saved comparison after an ownership check
func (s *ComparisonService) DeleteComparison(id, ownerID string) error {
	if _, err := s.GetComparison(id, ownerID); err != nil {
		return err
	}

	return s.comparisonRepo.Delete(id)
}

// CreateShareLink mints a public share token for one of the owner's saved
// comparisons
func (s *ComparisonService) CreateShareLink(comparisonID, ownerID string) (*models.ShareLink, error) {
	if _, err := s.GetComparison(comparisonID, ownerID); err != nil {
		return nil, err
	}

	link := models.NewShareLink(comparisonID)
	if err := s.shareLinkRepo.Create(link); err != nil {
		return nil, err
	}

	return link, nil
}

// ResolveShareLink loads the comparison behind a share token and bumps the
// token's view count
func (s *ComparisonService) ResolveShareLink(token string) (*models.Comparison, *models.ShareLink, error) {
	link, err := s.shareLinkRepo.GetByToken(token)
	if err != nil {
		return nil, nil, err
	}

	comparison, err := s.comparisonRepo.GetByID(link.ComparisonID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.shareLinkRepo.IncrementViewCount(token); err != nil {
		return nil, nil, err
	}
	link.ViewCount++

	return comparison, link, nil
}
