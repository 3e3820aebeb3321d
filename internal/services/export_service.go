package services

import (
	"errors"
	"fmt"

	"github.com/Rajan16703/gitcompare/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService renders saved comparisons as spreadsheets
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var exportColumns = []string{
	"Username",
	"Total Score",
	"Total Stars",
	"Total Forks",
	"Followers",
	"Following",
	"Repositories",
	"Languages",
	"Contributions",
	"Readme Quality",
	"PRs + Issues",
	"Achievement Score",
	"Community Score",
	"Profile Age (days)",
}

// ExportComparison builds an xlsx workbook with one row per participant
func (s *ExportService) ExportComparison(comparison *models.Comparison) (*excelize.File, error) {
	if comparison == nil || len(comparison.Results) == 0 {
		return nil, errors.New("comparison has no results to export")
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for col, header := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, entry := range comparison.Results {
		values := []interface{}{
			entry.User.Login,
			entry.Metrics.TotalScore,
			entry.Metrics.TotalStars,
			entry.Metrics.TotalForks,
			entry.Metrics.Followers,
			entry.Metrics.Following,
			entry.Metrics.Repositories,
			entry.Metrics.Languages,
			entry.Metrics.Contributions,
			entry.Metrics.ReadmeQualityScore,
			entry.Metrics.PRIssues,
			entry.Metrics.AchievementScore,
			entry.Metrics.CommunityScore,
			entry.Metrics.ProfileAge,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFilename builds the download filename for a comparison
func (s *ExportService) ExportFilename(comparison *models.Comparison) string {
	return fmt.Sprintf("comparison-%s.xlsx", comparison.ID)
}
