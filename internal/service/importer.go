package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository"
)

// ImportReport summarizes one bulk-import run.
type ImportReport struct {
	CandidatesImported int `json:"candidatesImported"`
	DarsImported       int `json:"darsImported"`
	Errors             int `json:"errors"`
}

type ImportService struct {
	candidateRepo CandidateRepository
	darsRepo      DarsRepository
}

func NewImportService(candidateRepo CandidateRepository, darsRepo DarsRepository) *ImportService {
	return &ImportService{
		candidateRepo: candidateRepo,
		darsRepo:      darsRepo,
	}
}

// Run walks the bundled snapshot and inserts whatever is missing: candidates
// matched by code, dars entries matched by (darsname, zone). One item
// failing is counted and skipped; the rest of the run continues.
func (s *ImportService) Run(ctx context.Context) (ImportReport, error) {
	snapshot, err := Snapshot()
	if err != nil {
		return ImportReport{}, fmt.Errorf("service.Snapshot -> %w", err)
	}

	var report ImportReport

	for _, candidate := range snapshot {
		_, err := s.candidateRepo.FindByCode(ctx, candidate.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrCandidateNotFound) {
			zap.L().Error("import: looking up candidate failed",
				zap.String("code", candidate.Code), zap.Error(err))
			report.Errors++
			continue
		}

		if _, err := s.candidateRepo.Create(ctx, candidate); err != nil {
			zap.L().Error("import: inserting candidate failed",
				zap.String("code", candidate.Code), zap.Error(err))
			report.Errors++
			continue
		}

		report.CandidatesImported++
	}

	for _, entry := range snapshotDars(snapshot) {
		_, err := s.darsRepo.FindByNameAndZone(ctx, entry.DarsName, entry.Zone)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrDarsNotFound) {
			zap.L().Error("import: looking up dars failed",
				zap.String("darsname", entry.DarsName), zap.Error(err))
			report.Errors++
			continue
		}

		if _, err := s.darsRepo.Create(ctx, entry); err != nil {
			zap.L().Error("import: inserting dars failed",
				zap.String("darsname", entry.DarsName), zap.Error(err))
			report.Errors++
			continue
		}

		report.DarsImported++
	}

	return report, nil
}

// snapshotDars derives the catalog rows for the import: one entry per
// (darsname, zone) with the snapshot's candidate count as the seeded total.
// Read paths recompute counts live, so the seed is informational only.
func snapshotDars(candidates []domain.Candidate) []domain.DarsEntry {
	entries := make([]domain.DarsEntry, 0)
	for _, row := range AggregateDars(candidates, "", "") {
		entries = append(entries, domain.DarsEntry{
			DarsName:        row.DarsName,
			DarsPlace:       row.DarsPlace,
			Zone:            row.Zone,
			Slug:            row.Slug,
			TotalCandidates: row.TotalCandidates,
		})
	}

	return entries
}
