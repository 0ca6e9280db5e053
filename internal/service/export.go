package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrUnknownExportKind = errors.New("unknown export kind")

// Export kinds accepted by the admin export endpoint.
const (
	ExportCandidates = "candidates"
	ExportPrograms   = "programs"
	ExportDars       = "dars"
)

var (
	candidateExportHeaders = []string{
		"Code", "Name", "Dars Name", "Dars Place", "Zone", "Category",
		"Stage 1", "Stage 2", "Stage 3",
		"Group Stage 1", "Group Stage 2", "Group Stage 3",
		"Off Stage 1", "Off Stage 2", "Off Stage 3", "Group Off Stage",
	}
	programExportHeaders = []string{"Name", "Category", "Type", "Description"}
	darsExportHeaders    = []string{"Dars Name", "Place", "Zone", "Total Candidates"}
)

type ExportService struct {
	candidateRepo CandidateRepository
	programRepo   ProgramRepository
}

func NewExportService(candidateRepo CandidateRepository, programRepo ProgramRepository) *ExportService {
	return &ExportService{
		candidateRepo: candidateRepo,
		programRepo:   programRepo,
	}
}

// Export renders one entity collection as CSV and names the download file.
// The dars export carries live counts from the candidate roll-up, matching
// what the public listing serves.
func (s *ExportService) Export(ctx context.Context, kind string) (filename string, csv []byte, err error) {
	var rows [][]string
	var headers []string

	switch kind {
	case ExportCandidates:
		candidates, err := s.candidateRepo.FindAll(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
		}

		headers = candidateExportHeaders
		for _, c := range candidates {
			rows = append(rows, []string{
				c.Code, c.Name, c.DarsName, c.DarsPlace, c.Zone, c.Category,
				c.Stage1, c.Stage2, c.Stage3,
				c.GroupStage1, c.GroupStage2, c.GroupStage3,
				c.OffStage1, c.OffStage2, c.OffStage3, c.GroupOffStage,
			})
		}

	case ExportPrograms:
		programs, err := s.programRepo.FindAll(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("s.programRepo.FindAll -> %w", err)
		}

		headers = programExportHeaders
		for _, p := range programs {
			rows = append(rows, []string{p.Name, p.Category, p.Type, p.Description})
		}

	case ExportDars:
		candidates, err := s.candidateRepo.FindAll(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("s.candidateRepo.FindAll -> %w", err)
		}

		headers = darsExportHeaders
		for _, d := range AggregateDars(candidates, "", "") {
			rows = append(rows, []string{
				d.DarsName, d.DarsPlace, d.Zone, strconv.Itoa(d.TotalCandidates),
			})
		}

	default:
		return "", nil, ErrUnknownExportKind
	}

	filename = fmt.Sprintf("%s-export-%s.csv", kind, time.Now().Format("2006-01-02"))

	return filename, []byte(writeCSV(headers, rows)), nil
}

// writeCSV quotes every field unconditionally and doubles embedded quotes.
// encoding/csv quotes only when it must, and downstream spreadsheet imports
// here rely on the fully quoted form, so the writer is explicit about it.
func writeCSV(headers []string, rows [][]string) string {
	var b strings.Builder

	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
	}

	writeRow(headers)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(row)
	}

	return b.String()
}
