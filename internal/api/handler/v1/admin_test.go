package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/service"
)

type stubStatisticsService struct {
	stats domain.Statistics
	err   error
}

func (s *stubStatisticsService) Statistics(context.Context) (domain.Statistics, error) {
	return s.stats, s.err
}

type stubExportService struct{}

func (stubExportService) Export(_ context.Context, kind string) (string, []byte, error) {
	if kind != service.ExportCandidates {
		return "", nil, service.ErrUnknownExportKind
	}

	return "candidates-export-2026-08-31.csv", []byte("\"Code\"\n\"J101\""), nil
}

type stubImportService struct {
	report service.ImportReport
}

func (s *stubImportService) Run(context.Context) (service.ImportReport, error) {
	return s.report, nil
}

func adminTestRouter(statsSvc StatisticsService, importSvc ImportService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(statsSvc, stubExportService{}, importSvc)

	router := gin.New()
	router.GET("/admin/statistics", h.HandleStatistics)
	router.GET("/admin/export", h.HandleExport)
	router.POST("/admin/import-data", h.HandleImport)

	return router
}

func TestHandleStatistics(t *testing.T) {
	router := adminTestRouter(&stubStatisticsService{stats: domain.Statistics{
		TotalCandidates:      4,
		TotalPrograms:        2,
		TotalDars:            3,
		CandidatesByCategory: map[string]int{"JUNIOR": 2, "SENIOR": 2},
		CandidatesByZone:     map[string]int{"North": 3, "South": 1},
	}}, &stubImportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/statistics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"totalCandidates": 4,
		"totalPrograms": 2,
		"totalDars": 3,
		"candidatesByCategory": {"JUNIOR": 2, "SENIOR": 2},
		"candidatesByZone": {"North": 3, "South": 1}
	}`, rec.Body.String())
}

func TestHandleExport(t *testing.T) {
	t.Run("delivers the file as an attachment", func(t *testing.T) {
		router := adminTestRouter(&stubStatisticsService{}, &stubImportService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/export?type=candidates", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="candidates-export-2026-08-31.csv"`,
			rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "\"Code\"\n\"J101\"", rec.Body.String())
	})

	t.Run("unknown type is a bad request", func(t *testing.T) {
		router := adminTestRouter(&stubStatisticsService{}, &stubImportService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/export?type=users", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleImport(t *testing.T) {
	router := adminTestRouter(&stubStatisticsService{}, &stubImportService{
		report: service.ImportReport{CandidatesImported: 8, DarsImported: 4},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/import-data", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "import completed: 8 candidates, 4 dars imported",
		"candidatesImported": 8,
		"darsImported": 4,
		"errors": 0
	}`, rec.Body.String())
}
