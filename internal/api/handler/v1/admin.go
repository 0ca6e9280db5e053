package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sibaq/festival-api/internal/api/handler/v1/response"
	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/service"
)

type StatisticsService interface {
	Statistics(ctx context.Context) (domain.Statistics, error)
}

type ExportService interface {
	Export(ctx context.Context, kind string) (filename string, csv []byte, err error)
}

type ImportService interface {
	Run(ctx context.Context) (service.ImportReport, error)
}

// AdminHandler serves the dashboard extras: statistics, CSV export and the
// one-time bulk import.
type AdminHandler struct {
	statsSvc  StatisticsService
	exportSvc ExportService
	importSvc ImportService
}

func NewAdminHandler(statsSvc StatisticsService, exportSvc ExportService, importSvc ImportService) *AdminHandler {
	return &AdminHandler{
		statsSvc:  statsSvc,
		exportSvc: exportSvc,
		importSvc: importSvc,
	}
}

// HandleStatistics godoc
// @Summary      Store-wide statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.Statistics
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/statistics [get]
func (h *AdminHandler) HandleStatistics(ctx *gin.Context) {
	stats, err := h.statsSvc.Statistics(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleStatistics -> h.statsSvc.Statistics -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleExport godoc
// @Summary      Export an entity collection as CSV
// @Tags         admin
// @Produce      text/csv
// @Param        type  query     string  true  "candidates, programs or dars"
// @Success      200   {string}  string
// @Failure      400   {object}  response.Err
// @Failure      401   {object}  response.Err
// @Failure      403   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /admin/export [get]
func (h *AdminHandler) HandleExport(ctx *gin.Context) {
	kind := ctx.Query("type")

	filename, csv, err := h.exportSvc.Export(ctx.Request.Context(), kind)
	if err != nil {
		if errors.Is(err, service.ErrUnknownExportKind) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUnknownExportKind))
			return
		}

		// Nothing has been written yet, so a failed export delivers no
		// partial file.
		err = fmt.Errorf("v1.HandleExport -> h.exportSvc.Export -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", csv)
}

// HandleImport godoc
// @Summary      Import the bundled dataset
// @Description  Inserts snapshot candidates and dars entries not already present
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.ImportResponse
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/import-data [post]
func (h *AdminHandler) HandleImport(ctx *gin.Context) {
	report, err := h.importSvc.Run(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleImport -> h.importSvc.Run -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ImportResponse{
		Success: true,
		Message: fmt.Sprintf("import completed: %d candidates, %d dars imported",
			report.CandidatesImported, report.DarsImported),
		CandidatesImported: report.CandidatesImported,
		DarsImported:       report.DarsImported,
		Errors:             report.Errors,
	})
}
