package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sibaq/festival-api/internal/api/handler/v1/request"
	"github.com/sibaq/festival-api/internal/api/handler/v1/response"
	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/service"
)

type DarsService interface {
	Aggregate(ctx context.Context, zone, search string) ([]domain.DarsSummary, error)
	List(ctx context.Context) ([]domain.DarsEntry, error)
	Create(ctx context.Context, entry domain.DarsEntry) (domain.DarsEntry, error)
	Update(ctx context.Context, id uint, entry domain.DarsEntry) (domain.DarsEntry, error)
	Delete(ctx context.Context, id uint) error
}

type DarsHandler struct {
	svc DarsService
}

func NewDarsHandler(svc DarsService) *DarsHandler {
	return &DarsHandler{
		svc: svc,
	}
}

// HandleAggregatePublic godoc
// @Summary      List dars with candidate counts
// @Description  One row per institution with a live candidate count
// @Tags         dars
// @Produce      json
// @Param        zone    query     string  false  "zone filter"
// @Param        search  query     string  false  "dars name query"
// @Success      200     {object}  response.DarsList
// @Failure      500     {object}  response.Err
// @Router       /dars [get]
func (h *DarsHandler) HandleAggregatePublic(ctx *gin.Context) {
	zone := ctx.Query("zone")
	search := ctx.Query("search")

	rows, err := h.svc.Aggregate(ctx.Request.Context(), zone, search)
	if err != nil {
		zap.L().Warn("dars aggregation unavailable, serving bundled snapshot", zap.Error(err))

		snapshot, snapErr := service.Snapshot()
		if snapErr != nil {
			err = fmt.Errorf("v1.HandleAggregatePublic -> h.svc.Aggregate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		rows = service.AggregateDars(snapshot, zone, search)
		ctx.JSON(http.StatusOK, response.DarsList{
			Success:  true,
			Dars:     rows,
			Total:    len(rows),
			Degraded: true,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.DarsList{
		Success: true,
		Dars:    rows,
		Total:   len(rows),
	})
}

// HandleListAdmin godoc
// @Summary      List the dars catalog
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.DarsEntry
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/dars [get]
func (h *DarsHandler) HandleListAdmin(ctx *gin.Context) {
	entries, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmin -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleCreate godoc
// @Summary      Create a dars entry
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateDarsRequest  true  "dars"
// @Success      201      {object}  domain.DarsEntry
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/dars [post]
func (h *DarsHandler) HandleCreate(ctx *gin.Context) {
	var req request.CreateDarsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Create(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrDarsExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDarsExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreate -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdate godoc
// @Summary      Update a dars entry
// @Description  The dars name is immutable and absent from the payload
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        darsID   path      int                        true  "dars id"
// @Param        request  body      request.UpdateDarsRequest  true  "dars"
// @Success      200      {object}  domain.DarsEntry
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/dars/{darsID} [put]
func (h *DarsHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "darsID")
	if !ok {
		return
	}

	var req request.UpdateDarsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrDarsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDarsNotFound))
			return
		}
		if errors.Is(err, service.ErrDarsExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDarsExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdate -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDelete godoc
// @Summary      Delete a dars entry
// @Tags         admin
// @Produce      json
// @Param        darsID  path      int  true  "dars id"
// @Success      200     {object}  map[string]bool
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /admin/dars/{darsID} [delete]
func (h *DarsHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "darsID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDarsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDarsNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDelete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
