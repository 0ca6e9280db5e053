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

type ProgramService interface {
	List(ctx context.Context) ([]domain.Program, error)
	Aggregate(ctx context.Context, category, zone string) ([]domain.ProgramGroup, error)
	Create(ctx context.Context, program domain.Program) (domain.Program, error)
	Update(ctx context.Context, id uint, program domain.Program) (domain.Program, error)
	Delete(ctx context.Context, id uint) error
}

type ProgramHandler struct {
	svc ProgramService
}

func NewProgramHandler(svc ProgramService) *ProgramHandler {
	return &ProgramHandler{
		svc: svc,
	}
}

// HandleAggregatePublic godoc
// @Summary      List aggregated programs
// @Description  Programs derived from candidate slot assignments with participant counts
// @Tags         programs
// @Produce      json
// @Param        category  query     string  false  "JUNIOR or SENIOR"
// @Param        zone      query     string  false  "zone filter"
// @Success      200       {object}  response.ProgramGroupList
// @Failure      500       {object}  response.Err
// @Router       /programs [get]
func (h *ProgramHandler) HandleAggregatePublic(ctx *gin.Context) {
	category := ctx.Query("category")
	zone := ctx.Query("zone")

	groups, err := h.svc.Aggregate(ctx.Request.Context(), category, zone)
	if err != nil {
		zap.L().Warn("program aggregation unavailable, serving bundled snapshot", zap.Error(err))

		snapshot, snapErr := service.Snapshot()
		if snapErr != nil {
			err = fmt.Errorf("v1.HandleAggregatePublic -> h.svc.Aggregate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		groups = service.AggregatePrograms(snapshot, category, zone)
		ctx.JSON(http.StatusOK, response.ProgramGroupList{
			Success:  true,
			Programs: groups,
			Total:    len(groups),
			Degraded: true,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.ProgramGroupList{
		Success:  true,
		Programs: groups,
		Total:    len(groups),
	})
}

// HandleListAdmin godoc
// @Summary      List the program catalog
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Program
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/programs [get]
func (h *ProgramHandler) HandleListAdmin(ctx *gin.Context) {
	programs, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmin -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, programs)
}

// HandleCreate godoc
// @Summary      Create a program
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.ProgramRequest  true  "program"
// @Success      201      {object}  domain.Program
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/programs [post]
func (h *ProgramHandler) HandleCreate(ctx *gin.Context) {
	var req request.ProgramRequest
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
		err = fmt.Errorf("v1.HandleCreate -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdate godoc
// @Summary      Update a program
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        programID  path      int                     true  "program id"
// @Param        request    body      request.ProgramRequest  true  "program"
// @Success      200        {object}  domain.Program
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /admin/programs/{programID} [put]
func (h *ProgramHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "programID")
	if !ok {
		return
	}

	var req request.ProgramRequest
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
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrProgramNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleUpdate -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDelete godoc
// @Summary      Delete a program
// @Tags         admin
// @Produce      json
// @Param        programID  path      int  true  "program id"
// @Success      200        {object}  map[string]bool
// @Failure      400        {object}  response.Err
// @Failure      401        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /admin/programs/{programID} [delete]
func (h *ProgramHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "programID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProgramNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrProgramNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDelete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
