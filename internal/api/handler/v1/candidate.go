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

type CandidateService interface {
	Search(ctx context.Context, query, zone, category string) ([]domain.Candidate, error)
	Get(ctx context.Context, id uint) (domain.Candidate, error)
	Create(ctx context.Context, candidate domain.Candidate) (domain.Candidate, error)
	Update(ctx context.Context, id uint, candidate domain.Candidate) (domain.Candidate, error)
	Delete(ctx context.Context, id uint) error
}

type CandidateHandler struct {
	svc CandidateService
}

func NewCandidateHandler(svc CandidateService) *CandidateHandler {
	return &CandidateHandler{
		svc: svc,
	}
}

// HandleListPublic godoc
// @Summary      Search candidates
// @Description  Public candidate search over code, name and dars name
// @Tags         candidates
// @Produce      json
// @Param        search    query     string  false  "free-text query"
// @Param        zone      query     string  false  "zone filter"
// @Param        category  query     string  false  "JUNIOR or SENIOR"
// @Success      200       {object}  response.CandidateList
// @Failure      500       {object}  response.Err
// @Router       /candidates [get]
func (h *CandidateHandler) HandleListPublic(ctx *gin.Context) {
	query := ctx.Query("search")
	zone := ctx.Query("zone")
	category := ctx.Query("category")

	candidates, err := h.svc.Search(ctx.Request.Context(), query, zone, category)
	if err != nil {
		// Degraded mode: serve the bundled snapshot and say so.
		zap.L().Warn("candidate search unavailable, serving bundled snapshot", zap.Error(err))

		snapshot, snapErr := service.Snapshot()
		if snapErr != nil {
			err = fmt.Errorf("v1.HandleListPublic -> h.svc.Search -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		candidates = service.FilterCandidates(snapshot, query, zone, category)
		ctx.JSON(http.StatusOK, response.CandidateList{
			Success:    true,
			Candidates: candidates,
			Total:      len(candidates),
			Degraded:   true,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.CandidateList{
		Success:    true,
		Candidates: candidates,
		Total:      len(candidates),
	})
}

// HandleListAdmin godoc
// @Summary      Search candidates (admin)
// @Tags         admin
// @Produce      json
// @Param        search    query     string  false  "free-text query"
// @Param        zone      query     string  false  "zone filter"
// @Param        category  query     string  false  "JUNIOR or SENIOR"
// @Success      200       {object}  response.CandidateList
// @Failure      401       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /admin/candidates [get]
func (h *CandidateHandler) HandleListAdmin(ctx *gin.Context) {
	candidates, err := h.svc.Search(ctx.Request.Context(),
		ctx.Query("search"), ctx.Query("zone"), ctx.Query("category"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmin -> h.svc.Search -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CandidateList{
		Success:    true,
		Candidates: candidates,
		Total:      len(candidates),
	})
}

// HandleGet godoc
// @Summary      Fetch a single candidate
// @Tags         admin
// @Produce      json
// @Param        candidateID  path      int  true  "candidate id"
// @Success      200          {object}  domain.Candidate
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/candidates/{candidateID} [get]
func (h *CandidateHandler) HandleGet(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	candidate, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCandidateNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleGet -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, candidate)
}

// HandleCreate godoc
// @Summary      Register a candidate
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCandidateRequest  true  "candidate"
// @Success      201      {object}  domain.Candidate
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/candidates [post]
func (h *CandidateHandler) HandleCreate(ctx *gin.Context) {
	var req request.CreateCandidateRequest
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
		if errors.Is(err, service.ErrCandidateCodeExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCandidateCodeExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreate -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdate godoc
// @Summary      Update a candidate
// @Description  The candidate code is immutable and absent from the payload
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        candidateID  path      int                             true  "candidate id"
// @Param        request      body      request.UpdateCandidateRequest  true  "candidate"
// @Success      200          {object}  domain.Candidate
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/candidates/{candidateID} [put]
func (h *CandidateHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	var req request.UpdateCandidateRequest
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
		if errors.Is(err, service.ErrCandidateNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCandidateNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleUpdate -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDelete godoc
// @Summary      Delete a candidate
// @Tags         admin
// @Produce      json
// @Param        candidateID  path      int  true  "candidate id"
// @Success      200          {object}  map[string]bool
// @Failure      400          {object}  response.Err
// @Failure      401          {object}  response.Err
// @Failure      403          {object}  response.Err
// @Failure      404          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /admin/candidates/{candidateID} [delete]
func (h *CandidateHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCandidateNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDelete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
