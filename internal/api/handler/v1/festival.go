package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"festivalapi/internal/api/handler/v1/request"
	"festivalapi/internal/api/handler/v1/response"
	"festivalapi/internal/domain"
	"festivalapi/internal/service"
)

type FestivalService interface {
	CreateFestival(ctx context.Context, festival domain.Festival) (domain.Festival, error)
	GetFestival(ctx context.Context, id uint) (domain.Festival, error)
	ListFestivals(ctx context.Context, limit, offset int) ([]domain.Festival, error)
	UpdateFestival(ctx context.Context, festival domain.Festival) (domain.Festival, error)
	DeleteFestival(ctx context.Context, id uint) error
}

type FestivalHandler struct {
	svc  FestivalService
	uSvc UserService
}

func NewFestivalHandler(svc FestivalService, uSvc UserService) *FestivalHandler {
	return &FestivalHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleListFestivals godoc
// @Summary      List festivals
// @Tags         festivals
// @Produce      json
// @Param        limit   query     int false "page size (max 100, default 20)"
// @Param        offset  query     int false "offset"
// @Success      200     {array}   domain.Festival
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /festivals/ [get]
func (h *FestivalHandler) HandleListFestivals(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %w", err)))
		return
	}
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid offset: %w", err)))
		return
	}

	festivals, err := h.svc.ListFestivals(ctx.Request.Context(), limit, offset)
	if err != nil {
		err = fmt.Errorf("v1.HandleListFestivals -> h.svc.ListFestivals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if len(festivals) == 0 {
		response.RenderErr(ctx, response.ErrNotFound("festivals", "offset", offset))
		return
	}

	ctx.JSON(http.StatusOK, festivals)
}

// HandleGetFestival godoc
// @Summary      Get one festival
// @Tags         festivals
// @Produce      json
// @Param        festivalID  path      int true "festival ID"
// @Success      200         {object}  domain.Festival
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /festivals/{festivalID} [get]
func (h *FestivalHandler) HandleGetFestival(ctx *gin.Context) {
	id, respErr := parseFestivalID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	festival, err := h.svc.GetFestival(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("festival", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetFestival -> h.svc.GetFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, festival)
}

// HandleCreateFestival godoc
// @Summary      Create a festival
// @Tags         festivals
// @Accept       json
// @Produce      json
// @Param        request  body      request.FestivalRequest true "festival"
// @Success      200      {object}  domain.Festival
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /festivals/ [post]
// @Security     BearerAuth
func (h *FestivalHandler) HandleCreateFestival(ctx *gin.Context) {
	_, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FestivalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateFestival(ctx.Request.Context(), festivalFromRequest(req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateFestival -> h.svc.CreateFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, created)
}

// HandleUpdateFestival godoc
// @Summary      Update a festival
// @Tags         festivals
// @Accept       json
// @Produce      json
// @Param        festivalID  path      int                     true "festival ID"
// @Param        request     body      request.FestivalRequest true "festival"
// @Success      200         {object}  domain.Festival
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /festivals/{festivalID} [put]
// @Security     BearerAuth
func (h *FestivalHandler) HandleUpdateFestival(ctx *gin.Context) {
	_, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseFestivalID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FestivalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	festival := festivalFromRequest(req)
	festival.ID = id

	updated, err := h.svc.UpdateFestival(ctx.Request.Context(), festival)
	if err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("festival", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateFestival -> h.svc.UpdateFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteFestival godoc
// @Summary      Delete a festival
// @Tags         festivals
// @Param        festivalID  path  int true "festival ID"
// @Success      204
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /festivals/{festivalID} [delete]
// @Security     BearerAuth
func (h *FestivalHandler) HandleDeleteFestival(ctx *gin.Context) {
	_, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := parseFestivalID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteFestival(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrFestivalNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("festival", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteFestival -> h.svc.DeleteFestival -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseFestivalID(ctx *gin.Context) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param("festivalID"), 10, 64)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid festival ID: %w", err))
	}

	return uint(id), nil
}

func festivalFromRequest(req request.FestivalRequest) domain.Festival {
	return domain.Festival{
		Name:         req.Name,
		CreationYear: req.CreationYear,
		Website:      req.Website,
		Address: domain.Address{
			PostalAddress: req.PostalAddress,
			INSEECode:     req.INSEECode,
			Region:        req.Region,
			Department:    req.Department,
			Commune:       req.Commune,
			Longitude:     req.Longitude,
			Latitude:      req.Latitude,
		},
		Category: domain.Category{
			Discipline:  req.Discipline,
			Subcategory: req.Subcategory,
		},
		Period: domain.Period{
			Label:    req.Period,
			Category: domain.PeriodCategory(req.PeriodCategory),
		},
	}
}
