package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"festivalapi/internal/api/handler/v1/request"
	"festivalapi/internal/api/handler/v1/response"
	"festivalapi/internal/domain"
	"festivalapi/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User, password string) (domain.User, error)
	Login(ctx context.Context, username, password string) (domain.User, error)
	IssueToken(ctx context.Context, user domain.User, userAgent string) (string, error)
}

type AuthHandler struct {
	svc  AuthService
	uSvc UserService
}

func NewAuthHandler(svc AuthService, uSvc UserService) *AuthHandler {
	return &AuthHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateUser godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateUserRequest true "request body"
// @Success      200      {object}  response.UserResponse
// @Failure      400      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/create_user [post]
func (h *AuthHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) || errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.Signup -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewUserResponse(user))
}

// HandleToken godoc
// @Summary      Exchange credentials for an access token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string true "username"
// @Param        password  formData  string true "password"
// @Success      200       {object}  response.TokenResponse
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /auth/token [post]
func (h *AuthHandler) HandleToken(ctx *gin.Context) {
	var req request.TokenRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())
			return
		}

		err = fmt.Errorf("v1.HandleToken -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := h.svc.IssueToken(ctx.Request.Context(), user, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleToken -> h.svc.IssueToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleIsAuthorized godoc
// @Summary      Check the bearer token
// @Tags         auth
// @Produce      json
// @Success      200  {boolean}  boolean
// @Failure      401  {object}   response.Err
// @Failure      403  {object}   response.Err
// @Router       /auth/is_authorized [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleIsAuthorized(ctx *gin.Context) {
	_, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, true)
}
