package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"festivalapi/internal/api/handler/v1/response"
	"festivalapi/internal/api/middleware"
	"festivalapi/internal/domain"
	"festivalapi/internal/service"
)

type UserService interface {
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

var (
	errNoAuthenticatedUser = errors.New("no authenticated user in context")
)

// getUserFromContext resolves the JWT subject set by the middleware into
// a user. An unknown subject renders 401; a disabled account renders 403,
// kept distinct from invalid-token failures.
func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	username := ctx.GetString(middleware.ContextKeyUsername)
	if username == "" {
		return domain.User{}, response.ErrUnauthorized(errNoAuthenticatedUser)
	}

	user, err := uSvc.GetUserByUsername(ctx.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(errNoAuthenticatedUser)
		}

		err = fmt.Errorf("getUserFromContext -> uSvc.GetUserByUsername -> %w", err)
		return domain.User{}, response.ErrInternalServerError(err)
	}

	if user.Disabled {
		return domain.User{}, response.ErrPermissionDenied(fmt.Errorf("user %v is disabled", user.ID))
	}

	return user, nil
}
