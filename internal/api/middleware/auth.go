package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"festivalapi/internal/api/handler/v1/response"
	"festivalapi/internal/pkg/jwthelper"
)

// ContextKeyUsername is where VerifyJWT stores the authenticated
// subject for downstream handlers.
const ContextKeyUsername = "username"

var errMissingToken = errors.New("missing or malformed bearer token")

type Authenticator struct {
	signingKey []byte
	algorithm  string
}

func NewAuthenticator(signingKey, algorithm string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		algorithm:  algorithm,
	}
}

// VerifyJWT checks the bearer token's signature and expiry and stores the
// subject in the context. Whether that subject still maps to an enabled
// user is the handlers' concern.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, a.algorithm, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Set(ContextKeyUsername, claims.Subject)
		ctx.Next()
	}
}
