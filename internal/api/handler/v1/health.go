package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      plain
// @Success      200 {string} string "Server is running."
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Server is running.")
}
