package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prepforge/testbank/database"
	"github.com/prepforge/testbank/internal/dto"
	"gorm.io/gorm"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Liveness and store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "connected"
	if err := database.Ping(c.db); err != nil {
		status = "disconnected"
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Success:  true,
		Message:  "Test series API is running",
		Database: status,
	})
}
