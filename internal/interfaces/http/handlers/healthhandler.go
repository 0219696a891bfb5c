package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/travelease/callcenter/internal/infrastructure/database"
	"github.com/travelease/callcenter/internal/shared/constants"
	"github.com/travelease/callcenter/internal/shared/errors"
	"github.com/travelease/callcenter/internal/shared/logger"
	"github.com/travelease/callcenter/internal/shared/utils"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewHealthHandler(db *gorm.DB, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, constants.RootBanner)
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, errors.GenericServerMessage)
		return
	}

	utils.OKResponse(c, gin.H{"status": "ok"})
}
