package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/stats"
	"github.com/gadotour/gado-stats/pkg/utils"
)

const defaultRecentGames = 8

// GamesHandler serves the completed-round feeds.
type GamesHandler struct {
	snapshots *services.SnapshotService
	logger    *logrus.Logger
}

func NewGamesHandler(snapshots *services.SnapshotService, logger *logrus.Logger) *GamesHandler {
	return &GamesHandler{snapshots: snapshots, logger: logger}
}

// GetRecentGames returns the latest completed rounds, newest first, capped by
// the limit query parameter.
func (h *GamesHandler) GetRecentGames(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Workbook read failed")
		utils.SendStoreUnavailable(c, "No se pudo leer el libro de cálculo")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultRecentGames)))
	if limit <= 0 || limit > 50 {
		limit = defaultRecentGames
	}

	utils.SendSuccess(c, stats.RecentGames(snap, stats.CaptureTimes(snap), limit))
}

// GetCompletedGames returns the full completed-round history, best score
// first.
func (h *GamesHandler) GetCompletedGames(c *gin.Context) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Workbook read failed")
		utils.SendStoreUnavailable(c, "No se pudo leer el libro de cálculo")
		return
	}
	utils.SendSuccess(c, stats.CompletedGames(snap))
}
