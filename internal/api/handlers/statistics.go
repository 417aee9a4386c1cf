package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/stats"
	"github.com/gadotour/gado-stats/pkg/utils"
)

// StatsHandler serves the aggregated views: tour records, category cross-tab,
// per-player rolling stats and the cohort report.
type StatsHandler struct {
	snapshots *services.SnapshotService
	logger    *logrus.Logger
}

func NewStatsHandler(snapshots *services.SnapshotService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{snapshots: snapshots, logger: logger}
}

func (h *StatsHandler) snapshot(c *gin.Context) (*stats.Snapshot, bool) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Workbook read failed")
		utils.SendStoreUnavailable(c, "No se pudo leer el libro de cálculo")
		return nil, false
	}
	return snap, true
}

// GetRecords returns the best-of tie groups for every tracked metric.
func (h *StatsHandler) GetRecords(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, stats.ComputeRecords(snap))
}

// GetCategoryStats returns the category/gender cross-tab and the overall
// average.
func (h *StatsHandler) GetCategoryStats(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, stats.ComputeCategoryStats(snap))
}

// GetPlayerStats returns rolling statistics per player. Players with no
// eligible rounds are dropped from this listing; the engine still flags them
// so the player-card view can show a "sin estadísticas" state elsewhere.
func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	all := stats.ComputePlayerStats(snap)
	out := make([]stats.PlayerStats, 0, len(all))
	for _, ps := range all {
		if ps.HasStats {
			out = append(out, ps)
		}
	}
	utils.SendSuccess(c, out)
}

// GetGroupReport returns the comparative coach report for a filtered cohort.
// Filters: playerIds (comma separated), categoria, sexo, club.
func (h *StatsHandler) GetGroupReport(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}

	filter := stats.ReportFilter{
		Category: c.Query("categoria"),
		Sex:      c.Query("sexo"),
		Club:     c.Query("club"),
	}
	if raw := c.Query("playerIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				filter.PlayerIDs = append(filter.PlayerIDs, id)
			}
		}
	}

	utils.SendSuccess(c, stats.ComputeGroupReport(snap, filter))
}
