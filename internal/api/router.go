package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/api/handlers"
	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/sheets"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, workbook *sheets.Workbook, snapshots *services.SnapshotService, logger *logrus.Logger) {
	referenceHandler := handlers.NewReferenceHandler(snapshots, logger)
	statsHandler := handlers.NewStatsHandler(snapshots, logger)
	gamesHandler := handlers.NewGamesHandler(snapshots, logger)
	captureHandler := handlers.NewCaptureHandler(workbook, snapshots, logger)

	// Reference data
	group.GET("/players", referenceHandler.ListPlayers)
	group.GET("/courses", referenceHandler.ListCourses)
	group.GET("/courses/:id/holes", referenceHandler.GetCourseHoles)
	group.GET("/events", referenceHandler.ListEvents)
	group.GET("/events/next", referenceHandler.GetNextEvent)
	group.GET("/rounds", referenceHandler.ListRounds)
	group.GET("/rounds/active", referenceHandler.ListActiveRounds)
	group.GET("/motivations", referenceHandler.ListMotivations)

	// Aggregated statistics
	group.GET("/records", statsHandler.GetRecords)
	group.GET("/categories/stats", statsHandler.GetCategoryStats)
	group.GET("/players/stats", statsHandler.GetPlayerStats)
	group.GET("/reports", statsHandler.GetGroupReport)

	// Completed-round feeds
	group.GET("/games/recent", gamesHandler.GetRecentGames)
	group.GET("/summaries/completed", gamesHandler.GetCompletedGames)

	// Live capture
	group.POST("/capture/hole-stats", captureHandler.SaveHoleStats)
}
