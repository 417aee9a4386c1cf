package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/capture"
	"github.com/gadotour/gado-stats/internal/models"
	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/sheets"
	"github.com/gadotour/gado-stats/pkg/logger"
	"github.com/gadotour/gado-stats/pkg/utils"
)

const captureTimestampLayout = "02/01/2006 15:04:05"

// CaptureHandler accepts a full capture session's hole entries and persists
// them. Validation reruns server-side; a batch with inference errors or fewer
// than the minimum valid holes is rejected whole, never partially written.
type CaptureHandler struct {
	workbook  *sheets.Workbook
	snapshots *services.SnapshotService
	logger    *logrus.Logger
}

func NewCaptureHandler(workbook *sheets.Workbook, snapshots *services.SnapshotService, logger *logrus.Logger) *CaptureHandler {
	return &CaptureHandler{workbook: workbook, snapshots: snapshots, logger: logger}
}

type holeEntryRequest struct {
	Hole           int     `json:"hole" binding:"required,min=1"`
	Par            int     `json:"par" binding:"required,min=3,max=5"`
	Strokes        *int    `json:"strokes" binding:"required"`
	Putts          *int    `json:"putts" binding:"required"`
	TeeClub        string  `json:"tee_club"`
	Fairway        string  `json:"fairway"`
	Green          string  `json:"green"`
	Bunker         string  `json:"bunker"`
	PenaltyOB      int     `json:"penalty_ob"`
	PenaltyWater   int     `json:"penalty_water"`
	FirstPuttDistM float64 `json:"first_putt_dist_m"`
	Notes          string  `json:"notes"`
}

type captureRequest struct {
	PlayerID string             `json:"player_id" binding:"required"`
	RoundID  string             `json:"round_id" binding:"required"`
	Holes    []holeEntryRequest `json:"holes" binding:"required"`
}

type holeErrors struct {
	Hole   int      `json:"hole"`
	Errors []string `json:"errors"`
}

// SaveHoleStats validates and appends a capture session's entries.
func (h *CaptureHandler) SaveHoleStats(c *gin.Context) {
	var req captureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Solicitud de captura inválida", err.Error())
		return
	}

	session := capture.NewSession(req.PlayerID, req.RoundID)
	var invalid []holeErrors
	for _, hr := range req.Holes {
		draft := capture.Draft{
			Hole:           hr.Hole,
			Par:            hr.Par,
			Strokes:        hr.Strokes,
			Putts:          hr.Putts,
			TeeClub:        hr.TeeClub,
			Fairway:        capture.ParseTriState(hr.Fairway),
			Green:          capture.ParseTriState(hr.Green),
			Bunker:         capture.ParseTriState(hr.Bunker),
			PenaltyOB:      hr.PenaltyOB,
			PenaltyWater:   hr.PenaltyWater,
			FirstPuttDistM: hr.FirstPuttDistM,
			Notes:          hr.Notes,
		}
		_, errs, err := session.SetHole(draft)
		if err != nil {
			utils.SendValidationError(c, "Sesión de captura inválida", err.Error())
			return
		}
		if len(errs) > 0 {
			invalid = append(invalid, holeErrors{Hole: hr.Hole, Errors: errs})
		}
	}

	if len(invalid) > 0 {
		c.JSON(400, utils.Response{
			Success: false,
			Data:    gin.H{"holes": invalid},
			Error:   utils.NewAppError(utils.ErrCodeValidation, "La captura tiene hoyos con errores"),
		})
		return
	}

	if err := session.CanSave(); err != nil {
		utils.SendError(c, 400, utils.NewAppError(utils.ErrCodeIncompleteRound, err.Error()))
		return
	}

	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Workbook read failed before capture write")
		utils.SendStoreUnavailable(c, "No se pudo leer el libro de cálculo")
		return
	}
	playerName := ""
	if p, found := snap.PlayerByID(req.PlayerID); found {
		playerName = p.DisplayName
	}

	now := time.Now().Format(captureTimestampLayout)
	summaryKey := req.PlayerID + ":" + req.RoundID
	drafts := session.CompleteDrafts()
	entries := make([]models.HoleEntry, 0, len(drafts))
	for _, d := range drafts {
		entries = append(entries, models.HoleEntry{
			ID:                uuid.New().String(),
			Timestamp:         now,
			PlayerID:          req.PlayerID,
			PlayerName:        playerName,
			RoundID:           req.RoundID,
			Hole:              d.Hole,
			Par:               d.Par,
			Strokes:           *d.Strokes,
			ScoreToPar:        *d.Strokes - d.Par,
			Result:            d.Result,
			Putts:             *d.Putts,
			TeeClub:           d.TeeClub,
			FairwayHit:        d.Fairway.Bool(),
			GreenInRegulation: d.Green.Bool(),
			Bunker:            d.Bunker.Bool(),
			PenaltyOB:         d.PenaltyOB,
			PenaltyWater:      d.PenaltyWater,
			FirstPuttDistM:    d.FirstPuttDistM,
			UpDownAttempt:     d.UpDownAttempt,
			UpDownSuccess:     d.UpDownSuccess,
			Notes:             d.Notes,
			SummaryKey:        summaryKey,
		})
	}

	rows, err := h.workbook.AppendHoleEntries(c.Request.Context(), entries)
	if err != nil {
		logger.WithRound(h.logger, req.RoundID, req.PlayerID).WithError(err).Error("Capture write failed")
		utils.SendStoreUnavailable(c, "No se pudo guardar la captura, reintenta")
		return
	}

	if err := session.MarkSaved(); err != nil {
		h.logger.WithError(err).Warn("Session state transition after save")
	}
	h.snapshots.Invalidate(c.Request.Context())

	logger.WithRound(h.logger, req.RoundID, req.PlayerID).
		WithField("holes", len(entries)).
		Info("Capture session saved")

	utils.SendSuccess(c, gin.H{
		"saved_holes": len(entries),
		"rows":        rows,
		"state":       capture.StateSaved,
	})
}
