package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/models"
	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/stats"
	"github.com/gadotour/gado-stats/pkg/utils"
)

// ReferenceHandler serves the workbook's reference sheets: players, courses,
// holes, events, rounds and motivational phrases.
type ReferenceHandler struct {
	snapshots *services.SnapshotService
	logger    *logrus.Logger
}

func NewReferenceHandler(snapshots *services.SnapshotService, logger *logrus.Logger) *ReferenceHandler {
	return &ReferenceHandler{snapshots: snapshots, logger: logger}
}

func (h *ReferenceHandler) snapshot(c *gin.Context) (*stats.Snapshot, bool) {
	snap, err := h.snapshots.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Workbook read failed")
		utils.SendStoreUnavailable(c, "No se pudo leer el libro de cálculo")
		return nil, false
	}
	return snap, true
}

func (h *ReferenceHandler) ListPlayers(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, snap.Players)
}

func (h *ReferenceHandler) ListCourses(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, snap.Courses)
}

// GetCourseHoles returns a course's holes in order plus its tee sets.
func (h *ReferenceHandler) GetCourseHoles(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	courseID := c.Param("id")
	if _, found := snap.CourseByID(courseID); !found {
		utils.SendNotFound(c, "Campo no encontrado")
		return
	}

	tees := make([]models.CourseTee, 0)
	for _, t := range snap.Tees {
		if t.CourseID == courseID {
			tees = append(tees, t)
		}
	}
	utils.SendSuccess(c, gin.H{
		"holes": snap.HolesForCourse(courseID),
		"tees":  tees,
	})
}

func (h *ReferenceHandler) ListEvents(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, snap.Events)
}

func (h *ReferenceHandler) ListRounds(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	utils.SendSuccess(c, snap.Rounds)
}

// activeRound is one capture-enabled round joined with its event and course.
type activeRound struct {
	models.Round
	EventName  string `json:"event_name"`
	CourseName string `json:"course_name"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// ListActiveRounds returns the rounds currently flagged for capture. More
// than one can be active at a time; the workbook does not enforce uniqueness.
func (h *ReferenceHandler) ListActiveRounds(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	out := make([]activeRound, 0)
	for _, r := range snap.Rounds {
		if !r.Active {
			continue
		}
		ar := activeRound{Round: r, EventName: stats.UnknownEvent, CourseName: stats.UnknownCourse}
		if e, found := snap.EventByID(r.EventID); found {
			ar.EventName = e.Name
		}
		if course, found := snap.CourseByID(r.CourseID); found {
			ar.CourseName = course.Name
			ar.City = course.City
			ar.State = course.State
		}
		out = append(out, ar)
	}
	utils.SendSuccess(c, out)
}

// GetNextEvent resolves the upcoming event from the first active round. With
// no active round it returns a demo placeholder so the dashboard banner always
// renders.
func (h *ReferenceHandler) GetNextEvent(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	for _, r := range snap.Rounds {
		if !r.Active {
			continue
		}
		payload := gin.H{
			"round_id":   r.ID,
			"round_name": r.Name,
			"date":       stats.FormatDate(r.Date),
			"has_data":   true,
		}
		if e, found := snap.EventByID(r.EventID); found {
			payload["event_name"] = e.Name
			payload["venue"] = e.Venue
			payload["start_date"] = stats.FormatDate(e.StartDate)
			payload["end_date"] = stats.FormatDate(e.EndDate)
		}
		if course, found := snap.CourseByID(r.CourseID); found {
			payload["course_name"] = course.Name
			payload["city"] = course.City
			payload["state"] = course.State
		}
		utils.SendSuccess(c, payload)
		return
	}

	utils.SendSuccess(c, gin.H{
		"event_name": "Próximo evento por anunciar",
		"venue":      "Por confirmar",
		"has_data":   false,
	})
}

func (h *ReferenceHandler) ListMotivations(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	phrases := make([]string, 0, len(snap.Motivations))
	for _, m := range snap.Motivations {
		phrases = append(phrases, m.Phrase)
	}
	utils.SendSuccess(c, phrases)
}
