package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gadotour/gado-stats/internal/services"
	"github.com/gadotour/gado-stats/internal/sheets"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	workbook := sheets.NewWorkbook(sheets.NewFixtureStore(), logger)
	snapshots := services.NewSnapshotService(workbook, nil, logger, time.Minute, time.Hour)

	router := gin.New()
	SetupRoutes(router.Group("/api/v1"), workbook, snapshots, logger)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestListPlayers(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/players", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, env["success"])
	data := env["data"].([]interface{})
	assert.Len(t, data, 5)
}

func TestGetCourseHoles(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/courses/course_1/holes", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]interface{})
	assert.Len(t, data["holes"].([]interface{}), 18)
	assert.Len(t, data["tees"].([]interface{}), 2)
}

func TestGetCourseHolesNotFound(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/courses/nope/holes", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, env["success"])
}

func TestGetRecords(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/records", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]interface{})
	best := data["best_score"].(map[string]interface{})
	assert.Equal(t, true, best["has_data"])
	assert.Equal(t, 78.0, best["value"], "fixture best round is Diego's 78")
	assert.Len(t, best["holders"].([]interface{}), 1)
}

func TestGetCategoryStats(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/categories/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]interface{})
	require.Equal(t, true, data["has_data"])
	groups := data["groups"].([]interface{})
	require.NotEmpty(t, groups)
	first := groups[0].(map[string]interface{})
	assert.Equal(t, "10-11", first["category"], "canonical category order")
}

func TestGetPlayerStatsDropsZeroRoundPlayers(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/players/stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].([]interface{})
	// player_5's only round is still in progress; Mateo has no stats yet.
	assert.Len(t, data, 4)
	for _, raw := range data {
		ps := raw.(map[string]interface{})
		assert.NotEqual(t, "player_5", ps["player_id"])
	}
}

func TestGetActiveRounds(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/rounds/active", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].([]interface{})
	require.Len(t, data, 1)
	active := data[0].(map[string]interface{})
	assert.Equal(t, "round_3", active["round_id"])
	assert.Equal(t, "Copa Juvenil Otoño", active["event_name"])
}

func TestGetNextEvent(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/events/next", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, true, data["has_data"])
	assert.Equal(t, "Copa Juvenil Otoño", data["event_name"])
}

func TestGetReports(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/reports?categoria=12-13&sexo=M", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	data := env["data"].(map[string]interface{})
	require.Equal(t, true, data["has_data"])
	players := data["players"].([]interface{})
	assert.Len(t, players, 2, "Santiago and Diego have completed rounds; Mateo does not")
}

func captureBody(holes int) []byte {
	type hole struct {
		Hole    int    `json:"hole"`
		Par     int    `json:"par"`
		Strokes int    `json:"strokes"`
		Putts   int    `json:"putts"`
		TeeClub string `json:"tee_club"`
	}
	payload := struct {
		PlayerID string `json:"player_id"`
		RoundID  string `json:"round_id"`
		Holes    []hole `json:"holes"`
	}{PlayerID: "player_5", RoundID: "round_3"}
	for i := 1; i <= holes; i++ {
		payload.Holes = append(payload.Holes, hole{Hole: i, Par: 4, Strokes: 4, Putts: 2, TeeClub: "Driver"})
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestSaveHoleStats(t *testing.T) {
	router := testRouter()
	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/capture/hole-stats", captureBody(9))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	data := env["data"].(map[string]interface{})
	assert.Equal(t, 9.0, data["saved_holes"])
	assert.Equal(t, "SAVED", data["state"])
}

func TestSaveHoleStatsRejectsShortSession(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodPost, "/api/v1/capture/hole-stats", captureBody(5))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INCOMPLETE_ROUND", errObj["code"])
}

func TestSaveHoleStatsRejectsInvalidHole(t *testing.T) {
	body := []byte(fmt.Sprintf(`{
		"player_id": "player_5",
		"round_id": "round_3",
		"holes": [%s{"hole": 9, "par": 4, "strokes": 3, "putts": 4}]
	}`, func() string {
		out := ""
		for i := 1; i <= 8; i++ {
			out += fmt.Sprintf(`{"hole": %d, "par": 4, "strokes": 4, "putts": 2},`, i)
		}
		return out
	}()))

	rec, env := doRequest(t, testRouter(), http.MethodPost, "/api/v1/capture/hole-stats", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	data := env["data"].(map[string]interface{})
	assert.NotEmpty(t, data["holes"])
}

func TestMotivations(t *testing.T) {
	rec, env := doRequest(t, testRouter(), http.MethodGet, "/api/v1/motivations", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env["data"].([]interface{}), 3)
}
