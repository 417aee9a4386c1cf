package sheets

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/gadotour/gado-stats/internal/models"
	"github.com/gadotour/gado-stats/pkg/logger"
)

// Workbook wraps a Store with typed readers and the hole-entry writer. It is
// the only place that knows which sheet and columns hold which entity.
type Workbook struct {
	store  Store
	logger *logrus.Logger
}

func NewWorkbook(store Store, logger *logrus.Logger) *Workbook {
	return &Workbook{store: store, logger: logger}
}

// readRows fetches a range and drops the header row.
func (w *Workbook) readRows(ctx context.Context, rng string) ([][]string, error) {
	rows, err := w.store.ReadRange(ctx, rng)
	if err != nil {
		logger.WithSheet(w.logger, sheetName(rng)).WithError(err).Error("Workbook read failed")
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func (w *Workbook) Players(ctx context.Context) ([]models.Player, error) {
	rows, err := w.readRows(ctx, rangePlayers)
	if err != nil {
		return nil, err
	}
	out := make([]models.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodePlayer(row))
	}
	return out, nil
}

func (w *Workbook) Courses(ctx context.Context) ([]models.Course, error) {
	rows, err := w.readRows(ctx, rangeCourses)
	if err != nil {
		return nil, err
	}
	out := make([]models.Course, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeCourse(row))
	}
	return out, nil
}

func (w *Workbook) CourseTees(ctx context.Context) ([]models.CourseTee, error) {
	rows, err := w.readRows(ctx, rangeCourseTees)
	if err != nil {
		return nil, err
	}
	out := make([]models.CourseTee, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeCourseTee(row))
	}
	return out, nil
}

func (w *Workbook) Holes(ctx context.Context) ([]models.Hole, error) {
	rows, err := w.readRows(ctx, rangeHoles)
	if err != nil {
		return nil, err
	}
	out := make([]models.Hole, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeHole(row))
	}
	return out, nil
}

func (w *Workbook) Events(ctx context.Context) ([]models.Event, error) {
	rows, err := w.readRows(ctx, rangeEvents)
	if err != nil {
		return nil, err
	}
	out := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeEvent(row))
	}
	return out, nil
}

func (w *Workbook) Rounds(ctx context.Context) ([]models.Round, error) {
	rows, err := w.readRows(ctx, rangeRounds)
	if err != nil {
		return nil, err
	}
	out := make([]models.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeRound(row))
	}
	return out, nil
}

func (w *Workbook) RoundEntries(ctx context.Context) ([]models.RoundEntry, error) {
	rows, err := w.readRows(ctx, rangeRoundEntries)
	if err != nil {
		return nil, err
	}
	out := make([]models.RoundEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeRoundEntry(row))
	}
	return out, nil
}

func (w *Workbook) RoundSummaries(ctx context.Context) ([]models.RoundSummary, error) {
	rows, err := w.readRows(ctx, rangeSummaries)
	if err != nil {
		return nil, err
	}
	out := make([]models.RoundSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeRoundSummary(row))
	}
	return out, nil
}

func (w *Workbook) HoleEntries(ctx context.Context) ([]models.HoleEntry, error) {
	rows, err := w.readRows(ctx, rangeHoleStats)
	if err != nil {
		return nil, err
	}
	out := make([]models.HoleEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeHoleEntry(row))
	}
	return out, nil
}

func (w *Workbook) Motivations(ctx context.Context) ([]models.Motivation, error) {
	rows, err := w.readRows(ctx, rangeMotivations)
	if err != nil {
		return nil, err
	}
	out := make([]models.Motivation, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 && row[0] != "" {
			out = append(out, models.Motivation{Phrase: row[0]})
		}
	}
	return out, nil
}

// AppendHoleEntries writes a capture batch to the stats_hole sheet and then
// backfills the tee-id lookup (column F) and summary-key (column W) formulas
// over the appended span. Those two cells are workbook formulas on the live
// sheet; the round summary itself recomputes store-side and is never written
// here.
func (w *Workbook) AppendHoleEntries(ctx context.Context, entries []models.HoleEntry) (int, error) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.ID,
			e.Timestamp,
			e.PlayerID,
			e.PlayerName,
			e.RoundID,
			"", // tee_id formula backfilled below
			strconv.Itoa(e.Hole),
			strconv.Itoa(e.Par),
			strconv.Itoa(e.Strokes),
			strconv.Itoa(e.ScoreToPar),
			e.Result,
			strconv.Itoa(e.Putts),
			e.TeeClub,
			FormatBool(e.FairwayHit),
			FormatBool(e.GreenInRegulation),
			FormatBool(e.Bunker),
			strconv.Itoa(e.PenaltyOB),
			strconv.Itoa(e.PenaltyWater),
			strconv.FormatFloat(e.FirstPuttDistM, 'f', -1, 64),
			FormatBool(e.UpDownAttempt),
			FormatBool(e.UpDownSuccess),
			e.Notes,
			"", // summary_key formula backfilled below
		})
	}

	result, err := w.store.Append(ctx, rangeHoleStats, rows)
	if err != nil {
		return 0, err
	}

	if result.StartRow > 0 && result.EndRow >= result.StartRow {
		teeFormulas := make([][]string, 0, result.EndRow-result.StartRow+1)
		keyFormulas := make([][]string, 0, result.EndRow-result.StartRow+1)
		for i := result.StartRow; i <= result.EndRow; i++ {
			teeFormulas = append(teeFormulas, []string{
				fmt.Sprintf("=INDICE(FILTER(round_entries!E:E;(round_entries!C:C=C%d)*(round_entries!B:B=E%d));1)", i, i),
			})
			keyFormulas = append(keyFormulas, []string{fmt.Sprintf(`=C%d&":"&E%d`, i, i)})
		}
		teeRange := fmt.Sprintf("stats_hole!F%d:F%d", result.StartRow, result.EndRow)
		if err := w.store.Update(ctx, teeRange, teeFormulas); err != nil {
			return result.UpdatedRows, err
		}
		keyRange := fmt.Sprintf("stats_hole!W%d:W%d", result.StartRow, result.EndRow)
		if err := w.store.Update(ctx, keyRange, keyFormulas); err != nil {
			return result.UpdatedRows, err
		}
	}

	w.logger.WithField("rows", result.UpdatedRows).Info("Hole entries appended to workbook")
	return result.UpdatedRows, nil
}
