package sheets

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// FixtureStore is an in-memory Store seeded with a small example dataset, so
// the dashboard stays fully demoable when no workbook credentials are
// configured. The engines never learn whether they run on fixture or live
// data. Appends land in memory and are visible to later reads.
type FixtureStore struct {
	mu     sync.RWMutex
	sheets map[string][][]string
}

// NewFixtureStore builds a store holding the bundled example tour data:
// five players across two categories, two courses with tees and holes, one
// event with an active round, and a handful of completed round summaries.
func NewFixtureStore() *FixtureStore {
	return &FixtureStore{sheets: exampleWorkbook()}
}

// NewEmptyFixtureStore builds a fixture store with headers only. Useful in
// tests that want to drive their own rows.
func NewEmptyFixtureStore() *FixtureStore {
	s := NewFixtureStore()
	for name, rows := range s.sheets {
		if len(rows) > 0 {
			s.sheets[name] = rows[:1]
		}
	}
	return s
}

func sheetName(rng string) string {
	if i := strings.IndexByte(rng, '!'); i >= 0 {
		return rng[:i]
	}
	return rng
}

func (s *FixtureStore) ReadRange(_ context.Context, readRange string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.sheets[sheetName(readRange)]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (s *FixtureStore) Append(_ context.Context, rng string, rows [][]string) (AppendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := sheetName(rng)
	start := len(s.sheets[name]) + 1
	for _, row := range rows {
		s.sheets[name] = append(s.sheets[name], append([]string(nil), row...))
	}
	return AppendResult{
		StartRow:    start,
		EndRow:      start + len(rows) - 1,
		UpdatedRows: len(rows),
	}, nil
}

func (s *FixtureStore) Update(_ context.Context, rng string, rows [][]string) error {
	// Targeted range updates carry formula backfills on the live workbook.
	// The fixture has no formula engine, so updates are accepted and dropped.
	return nil
}

func exampleWorkbook() map[string][][]string {
	return map[string][][]string{
		"players": {
			{"player_id", "first_name", "last_name", "display_name", "category", "default_tee", "sex", "birth_date", "age", "club", "curp"},
			{"player_1", "Santiago", "García", "Santiago García", "12-13", "tee-1", "M", "12-04-2013", "12", "Club de Golf Los Pinos", ""},
			{"player_2", "Valentina", "López", "Valentina López", "10-11", "tee-2", "F", "03-09-2014", "11", "Club de Golf Los Pinos", ""},
			{"player_3", "Diego", "Martínez", "Diego Martínez", "12-13", "tee-1", "M", "21-01-2012", "13", "Campo de Golf El Roble", ""},
			{"player_4", "Isabella", "Rodríguez", "Isabella Rodríguez", "10-11", "tee-2", "F", "17-06-2015", "10", "Campo de Golf El Roble", ""},
			{"player_5", "Mateo", "Hernández", "Mateo Hernández", "12-13", "tee-1", "M", "30-11-2013", "12", "Club de Golf Los Pinos", ""},
		},
		"courses": {
			{"course_id", "name", "city", "state", "country"},
			{"course_1", "Club de Golf Los Pinos", "Ciudad de México", "CDMX", "México"},
			{"course_2", "Campo de Golf El Roble", "Querétaro", "QRO", "México"},
		},
		"course_tee": {
			{"tee_id", "course_id", "tee_set", "par_total", "total_yards", "rating_men", "slope_men", "rating_women", "slope_women"},
			{"tee-1", "course_1", "Azules", "72", "6500", "72,1", "135", "75,2", "140"},
			{"tee-2", "course_1", "Blancas", "72", "6200", "70,5", "130", "73,8", "135"},
			{"tee-3", "course_2", "Azules", "72", "6400", "71,8", "133", "74,9", "138"},
		},
		"holes": exampleHoles(),
		"events": {
			{"event_id", "name", "venue", "start_date", "end_date", "course_id"},
			{"event_1", "Torneo Primavera 2025", "Ciudad de México", "15-03-2025", "16-03-2025", "course_1"},
			{"event_2", "Copa Juvenil Otoño", "Querétaro", "20-09-2025", "21-09-2025", "course_2"},
		},
		"rounds": {
			{"round_id", "name", "event_id", "date", "number", "course_id", "active"},
			{"round_1", "Ronda 1", "event_1", "15-03-2025", "1", "course_1", "FALSE"},
			{"round_2", "Ronda 2", "event_1", "16-03-2025", "2", "course_1", "FALSE"},
			{"round_3", "Ronda 1", "event_2", "20-09-2025", "1", "course_2", "TRUE"},
		},
		"round_entries": {
			{"entry_id", "round_id", "player_id", "display_name", "tee_id", "tee_time", "starting_hole", "notes"},
			{"entry_1", "round_1", "player_1", "Santiago García", "tee-1", "08:00", "1", ""},
			{"entry_2", "round_1", "player_2", "Valentina López", "tee-2", "08:10", "1", ""},
			{"entry_3", "round_1", "player_3", "Diego Martínez", "tee-1", "08:20", "1", ""},
			{"entry_4", "round_2", "player_1", "Santiago García", "tee-1", "08:00", "1", ""},
			{"entry_5", "round_3", "player_5", "Mateo Hernández", "tee-1", "09:00", "1", ""},
		},
		"summary_round": {
			{"summary_key", "player_id", "player_name", "sex", "club", "round_id", "course_id", "course_name", "category", "tee_id", "tee_set", "total_yards", "holes", "score_total", "to_par", "fir_percent", "gir_percent", "putts_total", "putts_avg", "scrambling", "sand_save", "penalties", "eagles", "birdies", "pars", "bogeys", "doubles", "triple_or_more", "status", "custom_status"},
			{"player_1:round_1", "player_1", "Santiago García", "M", "Club de Golf Los Pinos", "round_1", "course_1", "Club de Golf Los Pinos", "12-13", "tee-1", "Azules", "6500", "18", "85", "13", "42,9", "33,3", "34", "1,89", "27,3", "0", "2", "0", "1", "6", "8", "2", "1", "completa", ""},
			{"player_2:round_1", "player_2", "Valentina López", "F", "Club de Golf Los Pinos", "round_1", "course_1", "Club de Golf Los Pinos", "10-11", "tee-2", "Blancas", "6200", "18", "92", "20", "35,7", "27,8", "36", "2,00", "18,2", "0", "3", "0", "0", "4", "9", "3", "2", "completa", ""},
			{"player_3:round_1", "player_3", "Diego Martínez", "M", "Campo de Golf El Roble", "round_1", "course_1", "Club de Golf Los Pinos", "12-13", "tee-1", "Azules", "6500", "18", "78", "6", "57,1", "44,4", "31", "1,72", "40,0", "50", "1", "0", "2", "9", "6", "1", "0", "completa", ""},
			{"player_1:round_2", "player_1", "Santiago García", "M", "Club de Golf Los Pinos", "round_2", "course_1", "Club de Golf Los Pinos", "12-13", "tee-1", "Azules", "6500", "18", "82", "10", "50,0", "38,9", "33", "1,83", "30,0", "0", "1", "0", "1", "8", "7", "2", "0", "completa", ""},
			{"player_4:round_2", "player_4", "Isabella Rodríguez", "F", "Campo de Golf El Roble", "round_2", "course_1", "Club de Golf Los Pinos", "10-11", "tee-2", "Blancas", "6200", "18", "95", "23", "28,6", "22,2", "38", "2,11", "15,4", "0", "4", "0", "0", "3", "9", "4", "2", "completa", ""},
			{"player_5:round_3", "player_5", "Mateo Hernández", "M", "Club de Golf Los Pinos", "round_3", "course_2", "Campo de Golf El Roble", "12-13", "tee-1", "Azules", "6400", "18", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "", "en curso", ""},
		},
		"stats_hole": {
			{"id", "timestamp", "player_id", "player_name", "round_id", "tee_id", "hole", "par", "strokes", "score_to_par", "result", "putts", "tee_club", "fairway_hit", "gir", "bunker", "penalty_ob", "penalty_water", "first_putt_dist_m", "up_down_attempt", "up_down_success", "notes", "summary_key"},
			{"h1", "15/03/2025 09:12:41", "player_1", "Santiago García", "round_1", "tee-1", "1", "4", "4", "0", "Par", "2", "Driver", "TRUE", "TRUE", "FALSE", "0", "0", "4,5", "FALSE", "FALSE", "", "player_1:round_1"},
			{"h2", "15/03/2025 09:24:03", "player_1", "Santiago García", "round_1", "tee-1", "2", "3", "4", "1", "Bogey", "2", "Iron 7", "FALSE", "FALSE", "TRUE", "0", "0", "2,1", "TRUE", "FALSE", "", "player_1:round_1"},
			{"h3", "15/03/2025 09:37:55", "player_1", "Santiago García", "round_1", "tee-1", "3", "5", "5", "0", "Par", "2", "Driver", "TRUE", "TRUE", "FALSE", "0", "0", "6,0", "FALSE", "FALSE", "", "player_1:round_1"},
			{"h4", "15/03/2025 09:13:12", "player_3", "Diego Martínez", "round_1", "tee-1", "1", "4", "3", "-1", "Birdie", "1", "Driver", "TRUE", "TRUE", "FALSE", "0", "0", "3,2", "FALSE", "FALSE", "", "player_3:round_1"},
			{"h5", "15/03/2025 09:26:40", "player_3", "Diego Martínez", "round_1", "tee-1", "2", "3", "3", "0", "Par", "2", "Iron 6", "FALSE", "TRUE", "FALSE", "0", "0", "5,8", "FALSE", "FALSE", "", "player_3:round_1"},
			{"h6", "15/03/2025 13:46:20", "player_1", "Santiago García", "round_1", "tee-1", "18", "4", "5", "1", "Bogey", "2", "Driver", "FALSE", "FALSE", "FALSE", "1", "0", "7,4", "TRUE", "FALSE", "", "player_1:round_1"},
			{"h7", "15/03/2025 13:52:02", "player_3", "Diego Martínez", "round_1", "tee-1", "18", "4", "4", "0", "Par", "2", "Driver", "TRUE", "TRUE", "FALSE", "0", "0", "3,0", "FALSE", "FALSE", "", "player_3:round_1"},
		},
		"motivations": {
			{"phrase"},
			{"El golf es un juego contra uno mismo."},
			{"Cada golpe cuenta, cada ronda enseña."},
			{"La práctica de hoy es el birdie de mañana."},
		},
	}
}

func exampleHoles() [][]string {
	rows := [][]string{
		{"course_id", "hole", "par", "stroke_index", "hole_id"},
	}
	pars := []string{"4", "3", "5", "4", "4", "3", "4", "5", "4", "4", "3", "4", "5", "4", "4", "3", "5", "4"}
	for _, courseID := range []string{"course_1", "course_2"} {
		for i, par := range pars {
			n := strconv.Itoa(i + 1)
			rows = append(rows, []string{courseID, n, par, n, "hole-" + courseID + "-" + n})
		}
	}
	return rows
}
