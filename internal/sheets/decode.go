package sheets

import (
	"strconv"
	"strings"

	"github.com/gadotour/gado-stats/internal/models"
)

// Workbook ranges. Column letters are part of the workbook contract.
const (
	rangePlayers      = "players!A:K"
	rangeCourses      = "courses!A:E"
	rangeCourseTees   = "course_tee!A:I"
	rangeHoles        = "holes!A:E"
	rangeEvents       = "events!A:F"
	rangeRounds       = "rounds!A:G"
	rangeRoundEntries = "round_entries!A:H"
	rangeSummaries    = "summary_round!A:AC"
	rangeHoleStats    = "stats_hole!A:W"
	rangeMotivations  = "motivations!A:A"
)

// ParseBool decodes workbook and capture-UI boolean cells. The workbook
// serializes TRUE/FALSE; the capture UI speaks Sí/No. Anything unrecognized
// is false, never an error.
func ParseBool(s string) bool {
	switch strings.TrimSpace(s) {
	case "TRUE", "true", "1", "Sí", "Yes":
		return true
	}
	return false
}

// FormatBool emits the canonical workbook serialization.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

// parseFloat normalizes the comma decimal separator the workbook locale uses.
func parseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return def
	}
	return v
}

// optFloat returns nil for blank or malformed cells so averages can skip
// them instead of counting a zero.
func optFloat(s string) *float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return nil
	}
	return &v
}

// players!A:K
const (
	colPlayerID = iota
	colPlayerFirstName
	colPlayerLastName
	colPlayerDisplayName
	colPlayerCategory
	colPlayerDefaultTee
	colPlayerSex
	colPlayerBirthDate
	colPlayerAge
	colPlayerClub
	colPlayerCURP
)

func decodePlayer(row []string) models.Player {
	return models.Player{
		ID:           cell(row, colPlayerID),
		FirstName:    cell(row, colPlayerFirstName),
		LastName:     cell(row, colPlayerLastName),
		DisplayName:  cell(row, colPlayerDisplayName),
		Category:     cell(row, colPlayerCategory),
		DefaultTeeID: cell(row, colPlayerDefaultTee),
		Sex:          cell(row, colPlayerSex),
		BirthDate:    cell(row, colPlayerBirthDate),
		Age:          parseInt(cell(row, colPlayerAge), 0),
		Club:         cell(row, colPlayerClub),
		CURP:         cell(row, colPlayerCURP),
	}
}

// courses!A:E
const (
	colCourseID = iota
	colCourseName
	colCourseCity
	colCourseState
	colCourseCountry
)

func decodeCourse(row []string) models.Course {
	return models.Course{
		ID:      cell(row, colCourseID),
		Name:    cell(row, colCourseName),
		City:    cell(row, colCourseCity),
		State:   cell(row, colCourseState),
		Country: cell(row, colCourseCountry),
	}
}

// course_tee!A:I
const (
	colTeeID = iota
	colTeeCourseID
	colTeeSet
	colTeeParTotal
	colTeeTotalYards
	colTeeRatingMen
	colTeeSlopeMen
	colTeeRatingWomen
	colTeeSlopeWomen
)

func decodeCourseTee(row []string) models.CourseTee {
	return models.CourseTee{
		ID:          cell(row, colTeeID),
		CourseID:    cell(row, colTeeCourseID),
		TeeSet:      cell(row, colTeeSet),
		ParTotal:    parseInt(cell(row, colTeeParTotal), 72),
		TotalYards:  parseInt(cell(row, colTeeTotalYards), 0),
		RatingMen:   parseFloat(cell(row, colTeeRatingMen), 0),
		SlopeMen:    parseInt(cell(row, colTeeSlopeMen), 0),
		RatingWomen: parseFloat(cell(row, colTeeRatingWomen), 0),
		SlopeWomen:  parseInt(cell(row, colTeeSlopeWomen), 0),
	}
}

// holes!A:E
const (
	colHoleCourseID = iota
	colHoleNumber
	colHolePar
	colHoleStrokeIndex
	colHoleID
)

func decodeHole(row []string) models.Hole {
	return models.Hole{
		CourseID:    cell(row, colHoleCourseID),
		Number:      parseInt(cell(row, colHoleNumber), 0),
		Par:         parseInt(cell(row, colHolePar), 4),
		StrokeIndex: parseInt(cell(row, colHoleStrokeIndex), 0),
		ID:          cell(row, colHoleID),
	}
}

// events!A:F
const (
	colEventID = iota
	colEventName
	colEventVenue
	colEventStartDate
	colEventEndDate
	colEventCourseID
)

func decodeEvent(row []string) models.Event {
	return models.Event{
		ID:        cell(row, colEventID),
		Name:      cell(row, colEventName),
		Venue:     cell(row, colEventVenue),
		StartDate: cell(row, colEventStartDate),
		EndDate:   cell(row, colEventEndDate),
		CourseID:  cell(row, colEventCourseID),
	}
}

// rounds!A:G
const (
	colRoundID = iota
	colRoundName
	colRoundEventID
	colRoundDate
	colRoundNumber
	colRoundCourseID
	colRoundActive
)

func decodeRound(row []string) models.Round {
	return models.Round{
		ID:       cell(row, colRoundID),
		Name:     cell(row, colRoundName),
		EventID:  cell(row, colRoundEventID),
		Date:     cell(row, colRoundDate),
		Number:   parseInt(cell(row, colRoundNumber), 1),
		CourseID: cell(row, colRoundCourseID),
		Active:   ParseBool(cell(row, colRoundActive)),
	}
}

// round_entries!A:H
const (
	colEntryID = iota
	colEntryRoundID
	colEntryPlayerID
	colEntryDisplayName
	colEntryTeeID
	colEntryTeeTime
	colEntryStartingHole
	colEntryNotes
)

func decodeRoundEntry(row []string) models.RoundEntry {
	return models.RoundEntry{
		ID:           cell(row, colEntryID),
		RoundID:      cell(row, colEntryRoundID),
		PlayerID:     cell(row, colEntryPlayerID),
		DisplayName:  cell(row, colEntryDisplayName),
		TeeID:        cell(row, colEntryTeeID),
		TeeTime:      cell(row, colEntryTeeTime),
		StartingHole: parseInt(cell(row, colEntryStartingHole), 1),
		Notes:        cell(row, colEntryNotes),
	}
}

// summary_round!A:AC
const (
	colSummaryKey = iota
	colSummaryPlayerID
	colSummaryPlayerName
	colSummarySex
	colSummaryClub
	colSummaryRoundID
	colSummaryCourseID
	colSummaryCourseName
	colSummaryCategory
	colSummaryTeeID
	colSummaryTeeSet
	colSummaryTotalYards
	colSummaryHolesPlayed
	colSummaryTotalScore
	colSummaryScoreToPar
	colSummaryFIRPercent
	colSummaryGIRPercent
	colSummaryTotalPutts
	colSummaryAvgPutts
	colSummaryScrambling
	colSummarySandSave
	colSummaryPenalties
	colSummaryEagles
	colSummaryBirdies
	colSummaryPars
	colSummaryBogeys
	colSummaryDoubles
	colSummaryTripleOrWorse
	colSummaryStatus
	colSummaryCustomStatus
)

func decodeRoundSummary(row []string) models.RoundSummary {
	return models.RoundSummary{
		Key:               cell(row, colSummaryKey),
		PlayerID:          cell(row, colSummaryPlayerID),
		PlayerName:        cell(row, colSummaryPlayerName),
		Sex:               cell(row, colSummarySex),
		Club:              cell(row, colSummaryClub),
		RoundID:           cell(row, colSummaryRoundID),
		CourseID:          cell(row, colSummaryCourseID),
		CourseName:        cell(row, colSummaryCourseName),
		Category:          cell(row, colSummaryCategory),
		TeeID:             cell(row, colSummaryTeeID),
		TeeSet:            cell(row, colSummaryTeeSet),
		TotalYards:        parseInt(cell(row, colSummaryTotalYards), 0),
		HolesPlayed:       parseInt(cell(row, colSummaryHolesPlayed), 18),
		TotalScore:        cell(row, colSummaryTotalScore),
		ScoreToPar:        parseInt(cell(row, colSummaryScoreToPar), 0),
		FIRPercent:        optFloat(cell(row, colSummaryFIRPercent)),
		GIRPercent:        optFloat(cell(row, colSummaryGIRPercent)),
		TotalPutts:        parseInt(cell(row, colSummaryTotalPutts), 0),
		AvgPutts:          optFloat(cell(row, colSummaryAvgPutts)),
		ScramblingPercent: optFloat(cell(row, colSummaryScrambling)),
		SandSavePercent:   optFloat(cell(row, colSummarySandSave)),
		Penalties:         parseInt(cell(row, colSummaryPenalties), 0),
		Eagles:            parseInt(cell(row, colSummaryEagles), 0),
		Birdies:           parseInt(cell(row, colSummaryBirdies), 0),
		Pars:              parseInt(cell(row, colSummaryPars), 0),
		Bogeys:            parseInt(cell(row, colSummaryBogeys), 0),
		Doubles:           parseInt(cell(row, colSummaryDoubles), 0),
		TripleOrWorse:     parseInt(cell(row, colSummaryTripleOrWorse), 0),
		Status:            cell(row, colSummaryStatus),
		CustomStatus:      cell(row, colSummaryCustomStatus),
	}
}

// stats_hole!A:W
const (
	colStatID = iota
	colStatTimestamp
	colStatPlayerID
	colStatPlayerName
	colStatRoundID
	colStatTeeID
	colStatHole
	colStatPar
	colStatStrokes
	colStatScoreToPar
	colStatResult
	colStatPutts
	colStatTeeClub
	colStatFairwayHit
	colStatGIR
	colStatBunker
	colStatPenaltyOB
	colStatPenaltyWater
	colStatFirstPuttDist
	colStatUpDownAttempt
	colStatUpDownSuccess
	colStatNotes
	colStatSummaryKey
)

func decodeHoleEntry(row []string) models.HoleEntry {
	return models.HoleEntry{
		ID:                cell(row, colStatID),
		Timestamp:         cell(row, colStatTimestamp),
		PlayerID:          cell(row, colStatPlayerID),
		PlayerName:        cell(row, colStatPlayerName),
		RoundID:           cell(row, colStatRoundID),
		TeeID:             cell(row, colStatTeeID),
		Hole:              parseInt(cell(row, colStatHole), 0),
		Par:               parseInt(cell(row, colStatPar), 4),
		Strokes:           parseInt(cell(row, colStatStrokes), 0),
		ScoreToPar:        parseInt(cell(row, colStatScoreToPar), 0),
		Result:            cell(row, colStatResult),
		Putts:             parseInt(cell(row, colStatPutts), 0),
		TeeClub:           cell(row, colStatTeeClub),
		FairwayHit:        ParseBool(cell(row, colStatFairwayHit)),
		GreenInRegulation: ParseBool(cell(row, colStatGIR)),
		Bunker:            ParseBool(cell(row, colStatBunker)),
		PenaltyOB:         parseInt(cell(row, colStatPenaltyOB), 0),
		PenaltyWater:      parseInt(cell(row, colStatPenaltyWater), 0),
		FirstPuttDistM:    parseFloat(cell(row, colStatFirstPuttDist), 0),
		UpDownAttempt:     ParseBool(cell(row, colStatUpDownAttempt)),
		UpDownSuccess:     ParseBool(cell(row, colStatUpDownSuccess)),
		Notes:             cell(row, colStatNotes),
		SummaryKey:        cell(row, colStatSummaryKey),
	}
}
