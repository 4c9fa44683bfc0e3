package statcast

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
)

// ParsePitchCSV converts a Statcast search CSV export into pitch records.
// Columns are located by header name so the export's column order and the
// many columns the analysis does not use are irrelevant. The player_name
// column is required; per-row problems (short rows, unparsable years,
// missing fields) default rather than fail, so one bad row never loses the
// season.
func ParsePitchCSV(r io.Reader) ([]models.PitchRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty CSV")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := columnIndex(header)
	playerCol := cols.lookup("player_name")
	if playerCol < 0 {
		return nil, fmt.Errorf("missing player_name column")
	}
	pitchTypeCol := cols.lookup("pitch_type")
	eventsCol := cols.lookup("events")
	yearCol := cols.lookup("game_year")

	var records []models.PitchRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		player := field(row, playerCol)
		if player == "" {
			continue
		}

		records = append(records, models.PitchRecord{
			PlayerName: player,
			PitchType:  field(row, pitchTypeCol),
			Event:      field(row, eventsCol),
			GameYear:   parseYear(field(row, yearCol)),
		})
	}

	return records, nil
}

type columns map[string]int

// columnIndex maps normalized header names to their positions.
func columnIndex(header []string) columns {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// lookup returns a column's position, or -1 when the header lacks it.
func (c columns) lookup(name string) int {
	if idx, ok := c[name]; ok {
		return idx
	}
	return -1
}

// field returns a trimmed cell value, or "" when the column is missing or
// the row is too short. Statcast uses "null" for absent values.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	value := strings.TrimSpace(row[idx])
	if strings.EqualFold(value, "null") {
		return ""
	}
	return value
}

func parseYear(value string) int {
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return year
}
