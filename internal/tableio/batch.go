package tableio

import "strings"

// #region raw-row
// RawRow is one split batch line before quantity parsing: food,
// pesticide, and the quantity cell verbatim.
type RawRow struct {
	Food        string
	Pesticide   string
	RawQuantity string
}

// #endregion raw-row

// #region split-rows
// SplitRows splits pasted batch text into three-field rows. The delimiter
// is inferred once per input: tab when any line contains one, else comma,
// else runs of whitespace. Blank lines are skipped. Lines with fewer than
// three fields are dropped and counted so one ragged line never sinks the
// paste; extra fields beyond the third are ignored.
func SplitRows(text string) ([]RawRow, int) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	delim := inferDelimiter(lines)

	var rows []RawRow
	dropped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var fields []string
		switch delim {
		case "\t", ",":
			fields = strings.Split(line, delim)
		default:
			fields = strings.Fields(line)
		}
		if len(fields) < 3 {
			dropped++
			continue
		}
		rows = append(rows, RawRow{
			Food:        strings.TrimSpace(fields[0]),
			Pesticide:   strings.TrimSpace(fields[1]),
			RawQuantity: strings.TrimSpace(fields[2]),
		})
	}
	return rows, dropped
}

// inferDelimiter picks one delimiter for the whole paste. Tab wins over
// comma so spreadsheet pastes with commas inside names still split right.
func inferDelimiter(lines []string) string {
	hasComma := false
	for _, line := range lines {
		if strings.Contains(line, "\t") {
			return "\t"
		}
		if strings.Contains(line, ",") {
			hasComma = true
		}
	}
	if hasComma {
		return ","
	}
	return " "
}

// #endregion split-rows
