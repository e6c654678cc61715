package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/foodsafelab/residuecheck/internal/limits"
)

// #region load-stats
// LoadStats summarizes one ingestion pass.
type LoadStats struct {
	Rows       int // rows accepted into the table
	Skipped    int // rows dropped for bad shape or a bad limit value
	Duplicates int // accepted rows whose (food, pesticide) pair was already present
}

// #endregion load-stats

// #region columns
type columnSet struct {
	food      int
	pesticide int
	limit     int
}

func columnIndexes(header []string) (columnSet, error) {
	cols := columnSet{food: -1, pesticide: -1, limit: -1}
	for i, h := range header {
		switch strings.TrimSpace(strings.ToLower(h)) {
		case "food_type":
			cols.food = i
		case "pesticide_name":
			cols.pesticide = i
		case "limit_mg_kg":
			cols.limit = i
		}
	}
	if cols.food < 0 || cols.pesticide < 0 || cols.limit < 0 {
		return cols, fmt.Errorf("header missing required columns (food_type, pesticide_name, limit_mg_kg): %v", header)
	}
	return cols, nil
}

func (c columnSet) max() int {
	m := c.food
	if c.pesticide > m {
		m = c.pesticide
	}
	if c.limit > m {
		m = c.limit
	}
	return m
}

// #endregion columns

// #region load-csv
// LoadCSV reads a limits table from CSV with a
// food_type,pesticide_name,limit_mg_kg header. Name fields are
// whitespace-trimmed here so the engine never sees padding. Row order is
// preserved: first-match resolution depends on it, so duplicates are
// counted but kept. Bad rows are skipped, not fatal; an empty result is.
func LoadCSV(r io.Reader) (limits.Table, LoadStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndexes(header)
	if err != nil {
		return nil, LoadStats{}, err
	}

	var table limits.Table
	var stats LoadStats
	seen := make(map[[2]string]struct{})
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.Skipped++
			continue
		}
		entry, ok := validateRow(rec, cols)
		if !ok {
			stats.Skipped++
			continue
		}
		key := [2]string{entry.Food, entry.Pesticide}
		if _, dup := seen[key]; dup {
			stats.Duplicates++
		} else {
			seen[key] = struct{}{}
		}
		table = append(table, entry)
		stats.Rows++
	}

	if len(table) == 0 {
		return nil, stats, fmt.Errorf("limits table is empty")
	}
	return table, stats, nil
}

// validateRow trims and type-checks one source row. Validation lives at
// this boundary so the engine can assume well-formed entries.
func validateRow(rec []string, cols columnSet) (limits.LimitEntry, bool) {
	if len(rec) <= cols.max() {
		return limits.LimitEntry{}, false
	}
	food := strings.TrimSpace(rec[cols.food])
	pest := strings.TrimSpace(rec[cols.pesticide])
	lim, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.limit]), 64)
	if food == "" || pest == "" || err != nil || lim < 0 {
		return limits.LimitEntry{}, false
	}
	return limits.LimitEntry{Food: food, Pesticide: pest, Limit: lim}, true
}

// #endregion load-csv
