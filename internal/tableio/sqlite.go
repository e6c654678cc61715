package tableio

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/foodsafelab/residuecheck/internal/limits"
)

// #region load-sqlite
// LoadSQLite reads a limits table from the pesticide_limits table of a
// SQLite database, in rowid order so first-match resolution tracks the
// source ordering. Rows get the same trim and validation as the CSV path.
func LoadSQLite(path string) (limits.Table, LoadStats, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("open limits db: %w", err)
	}
	defer db.Close()
	return loadSQLiteDB(db)
}

func loadSQLiteDB(db *sql.DB) (limits.Table, LoadStats, error) {
	rows, err := db.Query(
		`SELECT food_type, pesticide_name, limit_mg_kg FROM pesticide_limits ORDER BY rowid`,
	)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("query limits: %w", err)
	}
	defer rows.Close()

	var table limits.Table
	var stats LoadStats
	seen := make(map[[2]string]struct{})
	for rows.Next() {
		var food, pest string
		var lim float64
		if err := rows.Scan(&food, &pest, &lim); err != nil {
			return nil, stats, fmt.Errorf("scan limit row: %w", err)
		}
		food = strings.TrimSpace(food)
		pest = strings.TrimSpace(pest)
		if food == "" || pest == "" || lim < 0 {
			stats.Skipped++
			continue
		}
		key := [2]string{food, pest}
		if _, dup := seen[key]; dup {
			stats.Duplicates++
		} else {
			seen[key] = struct{}{}
		}
		table = append(table, limits.LimitEntry{Food: food, Pesticide: pest, Limit: lim})
		stats.Rows++
	}
	if err := rows.Err(); err != nil {
		return nil, stats, fmt.Errorf("read limits: %w", err)
	}
	if len(table) == 0 {
		return nil, stats, fmt.Errorf("limits table is empty")
	}
	return table, stats, nil
}

// #endregion load-sqlite
