package ledger

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS audit_records (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at     TEXT NOT NULL,
	department     TEXT NOT NULL,
	food_type      TEXT NOT NULL,
	pesticide_name TEXT NOT NULL,
	measured       REAL NOT NULL,
	applied_limit  REAL NOT NULL,
	exceedance     REAL NOT NULL,
	verdict        TEXT NOT NULL,
	action_taken   TEXT,
	policy_source  TEXT,
	note           TEXT
);
`

// #endregion schema

// #region sqlite-store
// SQLiteStore persists the audit ledger in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// #endregion sqlite-store

// #region constructor
// NewSQLiteStore opens a ledger database at path and runs migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreWithDB wraps an existing connection. Used for testing
// against an in-memory database with direct schema access.
func NewSQLiteStoreWithDB(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region append
// Append inserts one record and returns its AUTOINCREMENT id.
func (s *SQLiteStore) Append(rec AuditRecord) (int64, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.Exec(
		`INSERT INTO audit_records (created_at, department, food_type, pesticide_name, measured, applied_limit, exceedance, verdict, action_taken, policy_source, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.Department,
		rec.Food,
		rec.Pesticide,
		rec.Measured,
		rec.AppliedLimit,
		rec.Exceedance,
		rec.Verdict,
		nullIfEmpty(rec.Action),
		nullIfEmpty(rec.PolicySource),
		nullIfEmpty(rec.Note),
	)
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("record id: %w", err)
	}
	return id, nil
}

// #endregion append

// #region delete
// Delete removes records by id in one statement so the removal is atomic.
// Unknown ids are ignored.
func (s *SQLiteStore) Delete(ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	res, err := s.db.Exec(
		fmt.Sprintf(`DELETE FROM audit_records WHERE id IN (%s)`, placeholders), args...,
	)
	if err != nil {
		return 0, fmt.Errorf("delete records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}

// #endregion delete

// #region clear
// Clear removes every record.
func (s *SQLiteStore) Clear() (int, error) {
	res, err := s.db.Exec(`DELETE FROM audit_records`)
	if err != nil {
		return 0, fmt.Errorf("clear ledger: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}

// #endregion clear

// #region list
// List returns all records, most recent first.
func (s *SQLiteStore) List() ([]AuditRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, created_at, department, food_type, pesticide_name, measured, applied_limit, exceedance, verdict, action_taken, policy_source, note
		 FROM audit_records ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []AuditRecord
	for rows.Next() {
		var rec AuditRecord
		var createdStr string
		var action, policy, note sql.NullString

		if err := rows.Scan(
			&rec.ID, &createdStr, &rec.Department, &rec.Food, &rec.Pesticide,
			&rec.Measured, &rec.AppliedLimit, &rec.Exceedance, &rec.Verdict,
			&action, &policy, &note,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if action.Valid {
			rec.Action = action.String
		}
		if policy.Valid {
			rec.PolicySource = policy.String
		}
		if note.Valid {
			rec.Note = note.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
