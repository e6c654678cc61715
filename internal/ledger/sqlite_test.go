package ledger

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "audit.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteAppendAndList(t *testing.T) {
	s := tempStore(t)

	rec := testRecord("감자", "다이아지논")
	rec.Note = "single query"
	id, err := s.Append(rec)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if id == 0 {
		t.Fatal("expected non-zero id")
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.ID != id {
		t.Fatalf("expected id %d, got %d", id, got.ID)
	}
	if got.Food != "감자" || got.Pesticide != "다이아지논" {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if got.Measured != 0.02 || got.AppliedLimit != 0.01 || got.Exceedance != 0.01 {
		t.Fatalf("numbers mismatch: %+v", got)
	}
	if got.Verdict != VerdictNonCompliant || got.Action != "hold" || got.PolicySource != "explicit" {
		t.Fatalf("fields mismatch: %+v", got)
	}
	if got.Note != "single query" {
		t.Fatalf("note mismatch: %q", got.Note)
	}
}

func TestSQLiteListMostRecentFirst(t *testing.T) {
	s := tempStore(t)
	s.Append(testRecord("감자", "다이아지논"))
	s.Append(testRecord("사과", "Chlorpyrifos"))
	s.Append(testRecord("쌀", "Carbaryl"))

	records, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Food != "쌀" || records[2].Food != "감자" {
		t.Fatalf("expected most-recent-first, got %s .. %s", records[0].Food, records[2].Food)
	}
}

func TestSQLiteDeleteBulk(t *testing.T) {
	s := tempStore(t)
	id1, _ := s.Append(testRecord("감자", "다이아지논"))
	s.Append(testRecord("사과", "Chlorpyrifos"))
	id3, _ := s.Append(testRecord("쌀", "Carbaryl"))

	n, err := s.Delete([]int64{id1, id3, 999})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}

	records, _ := s.List()
	if len(records) != 1 || records[0].Food != "사과" {
		t.Fatalf("unexpected survivors: %+v", records)
	}
}

func TestSQLiteDeleteEmptyIDs(t *testing.T) {
	s := tempStore(t)
	s.Append(testRecord("감자", "다이아지논"))

	n, err := s.Delete(nil)
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got %d err=%v", n, err)
	}
}

func TestSQLiteClear(t *testing.T) {
	s := tempStore(t)
	s.Append(testRecord("감자", "다이아지논"))
	s.Append(testRecord("사과", "Chlorpyrifos"))

	n, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if records, _ := s.List(); len(records) != 0 {
		t.Fatal("expected empty ledger after clear")
	}
}

func TestSQLiteIDsSurviveClear(t *testing.T) {
	// AUTOINCREMENT: ids are never reused, even after a full clear.
	s := tempStore(t)
	id1, _ := s.Append(testRecord("감자", "다이아지논"))
	s.Clear()

	id2, _ := s.Append(testRecord("사과", "Chlorpyrifos"))
	if id2 <= id1 {
		t.Fatalf("expected fresh id after clear, got %d then %d", id1, id2)
	}
}

func TestSQLiteAppendDefaultsCreatedAt(t *testing.T) {
	s := tempStore(t)
	rec := testRecord("감자", "다이아지논")
	rec.CreatedAt = time.Time{}

	if _, err := s.Append(rec); err != nil {
		t.Fatalf("Append: %v", err)
	}
	records, _ := s.List()
	if records[0].CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}
}

func TestSQLiteNewStoreInvalidPath(t *testing.T) {
	_, err := NewSQLiteStore(filepath.Join(string(filepath.Separator), "nonexistent", "deep", "audit.db"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}

func TestSQLiteOpsOnClosedDB(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "audit.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	s.Close()

	if _, err := s.Append(testRecord("감자", "다이아지논")); err == nil {
		t.Fatal("expected Append error on closed DB")
	}
	if _, err := s.Delete([]int64{1}); err == nil {
		t.Fatal("expected Delete error on closed DB")
	}
	if _, err := s.Clear(); err == nil {
		t.Fatal("expected Clear error on closed DB")
	}
	if _, err := s.List(); err == nil {
		t.Fatal("expected List error on closed DB")
	}
}

func TestSQLiteMissingTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	s := NewSQLiteStoreWithDB(db)

	if _, err := s.Append(testRecord("감자", "다이아지논")); err == nil {
		t.Fatal("expected error when audit_records table is missing")
	}
	if _, err := s.List(); err == nil {
		t.Fatal("expected error when audit_records table is missing")
	}
}
