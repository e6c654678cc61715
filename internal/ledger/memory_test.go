package ledger

import (
	"testing"
	"time"
)

func testRecord(food, pesticide string) AuditRecord {
	return AuditRecord{
		CreatedAt:    time.Now().UTC(),
		Department:   "quality-control",
		Food:         food,
		Pesticide:    pesticide,
		Measured:     0.02,
		AppliedLimit: 0.01,
		Exceedance:   0.01,
		Verdict:      VerdictNonCompliant,
		Action:       "hold",
		PolicySource: "explicit",
	}
}

func TestMemoryAppendAssignsIncreasingIDs(t *testing.T) {
	m := NewMemoryStore()

	id1, err := m.Append(testRecord("감자", "다이아지논"))
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	id2, _ := m.Append(testRecord("사과", "Chlorpyrifos"))
	if id1 != 1 || id2 != 2 {
		t.Fatalf("expected ids 1,2, got %d,%d", id1, id2)
	}
}

func TestMemoryListMostRecentFirst(t *testing.T) {
	m := NewMemoryStore()
	m.Append(testRecord("감자", "다이아지논"))
	m.Append(testRecord("사과", "Chlorpyrifos"))

	records, err := m.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Food != "사과" || records[1].Food != "감자" {
		t.Fatalf("expected most-recent-first, got %s, %s", records[0].Food, records[1].Food)
	}
}

func TestMemoryDeleteSelective(t *testing.T) {
	m := NewMemoryStore()
	id1, _ := m.Append(testRecord("감자", "다이아지논"))
	m.Append(testRecord("사과", "Chlorpyrifos"))
	id3, _ := m.Append(testRecord("쌀", "Carbaryl"))

	n, err := m.Delete([]int64{id1, id3, 999})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 removed (unknown id ignored), got %d", n)
	}

	records, _ := m.List()
	if len(records) != 1 || records[0].Food != "사과" {
		t.Fatalf("unexpected survivors: %+v", records)
	}
}

func TestMemoryClear(t *testing.T) {
	m := NewMemoryStore()
	m.Append(testRecord("감자", "다이아지논"))
	m.Append(testRecord("사과", "Chlorpyrifos"))

	n, err := m.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 cleared, got %d", n)
	}
	if records, _ := m.List(); len(records) != 0 {
		t.Fatal("expected empty ledger after clear")
	}
}

func TestMemoryIDsNotReusedAfterDelete(t *testing.T) {
	m := NewMemoryStore()
	id1, _ := m.Append(testRecord("감자", "다이아지논"))
	m.Delete([]int64{id1})

	id2, _ := m.Append(testRecord("사과", "Chlorpyrifos"))
	if id2 == id1 {
		t.Fatal("ids must stay unique across deletes")
	}
}

func TestMemoryDeleteEmpty(t *testing.T) {
	m := NewMemoryStore()
	n, err := m.Delete(nil)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 removed, got %d err=%v", n, err)
	}
}
