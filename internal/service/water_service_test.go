package service

import (
	"errors"
	"testing"

	"github.com/nutrilog/internal/db"
)

func TestWaterServiceAddAndList(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewWaterService(db.DB)

	if _, err := svc.Add("device-a", "2025-03-10", 500); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add("device-a", "2025-03-10", 250); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	// 其他设备与其他日期不计入
	if _, err := svc.Add("device-b", "2025-03-10", 1000); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if _, err := svc.Add("device-a", "2025-03-11", 1000); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	total, entries, err := svc.ListByDate("device-a", "2025-03-10")
	if err != nil {
		t.Fatalf("ListByDate returned error: %v", err)
	}
	if total != 750 {
		t.Fatalf("expected total 750, got %d", total)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestWaterServiceRejectsNonPositiveVolume(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewWaterService(db.DB)

	if _, err := svc.Add("device-a", "2025-03-10", 0); !errors.Is(err, ErrWaterInvalidVolume) {
		t.Fatalf("expected ErrWaterInvalidVolume, got %v", err)
	}
	if _, err := svc.Add("device-a", "2025-03-10", -100); !errors.Is(err, ErrWaterInvalidVolume) {
		t.Fatalf("expected ErrWaterInvalidVolume, got %v", err)
	}
}

func TestWaterServiceDeleteOwnership(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	svc := NewWaterService(db.DB)

	entry, err := svc.Add("device-a", "2025-03-10", 500)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := svc.Delete("device-b", entry.ID); !errors.Is(err, ErrWaterNotFound) {
		t.Fatalf("expected ErrWaterNotFound for foreign device, got %v", err)
	}

	if err := svc.Delete("device-a", entry.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	total, _, err := svc.ListByDate("device-a", "2025-03-10")
	if err != nil {
		t.Fatalf("ListByDate returned error: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total 0 after delete, got %d", total)
	}
}
