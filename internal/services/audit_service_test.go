package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"propfund/internal/models"
	"propfund/internal/pagination"
	"propfund/internal/testutil"
)

func newAuditHarness(t *testing.T) (*gorm.DB, AuditServicer, string) {
	t.Helper()
	db := testutil.SetupIsolatedDB(t)
	svc := NewAuditService(db, NewAccessService(db, NewOperationLock()))
	return db, svc, testutil.CreateTestAdmin(t, db)
}

func TestAuditLog(t *testing.T) {
	t.Run("records_entry", func(t *testing.T) {
		db, svc, _ := newAuditHarness(t)

		svc.Log("admin-1", "APPROVE_PROPERTY", "property", "7", "10.0.0.1", map[string]any{"deadline": "2026-02-01"})

		var entry models.AuditLog
		testutil.AssertNoError(t, db.Where("action = ?", "APPROVE_PROPERTY").First(&entry).Error)
		if entry.Actor != "admin-1" || entry.ResourceID != "7" || entry.IPAddress != "10.0.0.1" {
			t.Errorf("unexpected audit entry: %+v", entry)
		}
		if entry.Changes != `{"deadline":"2026-02-01"}` {
			t.Errorf("unexpected changes: %s", entry.Changes)
		}
	})

	t.Run("nil_changes", func(t *testing.T) {
		db, svc, _ := newAuditHarness(t)

		svc.Log("admin-1", "PAUSE", "system", "1", "", nil)

		var entry models.AuditLog
		testutil.AssertNoError(t, db.First(&entry).Error)
		if entry.Changes != "" {
			t.Errorf("expected no changes, got %q", entry.Changes)
		}
	})
}

func TestAuditList(t *testing.T) {
	ctx := context.Background()

	t.Run("filters_and_pages", func(t *testing.T) {
		_, svc, admin := newAuditHarness(t)
		svc.Log(admin, "APPROVE_PROPERTY", "property", "1", "", nil)
		svc.Log(admin, "CANCEL_PROPERTY", "property", "2", "", nil)
		svc.Log(admin, "COMPLETE_RAISE", "property", "1", "", nil)
		svc.Log("0xalice", "BUY_SHARES", "property", "1", "", nil)

		page, err := svc.List(ctx, admin, AuditFilter{ResourceType: "property", ResourceID: "1"}, pagination.PageRequest{Page: 1, PageSize: 2})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 || len(page.Data) != 2 {
			t.Fatalf("expected 2 of 3 entries, got %d of %d", len(page.Data), page.TotalItems)
		}

		page, err = svc.List(ctx, admin, AuditFilter{Actor: "0xalice"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if len(page.Data) != 1 || page.Data[0].Action != "BUY_SHARES" {
			t.Errorf("unexpected actor listing: %+v", page.Data)
		}
	})

	t.Run("requires_admin", func(t *testing.T) {
		db, svc, _ := newAuditHarness(t)
		investor := testutil.CreateTestInvestor(t, db)

		_, err := svc.List(ctx, investor, AuditFilter{}, pagination.PageRequest{})
		testutil.AssertAppError(t, err, "FORBIDDEN")
	})
}
