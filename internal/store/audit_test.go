// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"
	"time"

	"helpdoc/internal/models"
)

func TestAuditStoreVersionAssignment(t *testing.T) {
	db := testDB(t)
	items := NewItemStore(db)
	audits := NewAuditStore(db)

	key := "test-audit-versions"
	cleanItems(t, db, key)
	t.Cleanup(func() { cleanItems(t, db, key) })

	item := testItem(key)
	if err := items.Create(item); err != nil {
		t.Fatalf("Create item: %v", err)
	}

	// Content changes of one variant get sequential labels.
	for i, want := range []string{"1.1", "1.2", "1.3"} {
		e, err := audits.Append(&models.AuditEntry{
			ItemID:   item.ID,
			Language: models.LanguageFI,
			Type:     models.AuditContentChange,
			Content:  "Versio " + want,
			Author:   "test",
			Date:     time.Now().Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		if e.Version != want {
			t.Errorf("version = %q, want %q", e.Version, want)
		}
		if e.ID == "" {
			t.Error("Append did not assign an ID")
		}
	}

	// Another variant numbers independently.
	e, err := audits.Append(&models.AuditEntry{
		ItemID:   item.ID,
		Language: models.LanguageSV,
		Type:     models.AuditContentChange,
		Content:  "Svensk version",
		Author:   "test",
		Date:     time.Now(),
	})
	if err != nil {
		t.Fatalf("Append sv: %v", err)
	}
	if e.Version != "1.1" {
		t.Errorf("sv version = %q, want 1.1", e.Version)
	}

	// State changes are not versioned.
	e, err = audits.Append(&models.AuditEntry{
		ItemID:    item.ID,
		Language:  models.LanguageFI,
		Type:      models.AuditStateChange,
		FromState: models.StateDraft,
		ToState:   models.StatePendingReview,
		Author:    "test",
		Date:      time.Now(),
	})
	if err != nil {
		t.Fatalf("Append state change: %v", err)
	}
	if e.Version != "" {
		t.Errorf("state change got version %q", e.Version)
	}

	// An explicit version label is kept as-is.
	e, err = audits.Append(&models.AuditEntry{
		ItemID:   item.ID,
		Language: models.LanguageFI,
		Type:     models.AuditContentChange,
		Version:  "2.0",
		Content:  "Eksplisiittinen versio",
		Author:   "test",
		Date:     time.Now(),
	})
	if err != nil {
		t.Fatalf("Append explicit: %v", err)
	}
	if e.Version != "2.0" {
		t.Errorf("explicit version = %q, want 2.0", e.Version)
	}
}

func TestAuditStoreListAndFind(t *testing.T) {
	db := testDB(t)
	items := NewItemStore(db)
	audits := NewAuditStore(db)

	key := "test-audit-list"
	cleanItems(t, db, key)
	t.Cleanup(func() { cleanItems(t, db, key) })

	item := testItem(key)
	if err := items.Create(item); err != nil {
		t.Fatalf("Create item: %v", err)
	}

	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)
	entries := []models.AuditEntry{
		{ItemID: item.ID, Language: models.LanguageFI, Type: models.AuditContentChange, Content: "eka", Date: base},
		{ItemID: item.ID, Language: models.LanguageFI, Type: models.AuditContentChange, Content: "toka", Date: base.Add(time.Minute)},
		{ItemID: item.ID, Language: models.LanguageSV, Type: models.AuditContentChange, Content: "sv", Date: base.Add(2 * time.Minute)},
	}
	if _, err := audits.AppendAll(entries); err != nil {
		t.Fatalf("AppendAll: %v", err)
	}

	all, err := audits.ListByItem(item.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListByItem returned %d entries, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date) {
			t.Error("ListByItem not newest first")
		}
	}

	fi, err := audits.ListByTarget(item.ID, "", models.LanguageFI)
	if err != nil {
		t.Fatalf("ListByTarget: %v", err)
	}
	if len(fi) != 2 {
		t.Fatalf("ListByTarget fi returned %d entries, want 2", len(fi))
	}
	if fi[0].Content != "toka" {
		t.Errorf("newest fi entry content = %q, want toka", fi[0].Content)
	}

	v, err := audits.FindVersion(item.ID, "", models.LanguageFI, "1.1")
	if err != nil {
		t.Fatalf("FindVersion: %v", err)
	}
	if v == nil || v.Content != "eka" {
		t.Errorf("FindVersion 1.1 = %+v, want content eka", v)
	}
	missing, err := audits.FindVersion(item.ID, "", models.LanguageFI, "9.9")
	if err != nil {
		t.Fatalf("FindVersion missing: %v", err)
	}
	if missing != nil {
		t.Errorf("FindVersion of missing label = %+v, want nil", missing)
	}
}

// TestAuditStoreCascadeDelete verifies the item's audit trail goes away
// with the item.
func TestAuditStoreCascadeDelete(t *testing.T) {
	db := testDB(t)
	items := NewItemStore(db)
	audits := NewAuditStore(db)

	key := "test-audit-cascade"
	cleanItems(t, db, key)
	t.Cleanup(func() { cleanItems(t, db, key) })

	item := testItem(key)
	if err := items.Create(item); err != nil {
		t.Fatalf("Create item: %v", err)
	}
	if _, err := audits.Append(&models.AuditEntry{
		ItemID: item.ID, Language: models.LanguageFI,
		Type: models.AuditContentChange, Content: "x", Date: time.Now(),
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	if err := items.Delete(item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	left, err := audits.ListByItem(item.ID)
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d audit entries survived the cascade", len(left))
	}
}
