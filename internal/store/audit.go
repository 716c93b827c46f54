// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"helpdoc/internal/models"
)

// auditColumns lists all columns for audit_entries SELECTs.
const auditColumns = `id, item_id, channel, language, entry_type,
	version, content, description, lifecycle_state,
	from_state, to_state, change_reason, author, entry_date`

// AuditStore provides access to the append-only version history of content
// items. Version labels ("1.1", "1.2", ...) are assigned here, at append
// time, so concurrent writers cannot hand out the same label twice within
// one transaction scope.
type AuditStore struct {
	db *sql.DB
}

// NewAuditStore creates a new AuditStore backed by the given database.
func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db}
}

// scanEntry scans a single audit_entries row into an AuditEntry.
func scanEntry(scanner interface{ Scan(...any) error }) (*models.AuditEntry, error) {
	var e models.AuditEntry
	err := scanner.Scan(
		&e.ID, &e.ItemID, &e.Channel, &e.Language, &e.Type,
		&e.Version, &e.Content, &e.Description, &e.LifecycleState,
		&e.FromState, &e.ToState, &e.ChangeReason, &e.Author, &e.Date,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Append inserts one audit entry. A content change with no version label
// gets the next one for its variant ("1.N", where N counts the variant's
// content changes). Returns the entry as stored.
func (s *AuditStore) Append(entry *models.AuditEntry) (*models.AuditEntry, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("append audit entry: %w", err)
	}
	defer tx.Rollback()

	stored := *entry
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.Type == models.AuditContentChange && stored.Version == "" {
		var prior int
		err := tx.QueryRow(`
			SELECT COUNT(*) FROM audit_entries
			WHERE item_id = $1 AND channel = $2 AND language = $3 AND entry_type = $4
		`, stored.ItemID, stored.Channel, stored.Language, models.AuditContentChange).Scan(&prior)
		if err != nil {
			return nil, fmt.Errorf("count content changes: %w", err)
		}
		stored.Version = fmt.Sprintf("1.%d", prior+1)
	}

	_, err = tx.Exec(`
		INSERT INTO audit_entries (
			id, item_id, channel, language, entry_type,
			version, content, description, lifecycle_state,
			from_state, to_state, change_reason, author, entry_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		stored.ID, stored.ItemID, stored.Channel, stored.Language, stored.Type,
		stored.Version, stored.Content, stored.Description, stored.LifecycleState,
		stored.FromState, stored.ToState, stored.ChangeReason, stored.Author, stored.Date,
	)
	if err != nil {
		return nil, fmt.Errorf("insert audit entry: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("append audit entry: %w", err)
	}
	return &stored, nil
}

// AppendAll appends the entries in order, assigning version labels as it
// goes. Used to persist the audit output of one lifecycle transition.
func (s *AuditStore) AppendAll(entries []models.AuditEntry) ([]*models.AuditEntry, error) {
	stored := make([]*models.AuditEntry, 0, len(entries))
	for i := range entries {
		e, err := s.Append(&entries[i])
		if err != nil {
			return stored, err
		}
		stored = append(stored, e)
	}
	return stored, nil
}

// ListByItem returns all audit entries of an item, newest first.
func (s *AuditStore) ListByItem(itemID string) ([]*models.AuditEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+auditColumns+`
		FROM audit_entries
		WHERE item_id = $1
		ORDER BY entry_date DESC, id
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.AuditEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListByTarget returns the audit entries of one variant, newest first.
// Channel and language are empty for simple-shape items.
func (s *AuditStore) ListByTarget(itemID, channel string, lang models.Language) ([]*models.AuditEntry, error) {
	rows, err := s.db.Query(`
		SELECT `+auditColumns+`
		FROM audit_entries
		WHERE item_id = $1 AND channel = $2 AND language = $3
		ORDER BY entry_date DESC, id
	`, itemID, channel, lang)
	if err != nil {
		return nil, fmt.Errorf("list audit entries by target: %w", err)
	}
	defer rows.Close()

	var entries []*models.AuditEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// FindVersion returns a variant's content change with the given version
// label. Returns nil if not found.
func (s *AuditStore) FindVersion(itemID, channel string, lang models.Language, version string) (*models.AuditEntry, error) {
	row := s.db.QueryRow(`
		SELECT `+auditColumns+`
		FROM audit_entries
		WHERE item_id = $1 AND channel = $2 AND language = $3
		  AND entry_type = $4 AND version = $5
	`, itemID, channel, lang, models.AuditContentChange, version)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find audit version: %w", err)
	}
	return e, nil
}
