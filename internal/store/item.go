// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"helpdoc/internal/lifecycle"
	"helpdoc/internal/models"
)

// itemColumns lists all columns for content_items SELECTs.
const itemColumns = `id, key, title, description, content_type, category, archived,
	status, lifecycle_state, content, languages, channels,
	message_channel, valid_from, valid_to,
	parameter_template_id, parameter_meta,
	published_date, scheduled_date, change_reason,
	created_at, updated_at, created_by, updated_by, published_by`

// ItemStore provides access to content items in PostgreSQL. The variant
// maps and parameter metadata live in JSONB columns; the stored status and
// lifecycle_state columns are a derived mirror used only for filtering.
type ItemStore struct {
	db *sql.DB
}

// NewItemStore creates a new ItemStore backed by the given database.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// scanItem scans a single content_items row into a ContentItem.
func scanItem(scanner interface{ Scan(...any) error }) (*models.ContentItem, error) {
	var (
		it        models.ContentItem
		languages []byte
		channels  []byte
		meta      []byte
	)
	err := scanner.Scan(
		&it.ID, &it.Key, &it.Title, &it.Description, &it.ContentType, &it.Category, &it.Archived,
		&it.Status, &it.LifecycleState, &it.Content, &languages, &channels,
		&it.MessageChannel, &it.ValidFrom, &it.ValidTo,
		&it.ParameterTemplateID, &meta,
		&it.PublishedDate, &it.ScheduledDate, &it.ChangeReason,
		&it.CreatedAt, &it.UpdatedAt, &it.CreatedBy, &it.UpdatedBy, &it.PublishedBy,
	)
	if err != nil {
		return nil, err
	}
	if languages != nil {
		if err := json.Unmarshal(languages, &it.Languages); err != nil {
			return nil, fmt.Errorf("unmarshal languages: %w", err)
		}
	}
	if channels != nil {
		if err := json.Unmarshal(channels, &it.Channels); err != nil {
			return nil, fmt.Errorf("unmarshal channels: %w", err)
		}
	}
	if meta != nil {
		if err := json.Unmarshal(meta, &it.ParameterMeta); err != nil {
			return nil, fmt.Errorf("unmarshal parameter meta: %w", err)
		}
	}
	return &it, nil
}

// jsonColumn marshals a value for a JSONB column. Nil maps and pointers
// become SQL NULL so the column stays distinguishable from "{}".
func jsonColumn(v any, isNil bool) (any, error) {
	if isNil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return b, nil
}

// Create inserts a new content item. The caller assigns the ID and
// timestamps; the store writes the row as given.
func (s *ItemStore) Create(item *models.ContentItem) error {
	languages, err := jsonColumn(item.Languages, item.Languages == nil)
	if err != nil {
		return err
	}
	channels, err := jsonColumn(item.Channels, item.Channels == nil)
	if err != nil {
		return err
	}
	meta, err := jsonColumn(item.ParameterMeta, item.ParameterMeta == nil)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO content_items (
			id, key, title, description, content_type, category, archived,
			status, lifecycle_state, content, languages, channels,
			message_channel, valid_from, valid_to,
			parameter_template_id, parameter_meta,
			published_date, scheduled_date, change_reason,
			created_at, updated_at, created_by, updated_by, published_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15,
			$16, $17,
			$18, $19, $20,
			$21, $22, $23, $24, $25
		)
	`,
		item.ID, item.Key, item.Title, item.Description, item.ContentType, item.Category, item.Archived,
		item.Status, item.LifecycleState, item.Content, languages, channels,
		item.MessageChannel, item.ValidFrom, item.ValidTo,
		item.ParameterTemplateID, meta,
		item.PublishedDate, item.ScheduledDate, item.ChangeReason,
		item.CreatedAt, item.UpdatedAt, item.CreatedBy, item.UpdatedBy, item.PublishedBy,
	)
	if err != nil {
		return fmt.Errorf("create content item: %w", err)
	}
	return nil
}

// Update replaces the stored row of an existing item.
func (s *ItemStore) Update(item *models.ContentItem) error {
	languages, err := jsonColumn(item.Languages, item.Languages == nil)
	if err != nil {
		return err
	}
	channels, err := jsonColumn(item.Channels, item.Channels == nil)
	if err != nil {
		return err
	}
	meta, err := jsonColumn(item.ParameterMeta, item.ParameterMeta == nil)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE content_items SET
			key = $1, title = $2, description = $3, content_type = $4, category = $5,
			archived = $6, status = $7, lifecycle_state = $8, content = $9,
			languages = $10, channels = $11, message_channel = $12,
			valid_from = $13, valid_to = $14,
			parameter_template_id = $15, parameter_meta = $16,
			published_date = $17, scheduled_date = $18, change_reason = $19,
			updated_at = $20, updated_by = $21, published_by = $22
		WHERE id = $23
	`,
		item.Key, item.Title, item.Description, item.ContentType, item.Category,
		item.Archived, item.Status, item.LifecycleState, item.Content,
		languages, channels, item.MessageChannel,
		item.ValidFrom, item.ValidTo,
		item.ParameterTemplateID, meta,
		item.PublishedDate, item.ScheduledDate, item.ChangeReason,
		item.UpdatedAt, item.UpdatedBy, item.PublishedBy,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("update content item: %w", err)
	}
	return nil
}

// FindByID retrieves a content item by ID. Returns nil if not found.
func (s *ItemStore) FindByID(id string) (*models.ContentItem, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+` FROM content_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content item by id: %w", err)
	}
	return item, nil
}

// FindByKey retrieves a content item by its unique key. Returns nil if not
// found.
func (s *ItemStore) FindByKey(key string) (*models.ContentItem, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+` FROM content_items WHERE key = $1`, key)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content item by key: %w", err)
	}
	return item, nil
}

// KeyExists reports whether a content key is already taken.
func (s *ItemStore) KeyExists(key string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM content_items WHERE key = $1)`, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check content key: %w", err)
	}
	return exists, nil
}

// Filter selects content items for listing. Zero values mean "no filter";
// Archived defaults to hiding archived items.
type Filter struct {
	// Search matches title, key, description, and the content of every
	// variant, case-insensitively.
	Search      string
	ContentType models.ContentType
	Category    models.Category
	// Status keeps only items whose derived aggregate state matches. The
	// stored status column is a legacy mirror, so the check runs on the
	// loaded items, not in SQL.
	Status models.LifecycleState
	// Archived selects archived instead of active items.
	Archived bool
}

// List returns content items matching the filter, newest first.
func (s *ItemStore) List(f Filter) ([]*models.ContentItem, error) {
	where := []string{"archived = $1"}
	args := []any{f.Archived}

	if f.ContentType != "" {
		args = append(args, f.ContentType)
		where = append(where, fmt.Sprintf("content_type = $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(title ILIKE $%d OR key ILIKE $%d OR description ILIKE $%d OR content ILIKE $%d"+
				" OR languages::text ILIKE $%d OR channels::text ILIKE $%d)",
			n, n, n, n, n, n))
	}

	query := `SELECT ` + itemColumns + ` FROM content_items WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY updated_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content items: %w", err)
	}
	defer rows.Close()

	var items []*models.ContentItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if f.Status != "" {
		kept := items[:0]
		for _, item := range items {
			if lifecycle.AggregateState(item) == f.Status {
				kept = append(kept, item)
			}
		}
		items = kept
	}
	return items, nil
}

// SetArchived flips the archived flag of an item.
func (s *ItemStore) SetArchived(id string, archived bool) error {
	_, err := s.db.Exec(`UPDATE content_items SET archived = $1, updated_at = NOW() WHERE id = $2`, archived, id)
	if err != nil {
		return fmt.Errorf("set content item archived: %w", err)
	}
	return nil
}

// Delete removes a content item. Its audit entries are removed by the
// foreign key cascade.
func (s *ItemStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	return nil
}
