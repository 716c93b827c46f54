// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"sort"
	"time"
)

// AuditEntryType distinguishes the two kinds of version-history records.
type AuditEntryType string

const (
	// AuditContentChange records a content snapshot with a version label.
	AuditContentChange AuditEntryType = "content_change"
	// AuditStateChange records a lifecycle transition.
	AuditStateChange AuditEntryType = "state_change"
)

// AuditEntry is one append-only version-history record for a content item
// variant. Content changes carry a version label and a content snapshot;
// state changes carry the from/to states. Every mutating operation on an
// item produces exactly one or more of these, and a persistence layer must
// append them all.
type AuditEntry struct {
	ID     string `json:"id"`
	ItemID string `json:"itemId"`

	// Variant address. Both empty for simple-shape items.
	Channel  string   `json:"channel,omitempty"`
	Language Language `json:"language,omitempty"`

	Type AuditEntryType `json:"type"`

	// Content change fields.
	Version        string         `json:"version,omitempty"`
	Content        string         `json:"content,omitempty"`
	Description    string         `json:"description,omitempty"`
	LifecycleState LifecycleState `json:"lifecycleState,omitempty"`

	// State change fields.
	FromState LifecycleState `json:"fromState,omitempty"`
	ToState   LifecycleState `json:"toState,omitempty"`

	ChangeReason string    `json:"changeReason,omitempty"`
	Author       string    `json:"author,omitempty"`
	Date         time.Time `json:"date"`
}

// SortNewestFirst orders audit entries for display, most recent first.
// Entries with equal timestamps keep their relative order.
func SortNewestFirst(entries []AuditEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}
