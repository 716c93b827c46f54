// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the content repository data model: content items
// with their per-language and per-channel variants, lifecycle states, and
// the audit trail entries every mutating operation produces.
package models

import (
	"fmt"
	"sort"
	"time"
)

// ContentType distinguishes the editor type of a content item.
type ContentType string

const (
	ContentTypeText      ContentType = "text"
	ContentTypeTemplate  ContentType = "template"
	ContentTypeParameter ContentType = "parameter"
	ContentTypeStructure ContentType = "structure"
)

// Language identifies a language variant of a content item.
type Language string

const (
	LanguageFI Language = "fi"
	LanguageSV Language = "sv"
	LanguageEN Language = "en"
)

// LanguageLabels maps language codes to their display names.
var LanguageLabels = map[Language]string{
	LanguageFI: "Suomi",
	LanguageSV: "Svenska",
	LanguageEN: "English",
}

// PreferredLanguages is the order in which a language variant is chosen
// when deriving an item's effective state or display content.
var PreferredLanguages = []Language{LanguageFI, LanguageSV, LanguageEN}

// LifecycleState is the publication state of a content item or variant.
// States are mutually exclusive: a variant is in exactly one at a time.
type LifecycleState string

const (
	StateDraft         LifecycleState = "draft"
	StatePendingReview LifecycleState = "pending_review"
	// StateApproved exists as a catalog/filter label but no transition
	// produces it. Kept so stored data using the label round-trips.
	StateApproved  LifecycleState = "approved"
	StateScheduled LifecycleState = "scheduled"
	StatePublished LifecycleState = "published"
)

// Valid reports whether s is one of the declared lifecycle states.
func (s LifecycleState) Valid() bool {
	switch s {
	case StateDraft, StatePendingReview, StateApproved, StateScheduled, StatePublished:
		return true
	}
	return false
}

// StateLabels maps lifecycle states to their Finnish display labels.
var StateLabels = map[LifecycleState]string{
	StateDraft:         "Luonnos",
	StatePendingReview: "Tarkistuksessa",
	StateApproved:      "Hyväksytty",
	StateScheduled:     "Ajastettu",
	StatePublished:     "Julkaistu",
}

// Shape describes which of the three content representations an item uses.
// The shape is fixed at creation and never migrates.
type Shape string

const (
	// ShapeSimple items carry a single Content string.
	ShapeSimple Shape = "simple"
	// ShapeLanguage items carry one variant per language.
	ShapeLanguage Shape = "language"
	// ShapeChannel items carry per-channel language variant sets.
	ShapeChannel Shape = "channel"
)

// LanguageVariant is an independently-stateful copy of an item's content
// for one language (or one channel+language pair). Its lifecycle state is
// canonical: it dominates any aggregate status stored on the item.
type LanguageVariant struct {
	Content        string         `json:"content"`
	LifecycleState LifecycleState `json:"lifecycleState"`
	PublishedDate  *time.Time     `json:"publishedDate,omitempty"`
	ScheduledDate  *time.Time     `json:"scheduledDate,omitempty"`
	ChangeReason   string         `json:"changeReason,omitempty"`
}

// ChannelVariant groups the language variants of one delivery channel.
type ChannelVariant struct {
	Languages map[Language]*LanguageVariant `json:"languages"`
}

// ParameterMeta describes the value constraints of a parameter item,
// copied from its parameter template at creation time.
type ParameterMeta struct {
	Type        string   `json:"type"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ContentItem is the aggregate root of the repository: a message, decision
// template, parameter, or structured JSON document, in one of three content
// shapes (simple / per-language / per-channel-per-language).
//
// The top-level Status and LifecycleState fields are the item's own state
// only for simple-shape items. For variant shapes they are a legacy mirror
// kept for stored-data compatibility; the per-variant LifecycleState always
// takes precedence, and aggregate views are computed on demand.
type ContentItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`

	ContentType ContentType `json:"contentType"`
	Category    Category    `json:"category"`
	Archived    bool        `json:"archived"`

	// Legacy aggregate mirror. Read-compat only, never authoritative.
	Status         string         `json:"status,omitempty"`
	LifecycleState LifecycleState `json:"lifecycleState,omitempty"`

	// Content representation. Exactly one of Content / Languages / Channels
	// is populated, per Shape().
	Content   string                        `json:"content,omitempty"`
	Languages map[Language]*LanguageVariant `json:"languages,omitempty"`
	Channels  map[string]*ChannelVariant    `json:"channels,omitempty"`

	// Message-specific fields. The validity window is shared across channels.
	MessageChannel string     `json:"messageChannel,omitempty"`
	ValidFrom      *time.Time `json:"validFrom,omitempty"`
	ValidTo        *time.Time `json:"validTo,omitempty"`

	// Parameter-specific fields.
	ParameterTemplateID string         `json:"parameterTemplateId,omitempty"`
	ParameterMeta       *ParameterMeta `json:"parameterMeta,omitempty"`

	PublishedDate *time.Time `json:"publishedDate,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	ChangeReason  string     `json:"changeReason,omitempty"`

	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	PublishedBy string    `json:"publishedBy,omitempty"`
}

// Shape reports the item's content representation.
func (it *ContentItem) Shape() Shape {
	switch {
	case it.Channels != nil:
		return ShapeChannel
	case it.Languages != nil:
		return ShapeLanguage
	default:
		return ShapeSimple
	}
}

// Variant resolves the language variant addressed by channel and language.
// Channel is empty for language-shape items. Returns false when the item is
// simple-shape or the addressed variant does not exist.
func (it *ContentItem) Variant(channel string, lang Language) (*LanguageVariant, bool) {
	switch it.Shape() {
	case ShapeChannel:
		ch, ok := it.Channels[channel]
		if !ok || ch == nil {
			return nil, false
		}
		v, ok := ch.Languages[lang]
		return v, ok && v != nil
	case ShapeLanguage:
		v, ok := it.Languages[lang]
		return v, ok && v != nil
	default:
		return nil, false
	}
}

// LanguageCodes returns the item's language codes in preferred order
// (fi, sv, en, then any others sorted). Empty for simple-shape items.
func (it *ContentItem) LanguageCodes() []Language {
	present := map[Language]bool{}
	switch it.Shape() {
	case ShapeLanguage:
		for lang := range it.Languages {
			present[lang] = true
		}
	case ShapeChannel:
		for _, ch := range it.Channels {
			if ch == nil {
				continue
			}
			for lang := range ch.Languages {
				present[lang] = true
			}
		}
	default:
		return nil
	}

	var out []Language
	for _, lang := range PreferredLanguages {
		if present[lang] {
			out = append(out, lang)
			delete(present, lang)
		}
	}
	var rest []Language
	for lang := range present {
		rest = append(rest, lang)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	return append(out, rest...)
}

// ChannelNames returns the item's channel names sorted. Empty unless the
// item is channel-shape.
func (it *ContentItem) ChannelNames() []string {
	if it.Shape() != ShapeChannel {
		return nil
	}
	names := make([]string, 0, len(it.Channels))
	for name := range it.Channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateWindow checks the ValidFrom <= ValidTo invariant. Both fields
// absent or only one present is fine.
func (it *ContentItem) ValidateWindow() error {
	if it.ValidFrom != nil && it.ValidTo != nil && it.ValidFrom.After(*it.ValidTo) {
		return fmt.Errorf("validity window: validFrom %s is after validTo %s",
			it.ValidFrom.Format(time.RFC3339), it.ValidTo.Format(time.RFC3339))
	}
	return nil
}

// Clone returns a deep copy of the item. Engine transitions operate on
// clones so the caller's value is never mutated in place.
func (it *ContentItem) Clone() *ContentItem {
	out := *it

	if it.Languages != nil {
		out.Languages = make(map[Language]*LanguageVariant, len(it.Languages))
		for lang, v := range it.Languages {
			out.Languages[lang] = cloneVariant(v)
		}
	}
	if it.Channels != nil {
		out.Channels = make(map[string]*ChannelVariant, len(it.Channels))
		for name, ch := range it.Channels {
			if ch == nil {
				out.Channels[name] = nil
				continue
			}
			cc := &ChannelVariant{Languages: make(map[Language]*LanguageVariant, len(ch.Languages))}
			for lang, v := range ch.Languages {
				cc.Languages[lang] = cloneVariant(v)
			}
			out.Channels[name] = cc
		}
	}

	out.ValidFrom = cloneTime(it.ValidFrom)
	out.ValidTo = cloneTime(it.ValidTo)
	out.PublishedDate = cloneTime(it.PublishedDate)
	out.ScheduledDate = cloneTime(it.ScheduledDate)
	if it.ParameterMeta != nil {
		meta := *it.ParameterMeta
		meta.Min = cloneFloat(it.ParameterMeta.Min)
		meta.Max = cloneFloat(it.ParameterMeta.Max)
		meta.Step = cloneFloat(it.ParameterMeta.Step)
		out.ParameterMeta = &meta
	}
	return &out
}

// Copy duplicates the item for use as a template: fresh identity, "-copy-"
// key suffix, "(kopio)" title suffix, every variant reset to draft and
// unarchived. Publication stamps are cleared.
func (it *ContentItem) Copy(newID string, now time.Time, actor string) *ContentItem {
	out := it.Clone()
	out.ID = newID
	suffix := newID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	out.Key = it.Key + "-copy-" + suffix
	out.Title = it.Title + " (kopio)"
	out.Status = string(StateDraft)
	out.LifecycleState = StateDraft
	out.Archived = false
	out.PublishedDate = nil
	out.ScheduledDate = nil
	out.PublishedBy = ""
	out.ChangeReason = ""
	out.CreatedAt = now
	out.UpdatedAt = now
	out.CreatedBy = actor
	out.UpdatedBy = actor

	reset := func(v *LanguageVariant) {
		if v == nil {
			return
		}
		v.LifecycleState = StateDraft
		v.PublishedDate = nil
		v.ScheduledDate = nil
		v.ChangeReason = ""
	}
	for _, v := range out.Languages {
		reset(v)
	}
	for _, ch := range out.Channels {
		if ch == nil {
			continue
		}
		for _, v := range ch.Languages {
			reset(v)
		}
	}
	return out
}

func cloneVariant(v *LanguageVariant) *LanguageVariant {
	if v == nil {
		return nil
	}
	out := *v
	out.PublishedDate = cloneTime(v.PublishedDate)
	out.ScheduledDate = cloneTime(v.ScheduledDate)
	return &out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := *t
	return &out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	out := *f
	return &out
}
