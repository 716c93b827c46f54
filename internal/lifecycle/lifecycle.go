// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package lifecycle implements the publication state machine of content
// items. Each language variant moves independently through
// draft -> pending_review -> scheduled -> published; the item as a whole is
// published only when every variant is.
//
// Transitions never mutate their input: every operation deep-copies the
// item, applies the change to the copy, and returns it together with the
// audit entries the change produced. Persisting both is the caller's job.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"helpdoc/internal/models"
)

// RollbackDays is the window, counted from a version's recording time,
// within which it can still be restored.
const RollbackDays = 30

// Engine executes lifecycle transitions. The clock is injectable so tests
// can pin time; a nil clock means time.Now.
type Engine struct {
	now func() time.Time
}

func New(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// Target addresses one variant of an item. Channel is empty for
// language-shape items; both fields are empty for simple-shape items.
type Target struct {
	Channel  string
	Language models.Language
}

// Outcome is the result of a transition. Item is the updated copy and
// Entries the audit records to append. When a transition requires a change
// reason and none was given, NeedsReason is set and Item is the input,
// untouched: the caller prompts for a reason and retries.
type Outcome struct {
	Item        *models.ContentItem
	Entries     []models.AuditEntry
	NeedsReason bool
}

// RequestReview moves a variant from draft to pending review. A change
// reason is required; without one the outcome only asks for it.
func (e *Engine) RequestReview(item *models.ContentItem, t Target, reason, actor string) (Outcome, error) {
	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}
	switch s.state() {
	case models.StatePublished:
		return Outcome{}, &ValidationError{Message: "Julkaistu sisältö täytyy ensin palauttaa luonnokseksi"}
	case models.StatePendingReview:
		return Outcome{}, &ValidationError{Message: "Sisältö on jo tarkistuksessa"}
	}
	if reason == "" {
		return Outcome{Item: item, NeedsReason: true}, nil
	}

	from := s.state()
	s.setState(models.StatePendingReview)
	s.setReason(reason)
	now := e.stamp(clone, actor)

	entry := e.newEntry(clone, t, actor, now)
	entry.Type = models.AuditStateChange
	entry.FromState = from
	entry.ToState = models.StatePendingReview
	entry.ChangeReason = reason
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

// Publish moves a variant to published and stamps the publication time. A
// change reason is required; without one the outcome only asks for it. When
// the transition makes every variant published, the item-level publication
// stamp is set as well.
func (e *Engine) Publish(item *models.ContentItem, t Target, reason, actor string) (Outcome, error) {
	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}
	if s.state() == models.StatePublished {
		return Outcome{}, &ValidationError{Message: "Sisältö on jo julkaistu"}
	}
	if reason == "" {
		return Outcome{Item: item, NeedsReason: true}, nil
	}

	from := s.state()
	now := e.stamp(clone, actor)
	s.setState(models.StatePublished)
	s.setPublishedDate(&now)
	s.setScheduledDate(nil)
	s.setReason(reason)

	if AggregateState(clone) == models.StatePublished {
		clone.PublishedDate = &now
		clone.PublishedBy = actor
	}

	state := e.newEntry(clone, t, actor, now)
	state.Type = models.AuditStateChange
	state.FromState = from
	state.ToState = models.StatePublished
	state.ChangeReason = reason

	content := e.newEntry(clone, t, actor, now)
	content.Type = models.AuditContentChange
	content.Content = s.content()
	content.LifecycleState = models.StatePublished
	content.Description = "Julkaistu"
	content.ChangeReason = reason

	return Outcome{Item: clone, Entries: []models.AuditEntry{state, content}}, nil
}

// Schedule sets a variant to be published at a future time. The time must
// be strictly in the future.
func (e *Engine) Schedule(item *models.ContentItem, t Target, at time.Time, actor string) (Outcome, error) {
	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}
	if s.state() == models.StatePublished {
		return Outcome{}, &ValidationError{Message: "Julkaistua sisältöä ei voi ajastaa"}
	}
	now := e.now()
	if !at.After(now) {
		return Outcome{}, &ValidationError{Message: "Ajastuksen täytyy olla tulevaisuudessa"}
	}

	from := s.state()
	s.setState(models.StateScheduled)
	s.setScheduledDate(&at)
	e.stampAt(clone, actor, now)

	entry := e.newEntry(clone, t, actor, now)
	entry.Type = models.AuditStateChange
	entry.FromState = from
	entry.ToState = models.StateScheduled
	entry.Description = "Ajastettu julkaistavaksi " + at.Format("02.01.2006 15:04")
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

// ConvertToDraft returns a variant to draft, clearing its publication and
// schedule stamps. When every variant of the item is a draft afterwards,
// the item-level publication stamp is cleared too.
func (e *Engine) ConvertToDraft(item *models.ContentItem, t Target, actor string) (Outcome, error) {
	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}
	if s.state() == models.StateDraft {
		return Outcome{}, &ValidationError{Message: "Sisältö on jo luonnos"}
	}

	from := s.state()
	s.setState(models.StateDraft)
	s.setPublishedDate(nil)
	s.setScheduledDate(nil)
	s.setReason("")
	now := e.stamp(clone, actor)

	if clone.Shape() == models.ShapeSimple || allVariantsIn(clone, models.StateDraft) {
		clone.PublishedDate = nil
		clone.PublishedBy = ""
	}

	entry := e.newEntry(clone, t, actor, now)
	entry.Type = models.AuditStateChange
	entry.FromState = from
	entry.ToState = models.StateDraft
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

// CreateNewVersion forks a published variant into a new working draft with
// the published content as its starting point. Only published variants can
// be forked; drafts are already editable.
func (e *Engine) CreateNewVersion(item *models.ContentItem, t Target, actor string) (Outcome, error) {
	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}
	if s.state() != models.StatePublished {
		return Outcome{}, &ValidationError{Message: "Uuden version voi luoda vain julkaistusta sisällöstä"}
	}

	s.setState(models.StateDraft)
	s.setPublishedDate(nil)
	s.setScheduledDate(nil)
	s.setReason("")
	now := e.stamp(clone, actor)

	entry := e.newEntry(clone, t, actor, now)
	entry.Type = models.AuditStateChange
	entry.FromState = models.StatePublished
	entry.ToState = models.StateDraft
	entry.Description = "Uusi versio julkaistusta sisällöstä"
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

// Rollback restores a previously recorded content version and republishes
// it. The version must be a content change no older than RollbackDays.
func (e *Engine) Rollback(item *models.ContentItem, t Target, version models.AuditEntry, actor string) (Outcome, error) {
	if version.Type != models.AuditContentChange || version.Version == "" {
		return Outcome{}, &ValidationError{Message: "Palautettava versio ei kelpaa"}
	}
	now := e.now()
	if now.Sub(version.Date) > RollbackDays*24*time.Hour {
		return Outcome{}, &ValidationError{Message: "Rollback ei ole enää sallittu. Julkaisu on yli 30 päivää vanha."}
	}

	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}

	from := s.state()
	reason := fmt.Sprintf("Palautettu versio %s", version.Version)
	s.setContent(version.Content)
	s.setState(models.StatePublished)
	s.setPublishedDate(&now)
	s.setScheduledDate(nil)
	s.setReason(reason)
	e.stampAt(clone, actor, now)

	if AggregateState(clone) == models.StatePublished {
		clone.PublishedDate = &now
		clone.PublishedBy = actor
	}

	content := e.newEntry(clone, t, actor, now)
	content.Type = models.AuditContentChange
	content.Content = version.Content
	content.LifecycleState = models.StatePublished
	content.Description = reason
	content.ChangeReason = reason

	state := e.newEntry(clone, t, actor, now)
	state.Type = models.AuditStateChange
	state.FromState = from
	state.ToState = models.StatePublished
	state.ChangeReason = reason

	return Outcome{Item: clone, Entries: []models.AuditEntry{content, state}}, nil
}

// EditContent replaces a variant's content and records the new snapshot.
// Published content is immutable; it must be converted to a draft or forked
// into a new version first.
func (e *Engine) EditContent(item *models.ContentItem, t Target, newContent, actor string) (Outcome, error) {
	if err := e.CanEdit(item, t); err != nil {
		return Outcome{}, err
	}
	clone := item.Clone()
	s, err := resolveSlot(clone, t)
	if err != nil {
		return Outcome{}, err
	}

	s.setContent(newContent)
	now := e.stamp(clone, actor)

	entry := e.newEntry(clone, t, actor, now)
	entry.Type = models.AuditContentChange
	entry.Content = newContent
	entry.LifecycleState = s.state()
	entry.Description = "Sisältöä muokattu"
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

// CanEdit reports whether the addressed variant accepts content edits.
func (e *Engine) CanEdit(item *models.ContentItem, t Target) error {
	s, err := resolveSlot(item, t)
	if err != nil {
		return err
	}
	if s.state() == models.StatePublished {
		return &ValidationError{Message: "Julkaistua sisältöä ei voi muokata. Palauta sisältö ensin luonnokseksi."}
	}
	return nil
}

// Archive hides an item from default listings. Lifecycle states are not
// touched; archiving is orthogonal to publication.
func (e *Engine) Archive(item *models.ContentItem, actor string) (Outcome, error) {
	if item.Archived {
		return Outcome{}, &ValidationError{Message: "Sisältö on jo arkistoitu"}
	}
	clone := item.Clone()
	clone.Archived = true
	now := e.stamp(clone, actor)

	entry := e.newEntry(clone, Target{}, actor, now)
	entry.Type = models.AuditStateChange
	entry.Description = "Arkistoitu"
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

// Unarchive restores an archived item to the default listings.
func (e *Engine) Unarchive(item *models.ContentItem, actor string) (Outcome, error) {
	if !item.Archived {
		return Outcome{}, &ValidationError{Message: "Sisältö ei ole arkistoitu"}
	}
	clone := item.Clone()
	clone.Archived = false
	now := e.stamp(clone, actor)

	entry := e.newEntry(clone, Target{}, actor, now)
	entry.Type = models.AuditStateChange
	entry.Description = "Palautettu arkistosta"
	return Outcome{Item: clone, Entries: []models.AuditEntry{entry}}, nil
}

func (e *Engine) stamp(item *models.ContentItem, actor string) time.Time {
	now := e.now()
	e.stampAt(item, actor, now)
	return now
}

func (e *Engine) stampAt(item *models.ContentItem, actor string, now time.Time) {
	item.UpdatedAt = now
	item.UpdatedBy = actor
}

func (e *Engine) newEntry(item *models.ContentItem, t Target, actor string, now time.Time) models.AuditEntry {
	return models.AuditEntry{
		ID:       uuid.NewString(),
		ItemID:   item.ID,
		Channel:  t.Channel,
		Language: t.Language,
		Author:   actor,
		Date:     now,
	}
}

// slot is a uniform view over the stateful fields an operation touches:
// the addressed variant, or the item itself for simple-shape items.
type slot struct {
	item    *models.ContentItem
	variant *models.LanguageVariant
}

func resolveSlot(item *models.ContentItem, t Target) (slot, error) {
	if item.Shape() == models.ShapeSimple {
		if t.Channel != "" || t.Language != "" {
			return slot{}, &NotFoundError{Message: fmt.Sprintf("sisällöllä %s ei ole kieliversioita", item.Key)}
		}
		return slot{item: item}, nil
	}
	v, ok := item.Variant(t.Channel, t.Language)
	if !ok {
		return slot{}, &NotFoundError{Message: fmt.Sprintf("kieliversiota %s/%s ei löydy sisällöstä %s", t.Channel, t.Language, item.Key)}
	}
	return slot{item: item, variant: v}, nil
}

func (s slot) state() models.LifecycleState {
	if s.variant != nil {
		if s.variant.LifecycleState.Valid() {
			return s.variant.LifecycleState
		}
		return legacyState(s.item)
	}
	return legacyState(s.item)
}

func (s slot) setState(st models.LifecycleState) {
	if s.variant != nil {
		s.variant.LifecycleState = st
		return
	}
	s.item.LifecycleState = st
	s.item.Status = string(st)
}

func (s slot) content() string {
	if s.variant != nil {
		return s.variant.Content
	}
	return s.item.Content
}

func (s slot) setContent(c string) {
	if s.variant != nil {
		s.variant.Content = c
		return
	}
	s.item.Content = c
}

func (s slot) setPublishedDate(t *time.Time) {
	if s.variant != nil {
		s.variant.PublishedDate = t
		return
	}
	s.item.PublishedDate = t
}

func (s slot) setScheduledDate(t *time.Time) {
	if s.variant != nil {
		s.variant.ScheduledDate = t
		return
	}
	s.item.ScheduledDate = t
}

func (s slot) setReason(r string) {
	if s.variant != nil {
		s.variant.ChangeReason = r
		return
	}
	s.item.ChangeReason = r
}
