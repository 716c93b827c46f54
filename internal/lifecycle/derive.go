// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

import (
	"time"

	"helpdoc/internal/models"
)

// EffectiveState resolves the state of one variant of an item. The variant's
// own lifecycle state always dominates; the item-level state and the legacy
// status string are consulted only when the variant carries no valid state.
// Channel is empty for language-shape and simple-shape items.
func EffectiveState(item *models.ContentItem, channel string, lang models.Language) models.LifecycleState {
	if v, ok := item.Variant(channel, lang); ok && v.LifecycleState.Valid() {
		return v.LifecycleState
	}
	return legacyState(item)
}

// legacyState reads the item-level state with the status string as a second
// fallback. Stored items predating per-variant states carry only these.
func legacyState(item *models.ContentItem) models.LifecycleState {
	if item.LifecycleState.Valid() {
		return item.LifecycleState
	}
	if s := models.LifecycleState(item.Status); s.Valid() {
		return s
	}
	return models.StateDraft
}

// PreferredLanguage picks the language whose variant represents the item in
// aggregate views: Finnish first, then Swedish, then English, then whatever
// the item has.
func PreferredLanguage(item *models.ContentItem) (models.Language, bool) {
	codes := item.LanguageCodes()
	if len(codes) == 0 {
		return "", false
	}
	return codes[0], true
}

// AggregateState derives the item-level state on demand. It is never stored
// for items with variants. The item counts as published only when every
// variant of every channel is published. Mixed items report the
// preferred-language variant's state; when that one is already published,
// the first still-unpublished variant in preference order represents the
// item, so the aggregate never claims published early.
func AggregateState(item *models.ContentItem) models.LifecycleState {
	if item.Shape() == models.ShapeSimple {
		return legacyState(item)
	}
	if allVariantsIn(item, models.StatePublished) {
		return models.StatePublished
	}

	channel := ""
	if item.Shape() == models.ShapeChannel {
		if names := item.ChannelNames(); len(names) > 0 {
			channel = names[0]
		}
	}
	lang, ok := PreferredLanguage(item)
	if !ok {
		return legacyState(item)
	}
	if st := EffectiveState(item, channel, lang); st != models.StatePublished {
		return st
	}
	for _, l := range item.LanguageCodes() {
		if st := EffectiveState(item, channel, l); st != models.StatePublished {
			return st
		}
	}
	// Preferred channel fully published; report the first non-published
	// variant in channel order, languages in preference order.
	for _, ch := range item.ChannelNames() {
		for _, l := range item.LanguageCodes() {
			if _, ok := item.Variant(ch, l); !ok {
				continue
			}
			if s := EffectiveState(item, ch, l); s != models.StatePublished {
				return s
			}
		}
	}
	return models.StateDraft
}

// allVariantsIn reports whether every variant of every channel is in the
// given state. Simple-shape items have no variants and report false.
func allVariantsIn(item *models.ContentItem, want models.LifecycleState) bool {
	if item.Shape() == models.ShapeSimple {
		return false
	}
	all := true
	forEachVariant(item, func(channel string, lang models.Language, v *models.LanguageVariant) {
		if EffectiveState(item, channel, lang) != want {
			all = false
		}
	})
	return all
}

// PublishedAt returns the publication time of the addressed variant, falling
// back to the item-level stamp.
func PublishedAt(item *models.ContentItem, channel string, lang models.Language) *time.Time {
	if v, ok := item.Variant(channel, lang); ok && v.PublishedDate != nil {
		return v.PublishedDate
	}
	return item.PublishedDate
}

// forEachVariant visits every language variant of the item, in no defined
// order. Simple-shape items have none.
func forEachVariant(item *models.ContentItem, fn func(channel string, lang models.Language, v *models.LanguageVariant)) {
	switch item.Shape() {
	case models.ShapeLanguage:
		for lang, v := range item.Languages {
			if v != nil {
				fn("", lang, v)
			}
		}
	case models.ShapeChannel:
		for name, ch := range item.Channels {
			if ch == nil {
				continue
			}
			for lang, v := range ch.Languages {
				if v != nil {
					fn(name, lang, v)
				}
			}
		}
	}
}
