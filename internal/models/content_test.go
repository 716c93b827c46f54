// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"
	"time"
)

// TestShape verifies content shape derivation from the populated
// representation field.
func TestShape(t *testing.T) {
	tests := []struct {
		name string
		item ContentItem
		want Shape
	}{
		{
			name: "simple parameter",
			item: ContentItem{ContentType: ContentTypeParameter, Content: "65"},
			want: ShapeSimple,
		},
		{
			name: "empty content is still simple",
			item: ContentItem{ContentType: ContentTypeStructure},
			want: ShapeSimple,
		},
		{
			name: "language variants",
			item: ContentItem{Languages: map[Language]*LanguageVariant{
				LanguageFI: {Content: "Tervetuloa"},
			}},
			want: ShapeLanguage,
		},
		{
			name: "channel variants",
			item: ContentItem{Channels: map[string]*ChannelVariant{
				"Sähköposti": {Languages: map[Language]*LanguageVariant{
					LanguageFI: {Content: "Maksuilmoitus"},
				}},
			}},
			want: ShapeChannel,
		},
		{
			name: "channels win over languages",
			item: ContentItem{
				Languages: map[Language]*LanguageVariant{LanguageFI: {}},
				Channels:  map[string]*ChannelVariant{"Sähköposti": {}},
			},
			want: ShapeChannel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Shape(); got != tt.want {
				t.Errorf("Shape() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestVariant verifies variant resolution for every shape.
func TestVariant(t *testing.T) {
	langItem := ContentItem{Languages: map[Language]*LanguageVariant{
		LanguageFI: {Content: "suomeksi"},
		LanguageSV: {Content: "på svenska"},
	}}
	chanItem := ContentItem{Channels: map[string]*ChannelVariant{
		"Tekstiviesti": {Languages: map[Language]*LanguageVariant{
			LanguageFI: {Content: "sms"},
		}},
	}}
	simpleItem := ContentItem{Content: "42"}

	if v, ok := langItem.Variant("", LanguageFI); !ok || v.Content != "suomeksi" {
		t.Errorf("language variant fi: got %v, %v", v, ok)
	}
	if _, ok := langItem.Variant("", LanguageEN); ok {
		t.Error("missing language should not resolve")
	}
	if v, ok := chanItem.Variant("Tekstiviesti", LanguageFI); !ok || v.Content != "sms" {
		t.Errorf("channel variant: got %v, %v", v, ok)
	}
	if _, ok := chanItem.Variant("Sähköposti", LanguageFI); ok {
		t.Error("missing channel should not resolve")
	}
	if _, ok := simpleItem.Variant("", LanguageFI); ok {
		t.Error("simple item has no variants")
	}
}

// TestLanguageCodes verifies preferred ordering fi > sv > en > rest.
func TestLanguageCodes(t *testing.T) {
	item := ContentItem{Languages: map[Language]*LanguageVariant{
		LanguageEN: {},
		LanguageFI: {},
		LanguageSV: {},
	}}
	got := item.LanguageCodes()
	want := []Language{LanguageFI, LanguageSV, LanguageEN}
	if len(got) != len(want) {
		t.Fatalf("LanguageCodes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LanguageCodes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if codes := (&ContentItem{Content: "x"}).LanguageCodes(); codes != nil {
		t.Errorf("simple item LanguageCodes() = %v, want nil", codes)
	}
}

// TestValidateWindow verifies the validFrom <= validTo invariant.
func TestValidateWindow(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	ok := ContentItem{ValidFrom: &from, ValidTo: &to}
	if err := ok.ValidateWindow(); err != nil {
		t.Errorf("valid window rejected: %v", err)
	}

	flipped := ContentItem{ValidFrom: &to, ValidTo: &from}
	if err := flipped.ValidateWindow(); err == nil {
		t.Error("inverted window accepted")
	}

	open := ContentItem{ValidFrom: &from}
	if err := open.ValidateWindow(); err != nil {
		t.Errorf("open-ended window rejected: %v", err)
	}
}

// TestCloneIsDeep verifies that mutating a clone leaves the original intact.
func TestCloneIsDeep(t *testing.T) {
	pub := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	orig := &ContentItem{
		ID:  "1",
		Key: "msg-welcome-001",
		Languages: map[Language]*LanguageVariant{
			LanguageFI: {Content: "Tervetuloa", LifecycleState: StatePublished, PublishedDate: &pub},
		},
		Channels: map[string]*ChannelVariant{
			"Sähköposti": {Languages: map[Language]*LanguageVariant{
				LanguageSV: {Content: "Välkommen", LifecycleState: StateDraft},
			}},
		},
		ParameterMeta: &ParameterMeta{Type: "integer", Min: f64(0)},
		PublishedDate: &pub,
	}

	clone := orig.Clone()
	clone.Languages[LanguageFI].Content = "muutettu"
	clone.Languages[LanguageFI].LifecycleState = StateDraft
	*clone.Languages[LanguageFI].PublishedDate = pub.AddDate(0, 0, 7)
	clone.Channels["Sähköposti"].Languages[LanguageSV].Content = "ändrad"
	*clone.ParameterMeta.Min = 99
	*clone.PublishedDate = pub.AddDate(1, 0, 0)

	fi := orig.Languages[LanguageFI]
	if fi.Content != "Tervetuloa" || fi.LifecycleState != StatePublished {
		t.Error("clone mutation leaked into original language variant")
	}
	if !fi.PublishedDate.Equal(pub) {
		t.Error("clone mutation leaked into variant published date")
	}
	if orig.Channels["Sähköposti"].Languages[LanguageSV].Content != "Välkommen" {
		t.Error("clone mutation leaked into original channel variant")
	}
	if *orig.ParameterMeta.Min != 0 {
		t.Error("clone mutation leaked into parameter meta")
	}
	if !orig.PublishedDate.Equal(pub) {
		t.Error("clone mutation leaked into item published date")
	}
}

// TestCopyResetsLifecycle verifies that a copied item starts as a fresh
// draft with every variant reset.
func TestCopyResetsLifecycle(t *testing.T) {
	pub := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	orig := &ContentItem{
		ID:            "1",
		Title:         "Tervetuloviesti",
		Key:           "msg-welcome-001",
		Status:        "published",
		Archived:      true,
		PublishedDate: &pub,
		PublishedBy:   "Matti Meikäläinen",
		Languages: map[Language]*LanguageVariant{
			LanguageFI: {Content: "Tervetuloa", LifecycleState: StatePublished, PublishedDate: &pub},
			LanguageEN: {Content: "Welcome", LifecycleState: StatePendingReview},
		},
	}

	got := orig.Copy("a1b2c3d4e5f6", now, "Liisa Esimerkki")

	if got.ID == orig.ID {
		t.Error("copy kept the original ID")
	}
	if got.Key != "msg-welcome-001-copy-a1b2c3d4" {
		t.Errorf("copy key = %q", got.Key)
	}
	if got.Title != "Tervetuloviesti (kopio)" {
		t.Errorf("copy title = %q", got.Title)
	}
	if got.Archived {
		t.Error("copy should not be archived")
	}
	if got.PublishedDate != nil || got.PublishedBy != "" {
		t.Error("copy kept publication stamps")
	}
	for lang, v := range got.Languages {
		if v.LifecycleState != StateDraft {
			t.Errorf("language %q state = %q, want draft", lang, v.LifecycleState)
		}
		if v.PublishedDate != nil {
			t.Errorf("language %q kept published date", lang)
		}
	}
	if got.Languages[LanguageFI].Content != "Tervetuloa" {
		t.Error("copy lost variant content")
	}
	// Original untouched.
	if orig.Languages[LanguageFI].LifecycleState != StatePublished {
		t.Error("copy mutated the original")
	}
}

// TestLifecycleStateValid verifies the declared state set.
func TestLifecycleStateValid(t *testing.T) {
	for _, s := range []LifecycleState{StateDraft, StatePendingReview, StateApproved, StateScheduled, StatePublished} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []LifecycleState{"", "archived", "PUBLISHED"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

// TestCategoryIsMessage verifies the message group membership check.
func TestCategoryIsMessage(t *testing.T) {
	if !CategoryMessagePaymentNotification.IsMessage() {
		t.Error("payment notification is a message category")
	}
	if !CategoryMessageWelcome.IsMessage() {
		t.Error("welcome is a message category")
	}
	if CategoryAnsioturva.IsMessage() {
		t.Error("ansioturva is not a message category")
	}
	if CategoryParameterValues.IsMessage() {
		t.Error("parameter values is not a message category")
	}
}

// TestParameterTemplateDefaults verifies template meta copying and default
// content derivation.
func TestParameterTemplateDefaults(t *testing.T) {
	age := ParameterTemplates["age-parameter-template"]
	meta := age.Meta()
	if meta.Type != "integer" || *meta.Min != 0 || *meta.Max != 120 || meta.Unit != "vuotta" {
		t.Errorf("age meta = %+v", meta)
	}
	if got := age.DefaultContent(); got != "0" {
		t.Errorf("age default content = %q, want 0", got)
	}

	pct := ParameterTemplates["percentage-parameter-template"]
	if *pct.Meta().Step != 0.1 {
		t.Errorf("percentage step = %v", *pct.Meta().Step)
	}

	text := ParameterTemplates["text-parameter-template"]
	if got := text.DefaultContent(); got != "" {
		t.Errorf("text default content = %q, want empty", got)
	}

	// Meta is a copy, not an alias into the template table.
	*meta.Min = 18
	if *ParameterTemplates["age-parameter-template"].Min != 0 {
		t.Error("Meta() aliases the template's Min")
	}
}
