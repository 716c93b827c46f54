// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the per-category whitelists of placeholder
// variables. A catalog is the only source of valid {{key}} tokens for a
// content item; resolution is a single lookup by category with a total
// fallback to the decision template catalog.
package catalog

import "helpdoc/internal/models"

// VariableDef describes one allowed placeholder variable. Immutable:
// definitions are created at catalog-definition time and never mutated.
type VariableDef struct {
	// Key is the token used inside {{key}}. Unique within a catalog,
	// matching [a-zA-Z0-9_.-]+.
	Key string
	// Label is the human-friendly name shown in the variable picker.
	Label string
	// Description is optional help text.
	Description string
	// ExampleValue is substituted when rendering previews.
	ExampleValue string
}

// Catalog is an ordered sequence of variable definitions. Order is the
// display order of the picker and of prefix autocomplete results.
type Catalog []VariableDef

// Lookup returns the definition for an exact key.
func (c Catalog) Lookup(key string) (VariableDef, bool) {
	for _, v := range c {
		if v.Key == key {
			return v, true
		}
	}
	return VariableDef{}, false
}

// KeySet returns the catalog's keys as a set.
func (c Catalog) KeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(c))
	for _, v := range c {
		set[v.Key] = struct{}{}
	}
	return set
}

// ForCategory resolves the variable catalog for a content category.
// Selection is total: unrecognized categories fall back to the decision
// template catalog.
func ForCategory(cat models.Category) Catalog {
	if c, ok := byCategory[cat]; ok {
		return c
	}
	return DecisionTemplateVariables
}

// ForItem resolves the catalog for a content item via its category.
func ForItem(item *models.ContentItem) Catalog {
	if item == nil {
		return DecisionTemplateVariables
	}
	return ForCategory(item.Category)
}

// Default returns the fallback catalog.
func Default() Catalog {
	return DecisionTemplateVariables
}

var byCategory = map[models.Category]Catalog{
	// Decision template categories.
	models.CategoryAnsioturva:        DecisionTemplateVariables,
	models.CategoryLiikkuvuusavustus: DecisionTemplateVariables,
	models.CategoryMuutosturva:       DecisionTemplateVariables,
	models.CategoryKorjaus:           DecisionTemplateVariables,
	models.CategoryDecisionTemplates: DecisionTemplateVariables,

	// Message template categories.
	models.CategoryMessagePaymentNotification:   MessageNotificationVariables,
	models.CategoryMessagePaymentReminder1:      MessageNotificationVariables,
	models.CategoryMessagePaymentReminder2:      MessageNotificationVariables,
	models.CategoryMessageAdditionalInfoRequest: MessageNotificationVariables,
	models.CategoryMessageCorrectionCase:        MessageNotificationVariables,
	models.CategoryMessageAppealCase:            MessageNotificationVariables,
	models.CategoryMessageOtherAdvanceNotice:    MessageNotificationVariables,
	models.CategoryMessageOtherReceivableGross:  MessageNotificationVariables,
	models.CategoryMessageNotification:          MessageNotificationVariables,

	// Older message categories.
	models.CategoryMessageWelcome:   MessageWelcomeVariables,
	models.CategoryMessageRejection: MessageRejectionVariables,
	models.CategoryMessageApproval:  MessageApprovalVariables,
}
