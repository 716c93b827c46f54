// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups content items by their nature. The category decides which
// variable catalog applies to an item and how the editor treats it.
type Category string

const (
	CategoryParameterValues Category = "parameter_values"
	CategoryTextContent     Category = "text_content"

	// Message template categories.
	CategoryMessagePaymentNotification   Category = "message_payment_notification"
	CategoryMessagePaymentReminder1      Category = "message_payment_reminder_1"
	CategoryMessagePaymentReminder2      Category = "message_payment_reminder_2"
	CategoryMessageAdditionalInfoRequest Category = "message_additional_info_request"
	CategoryMessageCorrectionCase        Category = "message_correction_case"
	CategoryMessageAppealCase            Category = "message_appeal_case"
	CategoryMessageOtherAdvanceNotice    Category = "message_other_advance_notice"
	CategoryMessageOtherReceivableGross  Category = "message_other_receivable_gross"

	// Older message categories, retained for stored-data compatibility.
	CategoryMessageWelcome      Category = "message_welcome"
	CategoryMessageRejection    Category = "message_rejection"
	CategoryMessageApproval     Category = "message_approval"
	CategoryMessageNotification Category = "message_notification"
	CategoryMessageTemplates    Category = "message_templates"

	CategoryDecisionTemplates       Category = "decision_templates"
	CategoryReviewTexts             Category = "review_texts"
	CategoryGuideTexts              Category = "guide_texts"
	CategoryDecisionAdditionalTexts Category = "decision_additional_texts"

	// Decision template subcategories by benefit type.
	CategoryAnsioturva        Category = "ansioturva"
	CategoryLiikkuvuusavustus Category = "liikkuvuusavustus"
	CategoryMuutosturva       Category = "muutosturva"
	CategoryKorjaus           Category = "korjaus"
)

// MessageCategories lists every category that belongs to the message
// template group, newest naming first.
var MessageCategories = []Category{
	CategoryMessagePaymentNotification,
	CategoryMessagePaymentReminder1,
	CategoryMessagePaymentReminder2,
	CategoryMessageAdditionalInfoRequest,
	CategoryMessageCorrectionCase,
	CategoryMessageAppealCase,
	CategoryMessageOtherAdvanceNotice,
	CategoryMessageOtherReceivableGross,
	CategoryMessageWelcome,
	CategoryMessageRejection,
	CategoryMessageApproval,
	CategoryMessageNotification,
	CategoryMessageTemplates,
}

// IsMessage reports whether the category belongs to the message template group.
func (c Category) IsMessage() bool {
	for _, m := range MessageCategories {
		if c == m {
			return true
		}
	}
	return false
}
