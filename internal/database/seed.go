package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"helpdoc/internal/models"
)

// Seed populates the database with initial development content: one item of
// each shape, with realistic Finnish placeholder text. Runs only against an
// empty content_items table.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM content_items").Scan(&count); err != nil {
		return fmt.Errorf("seed check content: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	now := time.Now()
	for _, item := range seedItems(now) {
		if err := insertItem(db, item); err != nil {
			return fmt.Errorf("seed insert %s: %w", item.Key, err)
		}
	}

	slog.Info("database seeded with development content", "items", len(seedItems(now)))
	return nil
}

func seedItems(now time.Time) []*models.ContentItem {
	published := now.Add(-14 * 24 * time.Hour)

	welcome := &models.ContentItem{
		ID:          uuid.NewString(),
		Key:         "text-tervetuloviesti",
		Title:       "Tervetuloviesti",
		Description: "Uuden asiakkaan tervetuloviesti",
		ContentType: models.ContentTypeText,
		Category:    models.CategoryMessageWelcome,
		Languages: map[models.Language]*models.LanguageVariant{
			models.LanguageFI: {
				Content:        "Hei {{customerName}},\n\ntervetuloa palveluun {{serviceName}}. {{nextSteps}}",
				LifecycleState: models.StatePublished,
				PublishedDate:  &published,
			},
			models.LanguageSV: {
				Content:        "Hej {{customerName}},\n\nvälkommen till tjänsten {{serviceName}}. {{nextSteps}}",
				LifecycleState: models.StateDraft,
			},
			models.LanguageEN: {
				Content:        "Hello {{customerName}},\n\nwelcome to {{serviceName}}. {{nextSteps}}",
				LifecycleState: models.StateDraft,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: "seed",
		UpdatedBy: "seed",
	}

	payment := &models.ContentItem{
		ID:          uuid.NewString(),
		Key:         "text-maksuilmoitus",
		Title:       "Maksuilmoitus",
		Description: "Ilmoitus tulevasta maksusta",
		ContentType: models.ContentTypeText,
		Category:    models.CategoryMessagePaymentNotification,
		Channels: map[string]*models.ChannelVariant{
			"kirje": {Languages: map[models.Language]*models.LanguageVariant{
				models.LanguageFI: {
					Content:        "Hyvä {{customerName}},\n\nmaksu {{amount}} erääntyy {{dueDate}}.",
					LifecycleState: models.StateDraft,
				},
				models.LanguageSV: {
					Content:        "Bästa {{customerName}},\n\nbetalningen {{amount}} förfaller {{dueDate}}.",
					LifecycleState: models.StateDraft,
				},
			}},
			"verkko": {Languages: map[models.Language]*models.LanguageVariant{
				models.LanguageFI: {
					Content:        "Maksu {{amount}} erääntyy {{dueDate}}. Tapaus {{caseId}}.",
					LifecycleState: models.StateDraft,
				},
				models.LanguageSV: {
					Content:        "Betalningen {{amount}} förfaller {{dueDate}}. Ärende {{caseId}}.",
					LifecycleState: models.StateDraft,
				},
			}},
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: "seed",
		UpdatedBy: "seed",
	}

	age := models.ParameterTemplates["age-parameter-template"]
	maxAge := &models.ContentItem{
		ID:                  uuid.NewString(),
		Key:                 "param-enimmaisika",
		Title:               "Enimmäisikä",
		Description:         "Ansioturvan enimmäisikäraja",
		ContentType:         models.ContentTypeParameter,
		Category:            models.CategoryParameterValues,
		Content:             "65",
		Status:              string(models.StatePublished),
		LifecycleState:      models.StatePublished,
		ParameterTemplateID: age.ID,
		ParameterMeta:       age.Meta(),
		PublishedDate:       &published,
		PublishedBy:         "seed",
		CreatedAt:           now,
		UpdatedAt:           now,
		CreatedBy:           "seed",
		UpdatedBy:           "seed",
	}

	decision := &models.ContentItem{
		ID:          uuid.NewString(),
		Key:         "template-ansioturva-hyvaksytty",
		Title:       "Ansioturvapäätös: hyväksytty",
		Description: "Myönteisen ansioturvapäätöksen pohja",
		ContentType: models.ContentTypeTemplate,
		Category:    models.CategoryAnsioturva,
		Languages: map[models.Language]*models.LanguageVariant{
			models.LanguageFI: {
				Content: "Päätös {{decisionDate}}\n\nHakija: {{applicantName}}\nHakemus: {{applicationNumber}}\n\n" +
					"Hakemuksenne on hyväksytty. Myönnetty summa on {{grantedAmount}}, voimassa {{effectiveDate}} alkaen.\n\n" +
					"Perustelu: {{justification}}\n\n{{appealInstructions}}",
				LifecycleState: models.StateDraft,
			},
			models.LanguageSV: {
				Content: "Beslut {{decisionDate}}\n\nSökande: {{applicantName}}\nAnsökan: {{applicationNumber}}\n\n" +
					"Er ansökan har godkänts. Det beviljade beloppet är {{grantedAmount}}, i kraft från {{effectiveDate}}.",
				LifecycleState: models.StateDraft,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: "seed",
		UpdatedBy: "seed",
	}

	return []*models.ContentItem{welcome, payment, maxAge, decision}
}

// insertItem writes one item with raw SQL. The variant maps and parameter
// metadata are stored as JSONB.
func insertItem(db *sql.DB, item *models.ContentItem) error {
	languages, err := jsonOrNull(item.Languages)
	if err != nil {
		return err
	}
	channels, err := jsonOrNull(item.Channels)
	if err != nil {
		return err
	}
	meta, err := jsonOrNull(item.ParameterMeta)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
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
	return err
}

// jsonOrNull marshals v for a JSONB column, mapping nil to SQL NULL.
func jsonOrNull(v any) (any, error) {
	switch val := v.(type) {
	case map[models.Language]*models.LanguageVariant:
		if val == nil {
			return nil, nil
		}
	case map[string]*models.ChannelVariant:
		if val == nil {
			return nil, nil
		}
	case *models.ParameterMeta:
		if val == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal json column: %w", err)
	}
	return b, nil
}
