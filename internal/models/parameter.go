// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strconv"

// ParameterTemplate is an admin-defined blueprint for parameter items.
// Users pick one when creating a parameter; its constraints are copied
// into the item's ParameterMeta.
type ParameterTemplate struct {
	ID                 string
	Name               string
	Type               string // "integer", "number", or "text"
	Min                *float64
	Max                *float64
	Step               *float64
	Unit               string
	DefaultDescription string
}

// Meta builds the ParameterMeta an item created from this template carries.
func (t ParameterTemplate) Meta() *ParameterMeta {
	return &ParameterMeta{
		Type:        t.Type,
		Min:         cloneFloat(t.Min),
		Max:         cloneFloat(t.Max),
		Step:        cloneFloat(t.Step),
		Unit:        t.Unit,
		Description: t.DefaultDescription,
	}
}

// DefaultContent returns the initial content for a new parameter item:
// the minimum for numeric types, empty for text.
func (t ParameterTemplate) DefaultContent() string {
	if t.Type == "integer" || t.Type == "number" {
		if t.Min != nil {
			return strconv.FormatFloat(*t.Min, 'f', -1, 64)
		}
		return "0"
	}
	return ""
}

func f64(v float64) *float64 { return &v }

// ParameterTemplates is the fixed template set defined by the configuration
// service. Keyed by template ID.
var ParameterTemplates = map[string]ParameterTemplate{
	"age-parameter-template": {
		ID:                 "age-parameter-template",
		Name:               "Ikäparametri",
		Type:               "integer",
		Min:                f64(0),
		Max:                f64(120),
		Step:               f64(1),
		Unit:               "vuotta",
		DefaultDescription: "Ikäraja-parametri",
	},
	"income-parameter-template": {
		ID:                 "income-parameter-template",
		Name:               "Tuloparametri",
		Type:               "integer",
		Min:                f64(0),
		Max:                f64(100000),
		Step:               f64(100),
		Unit:               "euroa/kk",
		DefaultDescription: "Tuloraja-parametri",
	},
	"percentage-parameter-template": {
		ID:                 "percentage-parameter-template",
		Name:               "Prosenttiparametri",
		Type:               "number",
		Min:                f64(0),
		Max:                f64(100),
		Step:               f64(0.1),
		Unit:               "%",
		DefaultDescription: "Prosentti-parametri",
	},
	"text-parameter-template": {
		ID:                 "text-parameter-template",
		Name:               "Tekstiparametri",
		Type:               "text",
		DefaultDescription: "Teksti-parametri",
	},
}
