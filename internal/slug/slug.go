// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives machine-readable content keys from human titles.
// Keys are lowercase ASCII with hyphens, stable enough to reference from
// other systems.
package slug

import (
	"regexp"
	"strconv"
	"strings"

	"helpdoc/internal/models"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
	// scandic transliterates the Finnish and Swedish letters before the
	// ASCII filter strips them. Titles here are mostly Finnish.
	scandic = strings.NewReplacer(
		"ä", "a", "Ä", "a",
		"ö", "o", "Ö", "o",
		"å", "a", "Å", "a",
	)
)

// Generate creates a key-safe slug from the given string.
// Example: "Päätös hyväksytty 2026" → "paatos-hyvaksytty-2026"
func Generate(s string) string {
	result := strings.ToLower(scandic.Replace(strings.TrimSpace(s)))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// keyPrefixes gives each content type its key namespace.
var keyPrefixes = map[models.ContentType]string{
	models.ContentTypeText:      "text",
	models.ContentTypeTemplate:  "template",
	models.ContentTypeParameter: "param",
	models.ContentTypeStructure: "structure",
}

// ItemKey proposes a content key for a new item: the content type's prefix
// plus the slugged title. An empty title yields just the prefix.
func ItemKey(ct models.ContentType, title string) string {
	prefix, ok := keyPrefixes[ct]
	if !ok {
		prefix = "content"
	}
	s := Generate(title)
	if s == "" {
		return prefix
	}
	return prefix + "-" + s
}

// Uniquify appends a numeric suffix until exists stops reporting the key as
// taken. The unsuffixed key is tried first.
func Uniquify(key string, exists func(string) bool) string {
	if !exists(key) {
		return key
	}
	for i := 2; ; i++ {
		candidate := key + "-" + strconv.Itoa(i)
		if !exists(candidate) {
			return candidate
		}
	}
}
