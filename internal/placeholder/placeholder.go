// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package placeholder parses, validates, and renders {{key}} placeholders
// in content text, and performs the cursor-aware text surgery behind the
// editor's variable picker and autocomplete.
//
// Every function is pure: output depends only on the explicit inputs.
// Malformed syntax (an unterminated "{{", a newline inside a candidate key)
// is never an error; the scanner simply reports no placeholder there.
// All offsets are byte offsets into the UTF-8 text. Keys are ASCII, so a
// token's length in bytes equals its length in characters.
package placeholder

import (
	"regexp"
	"strings"

	"helpdoc/internal/catalog"
)

// pattern matches a well-formed placeholder token. Package-level and
// immutable: the scanner keeps no per-call state.
var pattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_.-]+)\}\}`)

// Match is one placeholder occurrence in a text. Transient; produced by
// parsing and never persisted.
type Match struct {
	// Raw is the full token, e.g. "{{customerName}}".
	Raw string
	// Key is the variable key inside the braces.
	Key string
	// Index is the 0-based byte offset of the token in the text.
	Index int
}

// Extract scans text for all non-overlapping placeholders, left to right,
// and returns them in source order. Empty text yields no matches.
func Extract(text string) []Match {
	if text == "" {
		return nil
	}
	locs := pattern.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Raw:   text[loc[0]:loc[1]],
			Key:   text[loc[2]:loc[3]],
			Index: loc[0],
		})
	}
	return matches
}

// Validation is the result of checking a text against a variable catalog.
type Validation struct {
	// UnknownKeys are the distinct placeholder keys not present in the
	// catalog, in first-occurrence order.
	UnknownKeys []string
	// AllKeys are all distinct placeholder keys found, in first-occurrence
	// order.
	AllKeys []string
	// Suggestions maps each unknown key to ranked near-matches from the
	// catalog. Keys with no near-match are absent from the map.
	Suggestions map[string][]catalog.VariableDef
}

// Validate extracts the placeholders of text, deduplicates their keys, and
// partitions them against the catalog. Unknown keys get fuzzy-match
// suggestions for inline warnings.
func Validate(text string, allowed catalog.Catalog) Validation {
	result := Validation{Suggestions: map[string][]catalog.VariableDef{}}
	if text == "" || len(allowed) == 0 {
		return result
	}

	allowedSet := allowed.KeySet()
	seen := map[string]bool{}
	for _, m := range Extract(text) {
		if seen[m.Key] {
			continue
		}
		seen[m.Key] = true
		result.AllKeys = append(result.AllKeys, m.Key)
		if _, ok := allowedSet[m.Key]; !ok {
			result.UnknownKeys = append(result.UnknownKeys, m.Key)
		}
	}

	for _, key := range result.UnknownKeys {
		if similar := FindSimilar(key, allowed, DefaultMaxSuggestions, DefaultMaxDistance); len(similar) > 0 {
			result.Suggestions[key] = similar
		}
	}
	return result
}

// RenderPreview substitutes every known placeholder with its example value.
// Unknown placeholders are kept verbatim, braces included, so the gap stays
// visible to the editor instead of silently disappearing.
func RenderPreview(text string, allowed catalog.Catalog) string {
	if text == "" {
		return ""
	}
	return pattern.ReplaceAllStringFunc(text, func(raw string) string {
		key := raw[2 : len(raw)-2]
		if def, ok := allowed.Lookup(key); ok {
			return def.ExampleValue
		}
		return raw
	})
}

// AtCursor returns the placeholder whose span contains the cursor position,
// inclusive of both the position just before "{{" and just after "}}".
func AtCursor(text string, cursor int) (Match, bool) {
	if text == "" || cursor < 0 {
		return Match{}, false
	}
	for _, m := range Extract(text) {
		if cursor >= m.Index && cursor <= m.Index+len(m.Raw) {
			return m, true
		}
	}
	return Match{}, false
}

// Incomplete describes a placeholder being typed: an opening "{{" with no
// closing braces before the cursor.
type Incomplete struct {
	// Prefix is the key fragment typed so far.
	Prefix string
	// StartIndex is the byte offset immediately after the opening "{{".
	StartIndex int
}

// FindIncomplete locates an in-progress placeholder at the cursor: the most
// recent "{{" at or before the cursor that is not yet closed. Returns false
// if the token was already closed before the cursor or the fragment spans a
// line break (placeholders never span lines).
func FindIncomplete(text string, cursor int) (Incomplete, bool) {
	if text == "" || cursor < 0 {
		return Incomplete{}, false
	}
	if cursor > len(text) {
		cursor = len(text)
	}

	// The opening "{{" must start at cursor-1 or earlier.
	searchEnd := cursor + 1
	if searchEnd > len(text) {
		searchEnd = len(text)
	}
	start := strings.LastIndex(text[:searchEnd], "{{")
	if start == -1 {
		return Incomplete{}, false
	}

	fragment := text[min(start+2, cursor):cursor]
	if strings.Contains(fragment, "}}") {
		return Incomplete{}, false
	}
	if strings.ContainsAny(fragment, "\n\r") {
		return Incomplete{}, false
	}
	return Incomplete{Prefix: fragment, StartIndex: start + 2}, true
}

// Insert replaces the current selection [selStart, selEnd) with "{{key}}"
// and returns the new text plus the cursor position immediately after the
// inserted token. Negative selection bounds mean "no editing surface": the
// token is appended at the end. Bounds are clamped to the text.
func Insert(text string, selStart, selEnd int, key string) (nextText string, nextCursor int) {
	token := "{{" + key + "}}"

	if selStart < 0 || selEnd < 0 {
		nextText = text + token
		return nextText, len(nextText)
	}
	selStart = clamp(selStart, 0, len(text))
	selEnd = clamp(selEnd, 0, len(text))
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}

	nextText = text[:selStart] + token + text[selEnd:]
	return nextText, selStart + len(token)
}

// Complete finishes an in-progress placeholder found by FindIncomplete:
// the span from the opening "{{" (startIndex-2) through the cursor is
// replaced with the full "{{key}}" token.
func Complete(text string, startIndex, cursor int, key string) (nextText string, nextCursor int) {
	token := "{{" + key + "}}"
	open := clamp(startIndex-2, 0, len(text))
	cursor = clamp(cursor, open, len(text))

	nextText = text[:open] + token + text[cursor:]
	return nextText, open + len(token)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
