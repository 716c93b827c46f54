// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package placeholder

import (
	"sort"
	"strings"

	"helpdoc/internal/catalog"
)

const (
	// DefaultMaxSuggestions bounds how many near-matches are proposed for
	// one unknown key.
	DefaultMaxSuggestions = 3
	// DefaultMaxDistance is the largest edit distance still considered a
	// plausible typo.
	DefaultMaxDistance = 4
	// DefaultMaxPrefixResults bounds prefix autocomplete results.
	DefaultMaxPrefixResults = 10
)

// candidate scoring tiers. Lower priority wins before score is compared.
const (
	priorityContains    = 2 // one key contains the other
	priorityAffix       = 3 // shared prefix or suffix
	prioritySubsequence = 4 // same characters in the same relative order
	priorityDistance    = 5 // plain edit distance
)

type candidate struct {
	def      catalog.VariableDef
	priority int
	score    float64
	distance int
}

// FindSimilar ranks catalog keys by similarity to an unknown key,
// case-insensitively. A case-insensitive exact match is returned alone — it
// is almost certainly the intended key. Otherwise candidates within
// maxDistance edits are tiered: containment beats shared affixes, which
// beat subsequence matches, which beat plain edit distance; a shared prefix
// of three or more characters earns a score bonus. At most maxSuggestions
// results.
func FindSimilar(unknownKey string, allowed catalog.Catalog, maxSuggestions, maxDistance int) []catalog.VariableDef {
	if unknownKey == "" || len(allowed) == 0 || maxSuggestions <= 0 {
		return nil
	}

	unknownLower := strings.ToLower(unknownKey)

	var candidates []candidate
	for _, def := range allowed {
		keyLower := strings.ToLower(def.Key)
		distance := levenshtein(unknownLower, keyLower)

		if distance == 0 {
			// Only a case difference separates the keys. An identical key
			// would not be unknown, so this is the correction.
			if def.Key != unknownKey {
				return []catalog.VariableDef{def}
			}
			continue
		}
		if distance > maxDistance {
			continue
		}

		priority := priorityDistance
		score := float64(distance)
		switch {
		case strings.Contains(keyLower, unknownLower) || strings.Contains(unknownLower, keyLower):
			priority = priorityContains
			score = float64(distance) * 0.1
		case strings.HasPrefix(unknownLower, keyLower) || strings.HasPrefix(keyLower, unknownLower):
			priority = priorityAffix
			score = float64(distance) * 0.3
		case strings.HasSuffix(unknownLower, keyLower) || strings.HasSuffix(keyLower, unknownLower):
			priority = priorityAffix
			score = float64(distance) * 0.4
		case isSubsequence(unknownLower, keyLower) || isSubsequence(keyLower, unknownLower):
			priority = prioritySubsequence
			score = float64(distance) * 0.6
		}

		// A long shared prefix is a strong typo signal regardless of tier.
		if prefixLen := commonPrefixLen(unknownLower, keyLower); prefixLen >= 3 {
			minLen := min(len(unknownLower), len(keyLower))
			score -= float64(prefixLen) / float64(minLen) * 0.3
			if score < 0 {
				score = 0
			}
		}

		candidates = append(candidates, candidate{def: def, priority: priority, score: score, distance: distance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		// Scores within tolerance are a tie; fall back to edit distance.
		diff := a.score - b.score
		if diff < 0.1 && diff > -0.1 {
			return a.distance < b.distance
		}
		return a.score < b.score
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]catalog.VariableDef, len(candidates))
	for i, c := range candidates {
		out[i] = c.def
	}
	return out
}

// ByPrefix returns catalog variables whose key starts with the prefix,
// case-insensitively, in catalog order, truncated to maxResults. Powers
// live autocomplete while a placeholder is being typed.
func ByPrefix(prefix string, allowed catalog.Catalog, maxResults int) []catalog.VariableDef {
	if prefix == "" || len(allowed) == 0 || maxResults <= 0 {
		return nil
	}
	prefixLower := strings.ToLower(prefix)

	var out []catalog.VariableDef
	for _, def := range allowed {
		if strings.HasPrefix(strings.ToLower(def.Key), prefixLower) {
			out = append(out, def)
			if len(out) == maxResults {
				break
			}
		}
	}
	return out
}

// levenshtein computes the edit distance between two strings, by byte.
// Catalog keys are ASCII so bytes and characters coincide.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j-1], min(curr[j-1], prev[j])) + 1
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// isSubsequence reports whether every character of a appears in b in the
// same relative order, allowing extra characters in between.
func isSubsequence(a, b string) bool {
	ai := 0
	for bi := 0; bi < len(b) && ai < len(a); bi++ {
		if b[bi] == a[ai] {
			ai++
		}
	}
	return ai == len(a)
}

func commonPrefixLen(a, b string) int {
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	return i
}
