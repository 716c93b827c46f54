// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package diff compares two versions of content text line by line, for the
// version-history view. The algorithm is a greedy single-pass scan with one
// line of lookahead per side; it favors readable output over minimal edit
// scripts.
package diff

import "strings"

// Op classifies a diff segment.
type Op string

const (
	OpAdded     Op = "added"
	OpRemoved   Op = "removed"
	OpUnchanged Op = "unchanged"
)

// Segment is one line of diff output.
type Segment struct {
	Op   Op
	Text string
}

// Compute diffs two texts line by line. The empty string counts as a single
// empty line, matching how editors display it.
func Compute(oldText, newText string) []Segment {
	oldLines := strings.Split(oldText, "\n")
	newLines := strings.Split(newText, "\n")

	var segments []Segment
	oi, ni := 0, 0
	for oi < len(oldLines) || ni < len(newLines) {
		switch {
		case oi >= len(oldLines):
			segments = append(segments, Segment{Op: OpAdded, Text: newLines[ni]})
			ni++
		case ni >= len(newLines):
			segments = append(segments, Segment{Op: OpRemoved, Text: oldLines[oi]})
			oi++
		case oldLines[oi] == newLines[ni]:
			segments = append(segments, Segment{Op: OpUnchanged, Text: oldLines[oi]})
			oi++
			ni++
		default:
			// Decide between insertion and deletion by which current line
			// reappears sooner on the other side.
			oldAhead := indexOf(newLines[ni+1:], oldLines[oi])
			newAhead := indexOf(oldLines[oi+1:], newLines[ni])
			switch {
			case oldAhead != -1 && (newAhead == -1 || oldAhead < newAhead):
				segments = append(segments, Segment{Op: OpAdded, Text: newLines[ni]})
				ni++
			case newAhead != -1 && (oldAhead == -1 || newAhead < oldAhead):
				segments = append(segments, Segment{Op: OpRemoved, Text: oldLines[oi]})
				oi++
			default:
				segments = append(segments, Segment{Op: OpRemoved, Text: oldLines[oi]})
				segments = append(segments, Segment{Op: OpAdded, Text: newLines[ni]})
				oi++
				ni++
			}
		}
	}
	return segments
}

// Row is one line of a side-by-side rendering. The absent side of an added
// or removed line is nil.
type Row struct {
	Op    Op
	Left  *string
	Right *string
}

// SideBySide arranges segments into two columns: removals on the left,
// additions on the right, unchanged lines on both.
func SideBySide(segments []Segment) []Row {
	rows := make([]Row, 0, len(segments))
	for _, s := range segments {
		text := s.Text
		switch s.Op {
		case OpUnchanged:
			rows = append(rows, Row{Op: s.Op, Left: &text, Right: &text})
		case OpRemoved:
			rows = append(rows, Row{Op: s.Op, Left: &text})
		case OpAdded:
			rows = append(rows, Row{Op: s.Op, Right: &text})
		}
	}
	return rows
}

// Changed reports whether the diff contains any addition or removal.
func Changed(segments []Segment) bool {
	for _, s := range segments {
		if s.Op != OpUnchanged {
			return true
		}
	}
	return false
}

func indexOf(lines []string, want string) int {
	for i, l := range lines {
		if l == want {
			return i
		}
	}
	return -1
}
