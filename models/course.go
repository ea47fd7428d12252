package models

import (
	"fmt"
	"strings"
)

// HoleSegment is one of the three fixed 6-hole stretches of a round.
type HoleSegment string

const (
	SegmentFront  HoleSegment = "1-6"
	SegmentMiddle HoleSegment = "7-12"
	SegmentBack   HoleSegment = "13-18"
)

const HolesPerSegment = 6

// Segments returns the segments in playing order.
func Segments() []HoleSegment {
	return []HoleSegment{SegmentFront, SegmentMiddle, SegmentBack}
}

// ParseHoleSegment accepts "1-6", "1–6" (en dash) and surrounding spaces.
func ParseHoleSegment(s string) (HoleSegment, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "–", "-")
	normalized = strings.ReplaceAll(normalized, " ", "")
	seg := HoleSegment(normalized)
	if !seg.Valid() {
		return "", fmt.Errorf("unknown hole segment %q", s)
	}
	return seg, nil
}

func (s HoleSegment) Valid() bool {
	switch s {
	case SegmentFront, SegmentMiddle, SegmentBack:
		return true
	}
	return false
}

func (s HoleSegment) FirstHole() int {
	switch s {
	case SegmentFront:
		return 1
	case SegmentMiddle:
		return 7
	case SegmentBack:
		return 13
	}
	return 0
}

// Holes returns the hole numbers covered by the segment, or nil for an invalid segment.
func (s HoleSegment) Holes() []int {
	first := s.FirstHole()
	if first == 0 {
		return nil
	}
	holes := make([]int, HolesPerSegment)
	for i := range holes {
		holes[i] = first + i
	}
	return holes
}

// Contains reports whether hole belongs to the segment.
func (s HoleSegment) Contains(hole int) bool {
	first := s.FirstHole()
	return first != 0 && hole >= first && hole < first+HolesPerSegment
}

// HoleInfo describes one hole of the course. StrokeIndex 1 is the hardest hole.
type HoleInfo struct {
	Number      int `json:"number" yaml:"number"`
	Par         int `json:"par" yaml:"par"`
	StrokeIndex int `json:"stroke_index" yaml:"stroke_index"`
}
