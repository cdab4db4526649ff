package chat

import (
	"regexp"
	"strings"
)

// The assistant answers in loosely markdown-shaped Spanish. FormatMessage
// parses that text into structured segments so renderers never have to
// re-implement the pattern matching.

type SegmentKind string

const (
	SegmentParagraph    SegmentKind = "paragraph"
	SegmentHeading      SegmentKind = "heading"
	SegmentNumberedList SegmentKind = "numberedList"
	SegmentBulletList   SegmentKind = "bulletList"
	SegmentConclusion   SegmentKind = "conclusion"
	SegmentWarning      SegmentKind = "warning"
)

type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Icon  string      `json:"icon,omitempty"`
	Text  string      `json:"text,omitempty"`
	Items []string    `json:"items,omitempty"`
}

// InlinePart is a run of text that is either plain or a money amount.
type InlinePart struct {
	Text  string `json:"text"`
	Money bool   `json:"money"`
}

var (
	numberedRe = regexp.MustCompile(`^(\d+)[\.\)]\s+(.+)$`)
	bulletRe   = regexp.MustCompile(`^[-•*]\s+(.+)$`)
	headingRe  = regexp.MustCompile(`^(🔥|📊|📦|💡|📈|🏆|⚠️|✅|❌|💰|🎯|📋|🛒|👥)\s*(.+)$`)
	moneyRe    = regexp.MustCompile(`\$[\d,\.]+`)
)

var conclusionPrefixes = []string{"por lo tanto", "en resumen", "en conclusión", "recomendación"}

var warningMarkers = []string{"importante", "atención", "nota:"}

// FormatMessage splits assistant output into renderable segments.
// Consecutive list lines of the same kind collapse into one list segment;
// switching list styles or hitting a non-list line flushes the open list.
func FormatMessage(content string) []Segment {
	segments := make([]Segment, 0)

	var listItems []string
	var listKind SegmentKind

	flushList := func() {
		if len(listItems) == 0 {
			return
		}
		segments = append(segments, Segment{Kind: listKind, Items: listItems})
		listItems = nil
		listKind = ""
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := numberedRe.FindStringSubmatch(trimmed); m != nil {
			if listKind != SegmentNumberedList {
				flushList()
				listKind = SegmentNumberedList
			}
			listItems = append(listItems, m[2])
			continue
		}
		if m := bulletRe.FindStringSubmatch(trimmed); m != nil {
			if listKind != SegmentBulletList {
				flushList()
				listKind = SegmentBulletList
			}
			listItems = append(listItems, m[1])
			continue
		}

		flushList()

		if trimmed == "" {
			continue
		}

		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			segments = append(segments, Segment{Kind: SegmentHeading, Icon: m[1], Text: m[2]})
			continue
		}

		lower := strings.ToLower(trimmed)
		if hasAnyPrefix(lower, conclusionPrefixes) {
			segments = append(segments, Segment{Kind: SegmentConclusion, Text: trimmed})
			continue
		}
		if containsAny(lower, warningMarkers) {
			segments = append(segments, Segment{Kind: SegmentWarning, Text: trimmed})
			continue
		}

		segments = append(segments, Segment{Kind: SegmentParagraph, Text: trimmed})
	}
	flushList()

	return segments
}

// SplitMoney breaks a text run into plain and money-amount parts, in
// order, so amounts can be highlighted without re-parsing.
func SplitMoney(text string) []InlinePart {
	locations := moneyRe.FindAllStringIndex(text, -1)
	if len(locations) == 0 {
		return []InlinePart{{Text: text}}
	}

	parts := make([]InlinePart, 0, len(locations)*2+1)
	last := 0
	for _, loc := range locations {
		if loc[0] > last {
			parts = append(parts, InlinePart{Text: text[last:loc[0]]})
		}
		parts = append(parts, InlinePart{Text: text[loc[0]:loc[1]], Money: true})
		last = loc[1]
	}
	if last < len(text) {
		parts = append(parts, InlinePart{Text: text[last:]})
	}
	return parts
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
