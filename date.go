package newsclip

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalDateLayout is the time layout of normalized publish dates.
const CanonicalDateLayout = "2006-01-02 15:04"

// DateLayout identifies how a source formats its publish date.
type DateLayout string

// Supported date layouts.
const (
	// DateRaw dates are passed through unchanged.
	DateRaw DateLayout = "raw"

	// DateISO dates are machine-readable timestamps such as
	// "2025-11-14T10:30:00+09:00".
	DateISO DateLayout = "iso"

	// DateMeridiem dates use the Korean portal format
	// "입력 2025.11.14. 오후 2:30".
	DateMeridiem DateLayout = "meridiem"
)

var meridiemRe = regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})\.\s*(오전|오후)\s*(\d{1,2}):(\d{2})`)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// NormalizeMeridiemDate converts "입력 2025.11.14. 오후 2:30" into
// "2025-11-14 14:30". Text that does not match the format is returned unchanged.
func NormalizeMeridiemDate(text string) string {
	stripped := strings.TrimSpace(text)
	for _, marker := range []string{"입력", "수정"} {
		stripped = strings.TrimSpace(strings.TrimPrefix(stripped, marker))
	}

	m := meridiemRe.FindStringSubmatch(stripped)
	if m == nil {
		return text
	}

	var n [5]int
	for i, idx := range []int{1, 2, 3, 5, 6} {
		v, err := strconv.Atoi(m[idx])
		if err != nil {
			return text
		}
		n[i] = v
	}
	year, month, day, hour, minute := n[0], n[1], n[2], n[3], n[4]
	meridiem := m[4]

	switch {
	case meridiem == "오후" && hour != 12:
		hour += 12
	case meridiem == "오전" && hour == 12:
		hour = 0
	}

	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", year, month, day, hour, minute)
}

// NormalizeISODate reformats a machine-readable timestamp as
// "YYYY-MM-DD HH:MM", keeping the wall-clock time of its own offset.
// The boolean is false when the value cannot be parsed.
func NormalizeISODate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(CanonicalDateLayout), true
		}
	}
	return "", false
}

// NormalizeDate converts a published value into canonical form according to
// layout. ISO values that fail to parse fall back to the visible text.
// Normalization never fails; unrecognized input is passed through.
func NormalizeDate(layout DateLayout, published, visible string) string {
	published = CleanText(published)
	visible = CleanText(visible)

	switch layout {
	case DateISO:
		if s, ok := NormalizeISODate(published); ok {
			return s
		}
		if visible != "" {
			return visible
		}
		return published
	case DateMeridiem:
		if published == "" {
			published = visible
		}
		return NormalizeMeridiemDate(published)
	default:
		if published == "" {
			return visible
		}
		return published
	}
}
