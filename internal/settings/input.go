package settings

import (
	"math"
	"strconv"
	"strings"
)

// Bounds for minute values typed by the user.
const (
	MinMinutes = 0.1
	MaxMinutes = 600.0
)

// NormalizeDecimalInput cleans a minutes field as it is typed. Full-width
// digits become ASCII, full-width and ideographic dots become '.', commas
// are dropped, every other rune is removed and only the first dot is kept.
// A leading "." becomes "0." and redundant leading zeros are trimmed.
func NormalizeDecimalInput(raw string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '０' && r <= '９':
			b.WriteRune('0' + (r - '０'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '．' || r == '。' || r == '｡':
			if !seenDot {
				b.WriteByte('.')
				seenDot = true
			}
		}
	}
	s := b.String()

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	for len(s) > 1 && s[0] == '0' && s[1] != '.' {
		s = s[1:]
	}
	return s
}

// ParseMinutes parses a normalized minutes value. It fails on empty input
// and on values that are not finite.
func ParseMinutes(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ClampMinutes bounds m to [MinMinutes, MaxMinutes].
func ClampMinutes(m float64) float64 {
	return math.Min(MaxMinutes, math.Max(MinMinutes, m))
}

// MinutesToSeconds converts minutes to whole seconds.
func MinutesToSeconds(m float64) int {
	return int(math.Round(m * 60))
}

// SecondsToMinutes is the inverse used to fill input fields.
func SecondsToMinutes(sec int) float64 {
	return float64(sec) / 60
}

// FormatMinutes prints at most two decimals without trailing zeros.
func FormatMinutes(m float64) string {
	return strconv.FormatFloat(math.Round(m*100)/100, 'f', -1, 64)
}

// CommitMinutes resolves a field on blur: a valid entry is clamped and
// converted to seconds, anything else reverts to lastSec.
func CommitMinutes(raw string, lastSec int) (sec int, display string) {
	m, ok := ParseMinutes(NormalizeDecimalInput(raw))
	if !ok {
		return lastSec, FormatMinutes(SecondsToMinutes(lastSec))
	}
	m = ClampMinutes(m)
	return MinutesToSeconds(m), FormatMinutes(m)
}
