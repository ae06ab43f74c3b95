// Package clock turns instants into display strings and drives the
// per-second render loop that keeps the face current.
package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bigclock/internal/config"
)

// Translator is the piece of the localizer the formatters need.
type Translator interface {
	T(key string) string
}

// Frame is one render pass: the formatted strings handed to the
// rendering boundary. An empty TimeOfDay means the line is suppressed
// entirely, label included.
type Frame struct {
	Time      string
	TimeOfDay string
	Weekday   string
	Date      string
}

// BuildFrame formats the full frame for now under cfg.
func BuildFrame(now time.Time, cfg config.Config, tr Translator) Frame {
	f := Frame{
		Time:    FormatTime(now, cfg.TimeFormat, cfg.ShowSeconds, tr),
		Weekday: FormatWeekday(now, tr),
		Date:    FormatDate(now, tr),
	}
	if cfg.ShowTimeOfDay {
		f.TimeOfDay = TimeOfDay(now, tr)
	}
	return f
}

// FormatTime renders the clock line. 24h mode is zero-padded HH:MM; 12h
// mode uses an unpadded 1–12 hour and a localized AM/PM marker. Seconds
// go at the very end when enabled, in either mode.
func FormatTime(t time.Time, timeFormat string, showSeconds bool, tr Translator) string {
	h, m, s := t.Hour(), t.Minute(), t.Second()

	var out string
	if timeFormat == config.TimeFormat24 {
		out = fmt.Sprintf("%02d:%02d", h, m)
	} else {
		marker := tr.T("am")
		if h >= 12 {
			marker = tr.T("pm")
		}
		h12 := h % 12
		if h12 == 0 {
			h12 = 12
		}
		out = fmt.Sprintf("%d:%02d %s", h12, m, marker)
	}

	if showSeconds {
		out += fmt.Sprintf(":%02d", s)
	}

	return substituteDigits(out, DigitGlyphs(tr))
}

// FormatWeekday looks the day name up by weekday index, Sunday being 0.
func FormatWeekday(t time.Time, tr Translator) string {
	return tr.T(fmt.Sprintf("weekday.%d", int(t.Weekday())))
}

// FormatDate fills the locale's date template. Each of {day}, {month},
// and {year} is substituted exactly once.
func FormatDate(t time.Time, tr Translator) string {
	month := tr.T(fmt.Sprintf("month.%d", int(t.Month())))

	out := tr.T("dateTemplate")
	out = strings.Replace(out, "{day}", strconv.Itoa(t.Day()), 1)
	out = strings.Replace(out, "{month}", month, 1)
	out = strings.Replace(out, "{year}", strconv.Itoa(t.Year()), 1)

	return substituteDigits(out, DigitGlyphs(tr))
}

// TimeOfDay maps the local hour to its localized bucket. The buckets
// are half-open and cover all 24 hours.
func TimeOfDay(t time.Time, tr Translator) string {
	return tr.T(timeOfDayKey(t.Hour()))
}

func timeOfDayKey(h int) string {
	switch {
	case h >= 5 && h < 12:
		return "timeofday.morning"
	case h >= 12 && h < 17:
		return "timeofday.afternoon"
	case h >= 17 && h < 21:
		return "timeofday.evening"
	default:
		return "timeofday.night"
	}
}

// DigitGlyphs returns the locale's ten numeral glyphs in order, or nil
// when the dictionary supplies no usable mapping.
func DigitGlyphs(tr Translator) []string {
	raw := tr.T("digits")
	if raw == "digits" || !strings.Contains(raw, ",") {
		return nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 10 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// substituteDigits replaces every ASCII digit with its localized glyph.
// Always the last formatting step.
func substituteDigits(s string, glyphs []string) string {
	if glyphs == nil {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(glyphs[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
