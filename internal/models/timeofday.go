package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/svj-dojo/bellwall-api/pkg/errors"
)

const minutesPerDay = 24 * 60

// DayAny marks a schedule that can run on any day of the week and is
// matched purely on time-of-day.
const DayAny = "any"

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// TimeToMinutes converts an "HH:MM" clock string into minutes since midnight.
func TimeToMinutes(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, appErrors.Clone(appErrors.ErrInvalidFormat, fmt.Sprintf("invalid time %q, expected HH:MM", value))
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInvalidFormat.Code, appErrors.ErrInvalidFormat.Status, fmt.Sprintf("invalid hour in %q", value))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInvalidFormat.Code, appErrors.ErrInvalidFormat.Status, fmt.Sprintf("invalid minute in %q", value))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, appErrors.Clone(appErrors.ErrInvalidFormat, fmt.Sprintf("time %q out of range", value))
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as "HH:MM". Values past the
// end of the day wrap to the next day's clock time; tracking the day
// rollover is the caller's concern.
func MinutesToTime(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatTime12Hour renders an "HH:MM" clock string in 12-hour notation,
// e.g. "18:30" -> "6:30 PM".
func FormatTime12Hour(value string) string {
	total, err := TimeToMinutes(value)
	if err != nil {
		return value
	}
	hours := total / 60
	minutes := total % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}

// ParseDayOfWeek resolves a schedule day tag into a weekday. The second
// return reports whether the tag is the "any day" sentinel. An empty tag is
// valid but never matches day-based selection.
func ParseDayOfWeek(tag string) (time.Weekday, bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	if normalized == DayAny {
		return time.Sunday, true, nil
	}
	day, ok := weekdayNames[normalized]
	if !ok {
		return time.Sunday, false, appErrors.Clone(appErrors.ErrInvalidFormat, fmt.Sprintf("unknown day of week %q", tag))
	}
	return day, false, nil
}

// IsValidDayTag reports whether tag names a weekday or the any-day sentinel.
func IsValidDayTag(tag string) bool {
	if tag == "" {
		return false
	}
	_, _, err := ParseDayOfWeek(tag)
	return err == nil
}

// SectionProgress returns how far through the section the given instant is,
// as a percentage clamped to [0,100]. nowSeconds is seconds since midnight.
func SectionProgress(section Section, nowSeconds int) float64 {
	start, err := TimeToMinutes(section.StartTime)
	if err != nil {
		return 0
	}
	end, err := TimeToMinutes(section.EndTime)
	if err != nil {
		return 0
	}
	total := (end - start) * 60
	if total <= 0 {
		return 0
	}
	elapsed := nowSeconds - start*60
	progress := float64(elapsed) / float64(total) * 100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// RecalculateSectionTimes reassigns section boundaries so the sequence is
// contiguous and gap free: the first section starts at classStart, each
// following section starts where the previous one ends, and every end time
// is start plus duration. This is the single source of truth for section
// boundaries; start and end strings are never edited independently of the
// durations.
func RecalculateSectionTimes(classStart string, sections []Section) ([]Section, error) {
	cursor, err := TimeToMinutes(classStart)
	if err != nil {
		return nil, err
	}
	out := make([]Section, len(sections))
	for i, section := range sections {
		if section.DurationMinutes <= 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("section %q must have a positive duration", section.Name))
		}
		section.Position = i
		section.StartTime = MinutesToTime(cursor)
		cursor += section.DurationMinutes
		if cursor >= minutesPerDay {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("section %q runs past midnight", section.Name))
		}
		section.EndTime = MinutesToTime(cursor)
		out[i] = section
	}
	return out, nil
}
