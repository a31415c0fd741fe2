package models

import "time"

// Schedule is an ordered sequence of sections sharing one class start
// time, optionally bound to a weekday or the "any day" sentinel. The bell
// engine only ever reads schedules; all mutation happens through the
// editing API.
type Schedule struct {
	ID           string    `db:"id" json:"id"`
	GroupID      string    `db:"group_id" json:"group_id"`
	Name         string    `db:"name" json:"name"`
	DayOfWeek    string    `db:"day_of_week" json:"day_of_week"`
	ClassStart   string    `db:"class_start" json:"class_start"`
	WarningSound string    `db:"warning_sound" json:"warning_sound"`
	EndBellSound string    `db:"end_bell_sound" json:"end_bell_sound"`
	Sections     []Section `db:"-" json:"sections"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Span returns the whole-class span in minutes since midnight, derived
// from the first section's start and the last section's end. ok is false
// for a schedule with no sections.
func (s *Schedule) Span() (start, end int, ok bool) {
	if len(s.Sections) == 0 {
		return 0, 0, false
	}
	first, err := TimeToMinutes(s.Sections[0].StartTime)
	if err != nil {
		return 0, 0, false
	}
	last, err := TimeToMinutes(s.Sections[len(s.Sections)-1].EndTime)
	if err != nil {
		return 0, 0, false
	}
	return first, last, true
}

// ScheduleFilter describes query params for listing schedules.
type ScheduleFilter struct {
	GroupID   string
	DayOfWeek string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
