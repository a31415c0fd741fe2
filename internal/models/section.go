package models

import "time"

// Section is one named timed interval within a schedule's day, e.g.
// "Warmup" or "Randori". Start and end times are derived from the class
// start time and the section durations; see RecalculateSectionTimes.
type Section struct {
	ID                   string    `db:"id" json:"id"`
	ScheduleID           string    `db:"schedule_id" json:"schedule_id"`
	Position             int       `db:"position" json:"position"`
	Name                 string    `db:"name" json:"name"`
	StartTime            string    `db:"start_time" json:"start_time"`
	EndTime              string    `db:"end_time" json:"end_time"`
	DurationMinutes      int       `db:"duration_minutes" json:"duration_minutes"`
	Color                string    `db:"color" json:"color"`
	PlayEndBell          bool      `db:"play_end_bell" json:"play_end_bell"`
	PlayTwoMinuteWarning bool      `db:"play_two_minute_warning" json:"play_two_minute_warning"`
	BellSound            string    `db:"bell_sound" json:"bell_sound"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
