package models

import "time"

// TimerState is the engine's derived output snapshot. It is recomputed
// from scratch on every poll tick and has no identity beyond "latest";
// nothing here is persisted.
type TimerState struct {
	CurrentTime        time.Time `json:"current_time"`
	CurrentSection     *Section  `json:"current_section"`
	NextSection        *Section  `json:"next_section"`
	SecondsRemaining   int       `json:"seconds_remaining"`
	IsWarningPhase     bool      `json:"is_warning_phase"`
	IsTwoMinuteWarning bool      `json:"is_two_minute_warning"`
	IsClassActive      bool      `json:"is_class_active"`
	ClassProgress      float64   `json:"class_progress"`
	SectionProgress    float64   `json:"section_progress"`
}
