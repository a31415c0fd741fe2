package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/svj-dojo/bellwall-api/internal/audio"
	"github.com/svj-dojo/bellwall-api/internal/models"
)

type seedSection struct {
	name     string
	duration int
	color    string
	endBell  bool
	twoMin   bool
	sound    audio.Sound
}

type seedSchedule struct {
	name       string
	day        string
	classStart string
	warning    audio.Sound
	endBell    audio.Sound
	sections   []seedSection
}

var classSections = []seedSection{
	{name: "Warmup", duration: 15, color: "hsl(142 76% 36%)", endBell: true, sound: audio.SoundClassic},
	{name: "Newaza", duration: 30, color: "hsl(217 91% 60%)", endBell: true, sound: audio.SoundClassic},
	{name: "Tachiwaza", duration: 30, color: "hsl(280 70% 50%)", endBell: true, sound: audio.SoundClassic},
	{name: "Randori", duration: 30, color: "hsl(38 92% 50%)", endBell: true, sound: audio.SoundClassic},
}

var defaultSchedules = []seedSchedule{
	{name: "Tuesday Class", day: "tuesday", classStart: "18:30", warning: audio.SoundChime, endBell: audio.SoundClassic, sections: classSections},
	{name: "Thursday Class", day: "thursday", classStart: "18:30", warning: audio.SoundChime, endBell: audio.SoundClassic, sections: classSections},
	{name: "Saturday Class", day: "saturday", classStart: "10:00", warning: audio.SoundChime, endBell: audio.SoundClassic, sections: []seedSection{
		{name: "Warmup", duration: 15, color: "hsl(142 76% 36%)", endBell: true, sound: audio.SoundClassic},
		{name: "Newaza", duration: 30, color: "hsl(217 91% 60%)", endBell: true, sound: audio.SoundClassic},
		{name: "Tachiwaza", duration: 30, color: "hsl(280 70% 50%)", endBell: true, sound: audio.SoundClassic},
		{name: "Randori", duration: 45, color: "hsl(38 92% 50%)", endBell: true, sound: audio.SoundClassic},
	}},
	{name: "Tournament", day: models.DayAny, classStart: "09:00", warning: audio.SoundChime, endBell: audio.SoundGong, sections: []seedSection{
		{name: "Warmup", duration: 30, color: "hsl(142 76% 36%)", endBell: true, sound: audio.SoundClassic},
		{name: "Pool Matches", duration: 90, color: "hsl(217 91% 60%)", endBell: true, twoMin: true, sound: audio.SoundGong},
		{name: "Break", duration: 15, color: "hsl(0 0% 50%)", sound: audio.SoundClassic},
		{name: "Eliminations", duration: 75, color: "hsl(280 70% 50%)", endBell: true, twoMin: true, sound: audio.SoundGong},
		{name: "Finals", duration: 60, color: "hsl(38 92% 50%)", endBell: true, twoMin: true, sound: audio.SoundGong},
	}},
}

// Seed installs the default dojo group and schedules on an empty database
// so a fresh display has something to show. It is a no-op once any group
// exists.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM groups`); err != nil {
		return fmt.Errorf("count groups: %w", err)
	}
	if count > 0 {
		return nil
	}

	groups := NewGroupRepository(db)
	schedules := NewScheduleRepository(db)

	group := &models.Group{Name: "SVJ Classes", Active: true}
	if err := groups.Create(ctx, group); err != nil {
		return err
	}

	for _, seed := range defaultSchedules {
		sections := make([]models.Section, len(seed.sections))
		for i, s := range seed.sections {
			sections[i] = models.Section{
				Name:                 s.name,
				DurationMinutes:      s.duration,
				Color:                s.color,
				PlayEndBell:          s.endBell,
				PlayTwoMinuteWarning: s.twoMin,
				BellSound:            string(s.sound),
			}
		}
		sections, err := models.RecalculateSectionTimes(seed.classStart, sections)
		if err != nil {
			return fmt.Errorf("seed schedule %q: %w", seed.name, err)
		}
		schedule := &models.Schedule{
			GroupID:      group.ID,
			Name:         seed.name,
			DayOfWeek:    seed.day,
			ClassStart:   seed.classStart,
			WarningSound: string(seed.warning),
			EndBellSound: string(seed.endBell),
			Sections:     sections,
		}
		if err := schedules.Create(ctx, schedule); err != nil {
			return err
		}
	}
	return nil
}
