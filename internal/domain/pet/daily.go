package pet

import "time"

// ShouldResetDaily reports whether a day boundary has passed since daily
// actions were last reset. Checked after decay and after a skip, since both
// can advance the effective game day.
func ShouldResetDaily(p Pet, now time.Time) bool {
	return p.LastGameDay != GameDayAt(p.CreatedAt, now)
}

// ResetDaily clears the once-per-day set, records the new game day and rolls
// the happy-day streak: another consecutive day above the happiness bar
// extends it, anything else breaks it.
func ResetDaily(p Pet, now time.Time) Pet {
	next := p
	next.LastGameDay = GameDayAt(p.CreatedAt, now)
	next.CompletedToday = map[ActionID]bool{}
	if p.Needs.Happiness > 80 {
		next.HappyStreak = p.HappyStreak + 1
	} else {
		next.HappyStreak = 0
	}
	return next
}

type SkipResult struct {
	UpdatedPet Pet           `json:"updated_pet"`
	Events     []DomainEvent `json:"events"`
	ResultCode ResultCode    `json:"result_code"`
	DayCrossed bool          `json:"day_crossed"`
}

// SkipToNextDay fast-forwards the clock to 07:00 by shifting createdAt
// backward, at a flat stat cost. Valid only during sleep hours; otherwise the
// pet comes back unchanged with an UNAVAILABLE result. DaysPassed is bumped
// here only when the game day strictly increased, so a skip that lands on the
// same day cannot inflate the counter.
func SkipToNextDay(p Pet, now time.Time) SkipResult {
	gt := GameTimeAt(p.CreatedAt, now)
	if !SleepHours(gt.Hour) {
		return SkipResult{UpdatedPet: p, ResultCode: ResultUnavailable}
	}

	priorDay := GameDayAt(p.CreatedAt, now)

	currentMinute := gt.Hour*60 + gt.Minute
	var minutesUntilMorning int
	if gt.Hour >= sleepStartHour {
		// Across midnight to 07:00 of the next day.
		minutesUntilMorning = (MinutesPerDay - currentMinute) + DayStartMinute
	} else {
		// Early morning, same day.
		minutesUntilMorning = DayStartMinute - currentMinute
	}

	skipMs := int64(minutesUntilMorning) * 1000 / GameMinutesPerSecond

	next := p
	next.CreatedAt = p.CreatedAt.Add(-time.Duration(skipMs) * time.Millisecond)
	next.CompletedToday = map[ActionID]bool{}
	next.Needs.Hunger = floorStat(next.Needs.Hunger - SkipHungerPenalty)
	next.Needs.Energy = floorStat(next.Needs.Energy - SkipEnergyPenalty)
	next.Needs.Hygiene = floorStat(next.Needs.Hygiene - SkipHygienePenalty)

	newDay := GameDayAt(next.CreatedAt, now)
	next.LastGameDay = newDay
	crossed := newDay > priorDay
	if crossed {
		next.DaysPassed = p.DaysPassed + 1
		if p.Needs.Happiness > 80 {
			next.HappyStreak = p.HappyStreak + 1
		} else {
			next.HappyStreak = 0
		}
	}

	events := []DomainEvent{{
		Type:       "day_skipped",
		OccurredAt: now,
		Payload: map[string]any{
			"prior_day":   priorDay,
			"new_day":     newDay,
			"day_crossed": crossed,
		},
	}}

	return SkipResult{UpdatedPet: next, Events: events, ResultCode: ResultOK, DayCrossed: crossed}
}
