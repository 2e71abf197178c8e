package pet

import "time"

type Period string

const (
	PeriodDay   Period = "day"
	PeriodNight Period = "night"
)

// GameTime is a point on the in-game clock.
type GameTime struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Period Period `json:"period"`
}

// One real second elapses as 12 game minutes, so a 1440-minute game day
// compresses into 120 real seconds. The clock starts at 07:00 at createdAt.
const (
	GameMinutesPerSecond = 12
	MinutesPerDay        = 24 * 60
	DayStartMinute       = 7 * 60

	// Display period boundary: day runs 07:00-20:00.
	dayStartHour = 7
	dayEndHour   = 20

	// Sleep-hours gate: 20:00-06:00. Intentionally NOT the complement of
	// the display period; the two boundaries differ in the reference
	// behavior and are kept as separate predicates.
	sleepStartHour = 20
	sleepEndHour   = 6
)

func elapsedGameMinutes(createdAt, now time.Time) int64 {
	ms := now.Sub(createdAt).Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return ms * GameMinutesPerSecond / 1000
}

// GameTimeAt maps the pet's creation instant and the current instant to the
// in-game wall clock.
func GameTimeAt(createdAt, now time.Time) GameTime {
	minuteOfDay := (elapsedGameMinutes(createdAt, now) + DayStartMinute) % MinutesPerDay
	hour := int(minuteOfDay / 60)
	minute := int(minuteOfDay % 60)
	period := PeriodNight
	if hour >= dayStartHour && hour < dayEndHour {
		period = PeriodDay
	}
	return GameTime{Hour: hour, Minute: minute, Period: period}
}

// GameDayAt is the 1-based game day number, a step function of elapsed real
// time that increases exactly once per 120 real seconds.
func GameDayAt(createdAt, now time.Time) int {
	return int(elapsedGameMinutes(createdAt, now)/MinutesPerDay) + 1
}

// SleepHours reports whether the action-availability gate considers the given
// game hour nighttime. Distinct from GameTime.Period by one hour at dawn.
func SleepHours(hour int) bool {
	return hour >= sleepStartHour || hour < sleepEndHour
}

// IsSleepTime is SleepHours evaluated on the current clock.
func IsSleepTime(createdAt, now time.Time) bool {
	return SleepHours(GameTimeAt(createdAt, now).Hour)
}
