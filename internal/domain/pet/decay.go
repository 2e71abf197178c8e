package pet

import "time"

// Decay applies time-proportional need reduction for whole elapsed real
// minutes since lastUpdate. Less than one full minute is a no-op; each stat is
// computed from the pre-decay snapshot and floored at zero. Decay never raises
// a stat and never grants experience.
func Decay(p Pet, lastUpdate, now time.Time) Pet {
	minutes := now.Sub(lastUpdate).Milliseconds() / 60000
	if minutes <= 0 {
		return p
	}
	m := float64(minutes)

	next := p
	next.Needs = Needs{
		Hunger:    floorStat(p.Needs.Hunger - HungerDecayPerMinute*m),
		Happiness: floorStat(p.Needs.Happiness - HappinessDecayPerMinute*m),
		Energy:    floorStat(p.Needs.Energy - EnergyDecayPerMinute*m),
		Hygiene:   floorStat(p.Needs.Hygiene - HygieneDecayPerMinute*m),
		Health:    floorStat(p.Needs.Health - HealthDecayPerMinute*m),
	}
	return next
}
