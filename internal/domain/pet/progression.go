package pet

import "fmt"

// LevelFor derives the level from accumulated experience.
func LevelFor(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/ExperiencePerLevel + 1
}

// StageFor derives the life stage from the level.
func StageFor(level int) Stage {
	switch {
	case level < ChildLevel:
		return StageBaby
	case level < AdultLevel:
		return StageChild
	default:
		return StageAdult
	}
}

// DeriveView runs the mood cascade over the five needs. The order is a strict
// priority chain: the first matching condition wins, health problems first.
func DeriveView(p Pet) View {
	n := p.Needs
	switch {
	case n.Health < SickHealthBelow:
		return View{Mood: MoodSick, Emoji: "🤒", Message: fmt.Sprintf("%s is feeling sick and needs a vet visit!", p.Name), Color: "red"}
	case n.Hunger < HungryHungerBelow:
		return View{Mood: MoodHungry, Emoji: "😋", Message: fmt.Sprintf("%s is very hungry!", p.Name), Color: "orange"}
	case n.Hygiene < DirtyHygieneBelow:
		return View{Mood: MoodDirty, Emoji: "🫧", Message: fmt.Sprintf("%s needs a bath!", p.Name), Color: "gray"}
	case n.Energy < TiredEnergyBelow:
		return View{Mood: MoodTired, Emoji: "😴", Message: fmt.Sprintf("%s is exhausted and needs rest.", p.Name), Color: "gray"}
	case n.Happiness < SadHappinessBelow:
		return View{Mood: MoodSad, Emoji: "😢", Message: fmt.Sprintf("%s is feeling sad. Play with them!", p.Name), Color: "blue"}
	case n.Energy > EnergeticEnergyOver && n.Happiness > EnergeticJoyOver:
		return View{Mood: MoodEnergetic, Emoji: "🤩", Message: fmt.Sprintf("%s is full of energy and joy!", p.Name), Color: "green"}
	case n.Happiness > ContentHappinessOver && n.Health > ContentHealthOver && n.Hunger > ContentHungerOver:
		return View{Mood: MoodHappy, Emoji: "😊", Message: fmt.Sprintf("%s is happy and healthy!", p.Name), Color: "green"}
	default:
		return View{Mood: MoodHappy, Emoji: "😊", Message: fmt.Sprintf("%s is doing great!", p.Name), Color: "green"}
	}
}

var speciesEmoji = map[Species]map[Stage]string{
	SpeciesDog:     {StageBaby: "🐕", StageChild: "🐕", StageAdult: "🐕"},
	SpeciesCat:     {StageBaby: "🐱", StageChild: "🐱", StageAdult: "🐈"},
	SpeciesRabbit:  {StageBaby: "🐰", StageChild: "🐰", StageAdult: "🐇"},
	SpeciesHamster: {StageBaby: "🐹", StageChild: "🐹", StageAdult: "🐹"},
}

// SpeciesEmoji is display-only; species never influences the simulation.
func SpeciesEmoji(species Species, stage Stage) string {
	if byStage, ok := speciesEmoji[species]; ok {
		if emoji, ok := byStage[stage]; ok {
			return emoji
		}
	}
	return "🐾"
}
