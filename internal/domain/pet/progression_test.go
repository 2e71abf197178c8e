package pet

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		experience int
		want       int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{450, 5},
		{900, 10},
		{-10, 1},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.experience); got != tc.want {
			t.Fatalf("LevelFor(%d) = %d, want %d", tc.experience, got, tc.want)
		}
	}
}

func TestStageFor(t *testing.T) {
	cases := []struct {
		level int
		want  Stage
	}{
		{1, StageBaby},
		{4, StageBaby},
		{5, StageChild},
		{9, StageChild},
		{10, StageAdult},
		{50, StageAdult},
	}
	for _, tc := range cases {
		if got := StageFor(tc.level); got != tc.want {
			t.Fatalf("StageFor(%d) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestDeriveView_SickWinsOverEverything(t *testing.T) {
	p := Pet{Name: "Mochi", Needs: Needs{Health: 20, Hunger: 5, Hygiene: 5, Energy: 5, Happiness: 5}}

	view := DeriveView(p)
	if view.Mood != MoodSick {
		t.Fatalf("expected sick to win the cascade, got %s", view.Mood)
	}
	if view.Color != "red" {
		t.Fatalf("expected red, got %s", view.Color)
	}
}

func TestDeriveView_PriorityOrder(t *testing.T) {
	base := Needs{Health: 80, Hunger: 80, Hygiene: 80, Energy: 50, Happiness: 50}

	cases := []struct {
		name  string
		tweak func(*Needs)
		want  Mood
	}{
		{"hungry", func(n *Needs) { n.Hunger = 10 }, MoodHungry},
		{"dirty", func(n *Needs) { n.Hygiene = 10 }, MoodDirty},
		{"tired", func(n *Needs) { n.Energy = 10 }, MoodTired},
		{"sad", func(n *Needs) { n.Happiness = 10 }, MoodSad},
		{"energetic", func(n *Needs) { n.Energy = 90; n.Happiness = 90 }, MoodEnergetic},
		{"content", func(n *Needs) { n.Happiness = 70 }, MoodHappy},
	}
	for _, tc := range cases {
		needs := base
		tc.tweak(&needs)
		view := DeriveView(Pet{Name: "Mochi", Needs: needs})
		if view.Mood != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, view.Mood)
		}
	}
}

func TestDeriveView_HungryBeatsDirty(t *testing.T) {
	p := Pet{Name: "Mochi", Needs: Needs{Health: 80, Hunger: 10, Hygiene: 10, Energy: 50, Happiness: 50}}

	if view := DeriveView(p); view.Mood != MoodHungry {
		t.Fatalf("expected hungry to outrank dirty, got %s", view.Mood)
	}
}

func TestDeriveView_DefaultIsHappy(t *testing.T) {
	p := Pet{Name: "Mochi", Needs: Needs{Health: 50, Hunger: 40, Hygiene: 50, Energy: 50, Happiness: 50}}

	view := DeriveView(p)
	if view.Mood != MoodHappy {
		t.Fatalf("expected default happy, got %s", view.Mood)
	}
}

func TestSpeciesEmoji(t *testing.T) {
	if got := SpeciesEmoji(SpeciesCat, StageAdult); got != "🐈" {
		t.Fatalf("expected adult cat emoji, got %s", got)
	}
	if got := SpeciesEmoji(Species("dragon"), StageBaby); got != "🐾" {
		t.Fatalf("expected paw fallback for unknown species, got %s", got)
	}
}
