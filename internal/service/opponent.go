package service

import (
	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/engine"
)

var opponentNames = []string{
	"street tough", "back-alley brawler", "retired boxer", "masked vagrant",
	"cranky shopkeeper", "wandering monk", "scrapyard bully", "night-shift guard",
	"dumpling chef", "umbrella duelist",
}

// GenerateOpponent builds a procedurally generated NPC snapshot scaled to
// the player's level. All randomness comes from the injected rng, so a
// scripted source yields a reproducible opponent.
func GenerateOpponent(playerLevel int, rng engine.RNG) battle.Snapshot {
	if playerLevel < 1 {
		playerLevel = 1
	}
	// Opponent level within one of the player's.
	level := playerLevel - 1 + int(rng.Next()*3)
	if level < 1 {
		level = 1
	}

	maxHP := 40 + level*12 + int(rng.Next()*20)
	str := 4 + level*2 + int(rng.Next()*4)
	agi := 3 + level + int(rng.Next()*4)
	spd := 3 + level + int(rng.Next()*4)

	weapons := pickWeapons(level, rng)
	skills := pickSkills(level, rng)

	name := opponentNames[int(rng.Next()*float64(len(opponentNames)))]
	return battle.Snapshot{
		Name:    name,
		Level:   level,
		HP:      maxHP,
		MaxHP:   maxHP,
		Str:     str,
		Agi:     agi,
		Spd:     spd,
		Weapons: weapons,
		Skills:  skills,
	}.Normalized()
}

func pickWeapons(level int, rng engine.RNG) []string {
	all := catalog.Weapons()
	count := 1 + level/3
	if count > 4 {
		count = 4
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		w := all[int(rng.Next()*float64(len(all)))]
		out = append(out, w.ID)
	}
	return out
}

// pickSkills hands out skills whose min-level gate the opponent satisfies.
// The gate lives here, in the loadout assembler, not in the engine.
func pickSkills(level int, rng engine.RNG) []string {
	eligible := make([]catalog.Skill, 0)
	for _, s := range catalog.Skills() {
		if s.MinLevel <= level {
			eligible = append(eligible, s)
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	count := 1 + level/2
	if count > 5 {
		count = 5
	}
	out := make([]string, 0, count)
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		s := eligible[int(rng.Next()*float64(len(eligible)))]
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s.ID)
	}
	return out
}
