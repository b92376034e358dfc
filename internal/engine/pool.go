package engine

import (
	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
)

const (
	weightSkill  = 30.0
	weightWeapon = 50.0
	weightPunch  = 20.0
)

type actionEntry struct {
	kind   battle.ActionType
	id     string
	weight float64
}

// buildActionPool assembles the weighted candidate actions for a turn:
// every selectable skill not yet consumed, every owned weapon unless the
// fighter is disarmed, and always the unarmed punch.
func buildActionPool(f *battle.Fighter) []actionEntry {
	pool := make([]actionEntry, 0, len(f.Skills)+len(f.Weapons)+1)
	for _, id := range f.Skills {
		sk := catalog.FindSkill(id)
		if sk == nil || !sk.Selectable() {
			continue
		}
		if f.Status.UsedSkills[id] {
			continue
		}
		pool = append(pool, actionEntry{kind: battle.ActionSkill, id: id, weight: weightSkill})
	}
	if f.Status.Disarmed == 0 {
		for _, id := range f.Weapons {
			pool = append(pool, actionEntry{kind: battle.ActionWeapon, id: id, weight: weightWeapon})
		}
	}
	pool = append(pool, actionEntry{kind: battle.ActionPunch, weight: weightPunch})
	return pool
}

// pickAction draws one entry via cumulative-weight sampling. If rounding
// exhausts the pool the last entry is returned.
func pickAction(pool []actionEntry, rng RNG) actionEntry {
	total := 0.0
	for _, e := range pool {
		total += e.weight
	}
	r := rng.Next() * total
	acc := 0.0
	for _, e := range pool {
		acc += e.weight
		if r < acc {
			return e
		}
	}
	return pool[len(pool)-1]
}
