package engine

import "github.com/letmeNo1/jabobo-fight-sub000/internal/battle"

// ApplyBaseStatBonuses folds BASE_STAT skill bonuses into a fighter's
// working stats. It must run exactly once per fighter, immediately after
// the fighter is created; the bonuses are permanent for the battle's
// duration and are not status timers. Skills the fighter does not own are
// simply absent from the mutation.
func ApplyBaseStatBonuses(f *battle.Fighter) {
	for _, id := range f.Skills {
		switch id {
		case "s1":
			f.Str += 5
		case "s2":
			f.Agi += 5
		case "s3":
			f.Spd += 5
		case "s4":
			f.HP += 20
			f.MaxHP += 20
		case "s5":
			f.Str += 2
			f.Agi += 2
			f.Spd += 2
		}
	}
}
