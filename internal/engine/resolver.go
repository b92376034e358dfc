package engine

import (
	"fmt"
	"math"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
)

// resolution is the uniform result every per-id branch produces: the hit
// rate, the raw damage before the shared pipeline multipliers, an optional
// self-heal, the status-change payload and the log fragments. The resolver
// does not touch hp; the only state it mutates is inventory consumption
// (weapon removal, single-use skill marking), which is tied to the catalog
// entry itself.
type resolution struct {
	hitRate float64
	damage  int
	heal    int
	change  battle.StatusChange
	log     []string
}

// baseHitRate computes the default chance to land a hit, reduced when the
// defender owns the evasion passive.
func baseHitRate(atk, def *battle.Fighter) float64 {
	hr := 0.75 + float64(atk.Agi-def.Agi)*0.01
	if def.HasSkill("s7") {
		hr -= 0.07
	}
	if hr < 0 {
		hr = 0
	}
	if hr > 1 {
		hr = 1
	}
	return hr
}

// resolveAction dispatches the chosen pool entry to its per-id branch.
func resolveAction(atk, def *battle.Fighter, entry actionEntry, rng RNG) resolution {
	switch entry.kind {
	case battle.ActionSkill:
		return resolveSkill(atk, def, entry.id, rng)
	case battle.ActionWeapon:
		return resolveWeapon(atk, def, entry.id, rng)
	default:
		return resolvePunch(atk, def)
	}
}

// resolvePunch is the unarmed fallback: flat str-scaled damage at the base
// hit rate. Unknown catalog ids also degrade to this.
func resolvePunch(atk, def *battle.Fighter) resolution {
	return resolution{
		hitRate: baseHitRate(atk, def),
		damage:  int(math.Floor(float64(atk.Str) * 0.8)),
		log:     []string{atk.Name + " strikes with bare fists"},
	}
}

// --- Weapon table -------------------------------------------------------

// weaponEffect adjusts the default weapon resolution for one catalog id.
// Probability-gated effects draw from the rng during resolution; the
// resulting payload only lands if the final hit roll succeeds.
type weaponEffect func(atk, def *battle.Fighter, rng RNG, res *resolution)

func hitShift(delta float64) weaponEffect {
	return func(_, _ *battle.Fighter, _ RNG, res *resolution) {
		res.hitRate += delta
		if res.hitRate < 0 {
			res.hitRate = 0
		}
		if res.hitRate > 1 {
			res.hitRate = 1
		}
	}
}

func chanceStun(p float64, turns int) weaponEffect {
	return func(_, def *battle.Fighter, rng RNG, res *resolution) {
		if rng.Next() < p {
			res.change.Stunned = turns
			res.log = append(res.log, def.Name+" is knocked dizzy")
		}
	}
}

func chanceSticky(p float64, turns int) weaponEffect {
	return func(_, def *battle.Fighter, rng RNG, res *resolution) {
		if rng.Next() < p {
			res.change.Sticky = turns
			res.log = append(res.log, def.Name+" is tied up")
		}
	}
}

func chanceDisarm(p float64, turns int) weaponEffect {
	return func(_, def *battle.Fighter, rng RNG, res *resolution) {
		if rng.Next() < p {
			res.change.Disarmed = turns
			res.log = append(res.log, def.Name+" cannot hold a weapon")
		}
	}
}

func chanceDot(p float64, source string, perTick, duration int) weaponEffect {
	return func(_, def *battle.Fighter, rng RNG, res *resolution) {
		if rng.Next() < p {
			res.change.Dots = append(res.change.Dots, battle.Dot{Source: source, PerTick: perTick, Remaining: duration})
			res.log = append(res.log, fmt.Sprintf("%s will suffer %s damage", def.Name, source))
		}
	}
}

func alwaysDot(source string, perTick, duration int) weaponEffect {
	return func(_, def *battle.Fighter, _ RNG, res *resolution) {
		res.change.Dots = append(res.change.Dots, battle.Dot{Source: source, PerTick: perTick, Remaining: duration})
		res.log = append(res.log, fmt.Sprintf("%s will suffer %s damage", def.Name, source))
	}
}

func selfAfterimage(turns int) weaponEffect {
	return func(atk, _ *battle.Fighter, _ RNG, res *resolution) {
		res.change.SelfAfterimage = turns
		res.log = append(res.log, atk.Name+" fades into the smoke")
	}
}

// weaponEffects is the per-id effect table, keyed by weapon id (not class).
// Weapons without an entry resolve as plain damage.
var weaponEffects = map[string]weaponEffect{
	"w3":  chanceStun(0.20, 2),
	"w4":  hitShift(-0.10),
	"w6":  chanceDot(0.25, "bleed", 2, 3),
	"w7":  chanceStun(0.15, 2),
	"w9":  hitShift(0.10),
	"w11": chanceDot(0.30, "glass", 2, 2),
	"w12": chanceStun(0.20, 2),
	"w13": hitShift(0.05),
	"w15": hitShift(0.10),
	"w17": alwaysDot("cactus", 3, 3),
	"w18": chanceStun(0.35, 2),
	"w19": chanceSticky(0.40, 2),
	"w20": chanceDisarm(0.30, 2),
	"w21": selfAfterimage(2),
	"w22": hitShift(-0.05),
	"w23": func(_, def *battle.Fighter, _ RNG, res *resolution) {
		res.change.Sticky = 3
		res.log = append(res.log, def.Name+" is covered in glue")
	},
	"w24": alwaysDot("poison", 4, 2),
}

// resolveWeapon computes the default weapon resolution (damage roll plus
// str scaling, class mastery multiplier) and applies the per-id effect.
// The weapon is consumed from the battle-local inventory on use, hit or
// miss.
func resolveWeapon(atk, def *battle.Fighter, id string, rng RNG) resolution {
	w := catalog.FindWeapon(id)
	if w == nil {
		res := resolvePunch(atk, def)
		res.log = append([]string{atk.Name + " fumbles with an unfamiliar object"}, res.log...)
		return res
	}
	atk.RemoveWeapon(id)

	roll := w.MinDamage + int(rng.Next()*float64(w.MaxDamage-w.MinDamage+1))
	dmg := roll + int(math.Floor(float64(atk.Str)*0.5))
	if atk.HasSkill("s20") && w.Class == catalog.ClassLarge {
		dmg = int(math.Floor(float64(dmg) * 1.3))
	}
	res := resolution{
		hitRate: baseHitRate(atk, def),
		damage:  dmg,
		log:     []string{atk.Name + " attacks with the " + w.Name},
	}
	if fx, ok := weaponEffects[id]; ok {
		fx(atk, def, rng, &res)
	}
	return res
}

// --- Skill table --------------------------------------------------------

type skillResolver func(atk, def *battle.Fighter, rng RNG) resolution

// skillResolvers is the per-id branch table for selectable skills. BASE_STAT
// skills are folded at battle start and PASSIVE skills are checked in the
// hit pipeline, so neither appears here.
var skillResolvers = map[string]skillResolver{
	"s9": func(atk, def *battle.Fighter, _ RNG) resolution {
		tick := int(math.Floor(float64(atk.Str) * 0.3))
		if tick < 1 {
			tick = 1
		}
		return resolution{
			hitRate: baseHitRate(atk, def),
			damage:  int(math.Floor(float64(atk.Str) * 0.6)),
			change: battle.StatusChange{
				Dots: []battle.Dot{{Source: "scratch", PerTick: tick, Remaining: 3}},
			},
			log: []string{atk.Name + " rakes with a vicious scratch"},
		}
	},
	"s10": func(atk, def *battle.Fighter, _ RNG) resolution {
		hr := baseHitRate(atk, def) - 0.10
		if hr < 0 {
			hr = 0
		}
		return resolution{
			hitRate: hr,
			damage:  int(math.Floor(float64(atk.Str) * 1.8)),
			log:     []string{atk.Name + " winds up a heavy blow"},
		}
	},
	"s11": func(atk, def *battle.Fighter, _ RNG) resolution {
		return resolution{
			hitRate: 1.0,
			damage:  int(math.Floor(float64(atk.Str) * 1.2)),
			log:     []string{atk.Name + " strikes true, impossible to dodge"},
		}
	},
	"s12": func(atk, def *battle.Fighter, rng RNG) resolution {
		res := resolution{
			hitRate: baseHitRate(atk, def),
			damage:  int(math.Floor(float64(atk.Str) * 0.8)),
			log:     []string{atk.Name + " drives a palm at a pressure point"},
		}
		if rng.Next() < 0.40 {
			res.change.Stunned = 2
			res.log = append(res.log, def.Name+" is stunned")
		}
		return res
	},
	"s13": func(atk, def *battle.Fighter, _ RNG) resolution {
		return resolution{
			hitRate: 1.0,
			change:  battle.StatusChange{SelfAfterimage: 3},
			log:     []string{atk.Name + " splits into afterimages"},
		}
	},
	"s14": func(atk, def *battle.Fighter, _ RNG) resolution {
		return resolution{
			hitRate: 1.0,
			change:  battle.StatusChange{SelfInvincible: 2},
			log:     []string{atk.Name + " raises an impenetrable guard"},
		}
	},
	"s15": func(atk, def *battle.Fighter, _ RNG) resolution {
		dmg := atk.Str
		return resolution{
			hitRate: baseHitRate(atk, def),
			damage:  dmg,
			heal:    int(math.Floor(float64(dmg) * 0.5)),
			log:     []string{atk.Name + " drains the opponent's strength"},
		}
	},
	"s17": func(atk, def *battle.Fighter, _ RNG) resolution {
		res := resolution{
			hitRate: baseHitRate(atk, def),
			damage:  int(math.Floor(float64(atk.Str) * 0.5)),
			log:     []string{atk.Name + " lunges to seize the opponent's weapons"},
		}
		if len(def.Weapons) > 0 {
			res.change.SeizeWeapons = true
			res.log = append(res.log, fmt.Sprintf("%s loses all %d weapons", def.Name, len(def.Weapons)))
		} else {
			res.log = append(res.log, def.Name+" has no weapon to seize")
		}
		return res
	},
	"s18": func(atk, def *battle.Fighter, _ RNG) resolution {
		// Consume up to three THROW-class weapons from the attacker's
		// battle-local list; the barrage damage is the sum of their max
		// damage.
		thrown := make([]string, 0, 3)
		dmg := 0
		for _, id := range atk.Weapons {
			if len(thrown) == 3 {
				break
			}
			w := catalog.FindWeapon(id)
			if w == nil || w.Class != catalog.ClassThrow {
				continue
			}
			thrown = append(thrown, id)
			dmg += w.MaxDamage
		}
		for _, id := range thrown {
			atk.RemoveWeapon(id)
		}
		if len(thrown) == 0 {
			return resolution{
				hitRate: baseHitRate(atk, def),
				log:     []string{atk.Name + " reaches for throwing weapons but finds none"},
			}
		}
		return resolution{
			hitRate: baseHitRate(atk, def),
			damage:  dmg,
			log:     []string{fmt.Sprintf("%s hurls %d weapons in a barrage", atk.Name, len(thrown))},
		}
	},
	"s19": func(atk, def *battle.Fighter, _ RNG) resolution {
		return resolution{
			hitRate: 1.0,
			heal:    int(math.Floor(float64(atk.MaxHP) * 0.3)),
			log:     []string{atk.Name + " focuses and recovers"},
		}
	},
}

// resolveSkill looks up the per-id branch for a selectable skill. Single-use
// skills are marked consumed here, before the hit roll, so a missed seize
// is still spent. Unknown or non-selectable ids degrade to an unarmed
// action.
func resolveSkill(atk, def *battle.Fighter, id string, rng RNG) resolution {
	sk := catalog.FindSkill(id)
	fn, ok := skillResolvers[id]
	if sk == nil || !ok {
		res := resolvePunch(atk, def)
		res.log = append([]string{atk.Name + " hesitates, the technique escapes them"}, res.log...)
		return res
	}
	if sk.SingleUse() {
		atk.Status.UsedSkills[id] = true
	}
	return fn(atk, def, rng)
}
