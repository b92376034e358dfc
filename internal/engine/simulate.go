package engine

import (
	"fmt"
	"math"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

// MaxTurns is the hard iteration ceiling. It guarantees termination even
// when no side can reach zero hp (e.g. mutual stun lock) and must never be
// removed.
const MaxTurns = 60

// Simulate runs a complete battle between the two snapshots and returns
// the turn-by-turn record. The call is pure: it owns the two fighter
// states it derives, performs no I/O and draws all randomness from rng.
//
// The first acting side is whichever fighter has spd greater than or equal
// to the other's, ties favoring the player. If the turn ceiling is
// exhausted with neither side at zero hp the opponent wins; outlasting the
// challenger is a deliberate house-always-wins policy.
func Simulate(player, opponent battle.Snapshot, rng RNG) *battle.Record {
	playerSnap := player.Normalized()
	opponentSnap := opponent.Normalized()

	pf := battle.NewFighter(playerSnap)
	nf := battle.NewFighter(opponentSnap)
	ApplyBaseStatBonuses(pf)
	ApplyBaseStatBonuses(nf)

	rec := &battle.Record{
		Player:   playerSnap,
		Opponent: opponentSnap,
	}

	acting := battle.SideN
	if pf.Spd >= nf.Spd {
		acting = battle.SideP
	}

	var winner battle.Side
	for len(rec.Turns) < MaxTurns {
		atk, def := pf, nf
		if acting == battle.SideN {
			atk, def = nf, pf
		}
		turn := battle.Turn{Side: acting}

		// Damage-over-time resolves on the afflicted fighter's own turn.
		if dot := atk.Status.TickDots(); dot > 0 {
			atk.ApplyDamage(dot)
			turn.Log = append(turn.Log, fmt.Sprintf("%s takes %d damage from lingering effects", atk.Name, dot))
		}
		atk.Status.DecrementTimers()

		if atk.HP <= 0 {
			turn.Log = append(turn.Log, atk.Name+" collapses")
			rec.Turns = append(rec.Turns, turn)
			winner = acting.Other()
			break
		}

		if atk.Status.ActionBlocked() {
			turn.Log = append(turn.Log, atk.Name+" is unable to act")
			rec.Turns = append(rec.Turns, turn)
			acting = acting.Other()
			continue
		}

		entry := pickAction(buildActionPool(atk), rng)
		turn.Action = entry.kind
		turn.ActionID = entry.id

		res := resolveAction(atk, def, entry, rng)
		turn.Log = append(turn.Log, res.log...)

		hitRate := res.hitRate
		if def.Status.Invincible > 0 {
			hitRate = 0
			turn.Log = append(turn.Log, def.Name+" fully blocks the attack")
		}
		dmg := float64(res.damage)
		if atk.Status.Afterimage > 0 {
			dmg *= 1.2
		}

		hit := rng.Next() < hitRate
		final := 0
		if hit {
			if rng.Next() >= 1-float64(atk.Agi)*0.005 {
				turn.Crit = true
				dmg *= 1.5
				turn.Log = append(turn.Log, "a critical hit!")
			}
			if def.HasSkill("s6") {
				dmg *= 0.8
			}
			final = int(math.Floor(dmg))
			if def.HasSkill("s16") && def.HP > 1 && final >= def.HP && !def.Status.Triggered["s16"] {
				final = def.HP - 1
				def.Status.Triggered["s16"] = true
				turn.Log = append(turn.Log, def.Name+" refuses to fall")
			}
			if res.heal > 0 {
				turn.Heal = atk.Heal(res.heal)
				turn.Log = append(turn.Log, fmt.Sprintf("%s recovers %d hp", atk.Name, turn.Heal))
			}
			if final > 0 && atk.HasSkill("s8") {
				if drained := int(math.Floor(float64(final) * 0.3)); drained > 0 {
					atk.Heal(drained)
					turn.Log = append(turn.Log, fmt.Sprintf("%s drains %d hp", atk.Name, drained))
				}
			}
			if final > 0 {
				def.ApplyDamage(final)
				turn.Log = append(turn.Log, fmt.Sprintf("%s takes %d damage", def.Name, final))
			}
			def.Apply(res.change)
			turn.Change = res.change
		} else {
			// A missed disarm-type action voids its defender-directed
			// effect even though the skill was already marked used during
			// resolution.
			turn.Change = res.change.SelfOnly()
			turn.Log = append(turn.Log, atk.Name+"'s attack misses")
		}
		// Self-directed buffs land on use, hit or miss.
		atk.ApplySelf(res.change)
		turn.Hit = hit
		turn.Damage = final
		rec.Turns = append(rec.Turns, turn)

		if def.HP <= 0 {
			winner = acting
			break
		}
		acting = acting.Other()
	}

	if winner == "" {
		winner = battle.SideN
	}
	rec.Winner = winner
	rec.TurnCount = len(rec.Turns)
	return rec
}
