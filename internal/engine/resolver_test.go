package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

func fighter(str, agi int, weapons, skills []string) *battle.Fighter {
	return battle.NewFighter(battle.Snapshot{
		Name: "f", Level: 1, HP: 100, MaxHP: 100,
		Str: str, Agi: agi, Spd: 5,
		Weapons: weapons, Skills: skills,
	})
}

func TestBaseHitRate(t *testing.T) {
	atk := fighter(10, 12, nil, nil)
	def := fighter(10, 7, nil, nil)
	assert.InDelta(t, 0.80, baseHitRate(atk, def), 1e-9)

	def.Skills = []string{"s7"}
	assert.InDelta(t, 0.73, baseHitRate(atk, def), 1e-9, "evasion passive shaves 0.07")
}

func TestResolveWeapon_ConsumesAndScales(t *testing.T) {
	atk := fighter(10, 5, []string{"w5"}, nil)
	def := fighter(10, 5, nil, nil)

	res := resolveWeapon(atk, def, "w5", NewScript(0))

	assert.Empty(t, atk.Weapons, "weapon is consumed on use")
	// min roll 10 plus floor(10*0.5).
	assert.Equal(t, 15, res.damage)
	assert.True(t, res.change.Empty())
}

func TestResolveWeapon_HeavyMastery(t *testing.T) {
	atk := fighter(10, 5, []string{"w2"}, []string{"s20"})
	def := fighter(10, 5, nil, nil)

	res := resolveWeapon(atk, def, "w2", NewScript(0))

	// (10 + 5) * 1.3 floored; mastery applies to LARGE weapons only.
	assert.Equal(t, 19, res.damage)

	atk2 := fighter(10, 5, []string{"w5"}, []string{"s20"})
	res2 := resolveWeapon(atk2, def, "w5", NewScript(0))
	assert.Equal(t, 15, res2.damage, "MEDIUM weapons are unaffected")
}

func TestResolveWeapon_GlueAlwaysSticks(t *testing.T) {
	atk := fighter(4, 5, []string{"w23"}, nil)
	def := fighter(10, 5, nil, nil)

	res := resolveWeapon(atk, def, "w23", NewScript(0))

	assert.Equal(t, 3, res.change.Sticky)
}

func TestResolveWeapon_ChanceGatedStun(t *testing.T) {
	def := fighter(10, 5, nil, nil)

	// First rng value is the damage roll, second the 20% stun gate.
	atk := fighter(10, 5, []string{"w3"}, nil)
	res := resolveWeapon(atk, def, "w3", NewScript(0, 0.10))
	assert.Equal(t, 2, res.change.Stunned, "roll under 0.20 stuns")

	atk = fighter(10, 5, []string{"w3"}, nil)
	res = resolveWeapon(atk, def, "w3", NewScript(0, 0.50))
	assert.Zero(t, res.change.Stunned, "roll over 0.20 does not stun")
}

func TestResolveWeapon_UnknownIDDegradesToPunch(t *testing.T) {
	atk := fighter(10, 5, []string{"w99"}, nil)
	def := fighter(10, 5, nil, nil)

	res := resolveWeapon(atk, def, "w99", NewScript(0))

	assert.Equal(t, 8, res.damage, "falls back to unarmed damage")
	assert.True(t, res.change.Empty())
}

func TestResolveSkill_Barrage(t *testing.T) {
	atk := fighter(10, 5, []string{"w13", "w1", "w14", "w15", "w16"}, []string{"s18"})
	def := fighter(10, 5, nil, nil)

	res := resolveSkill(atk, def, "s18", NewScript(0))

	// Three THROW weapons consumed (w13, w14, w15); damage is the sum of
	// their max damage: 12+9+10. The LARGE w1 and the fourth throw stay.
	assert.Equal(t, 31, res.damage)
	assert.ElementsMatch(t, []string{"w1", "w16"}, atk.Weapons)
	assert.True(t, atk.Status.UsedSkills["s18"], "special skills are single-use")
}

func TestResolveSkill_BarrageWithoutThrows(t *testing.T) {
	atk := fighter(10, 5, []string{"w1"}, []string{"s18"})
	def := fighter(10, 5, nil, nil)

	res := resolveSkill(atk, def, "s18", NewScript(0))

	assert.Zero(t, res.damage)
	assert.Equal(t, []string{"w1"}, atk.Weapons)
	require.NotEmpty(t, res.log)
	assert.Contains(t, res.log[0], "finds none")
}

func TestResolveSkill_SeizeTransfersNothingToAttacker(t *testing.T) {
	atk := fighter(10, 5, nil, []string{"s17"})
	def := fighter(10, 5, []string{"w5", "w9"}, nil)

	res := resolveSkill(atk, def, "s17", NewScript(0))

	assert.True(t, res.change.SeizeWeapons)
	assert.Empty(t, atk.Weapons, "seized weapons are voided, never looted")
	assert.Len(t, def.Weapons, 2, "defender list is only emptied when the payload is applied")
}

func TestResolveSkill_Drain(t *testing.T) {
	atk := fighter(21, 5, nil, []string{"s15"})
	def := fighter(10, 5, nil, nil)

	res := resolveSkill(atk, def, "s15", NewScript(0))

	assert.Equal(t, 21, res.damage)
	assert.Equal(t, 10, res.heal)
	assert.False(t, atk.Status.UsedSkills["s15"], "active skills are reusable")
}

func TestResolveSkill_UnknownIDDegradesToPunch(t *testing.T) {
	atk := fighter(10, 5, nil, []string{"s99"})
	def := fighter(10, 5, nil, nil)

	res := resolveSkill(atk, def, "s99", NewScript(0))

	assert.Equal(t, 8, res.damage)
	assert.True(t, res.change.Empty())
}
