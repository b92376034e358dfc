package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

func snap(name string, str, agi, spd, hp int, weapons, skills []string) battle.Snapshot {
	return battle.Snapshot{
		Name: name, Level: 1,
		HP: hp, MaxHP: hp,
		Str: str, Agi: agi, Spd: spd,
		Weapons: weapons, Skills: skills,
	}
}

func TestSimulate_UnarmedPunchScenario(t *testing.T) {
	player := snap("hero", 20, 10, 10, 300, nil, nil)
	opponent := snap("thug", 5, 5, 5, 50, nil, nil)

	rec := Simulate(player, opponent, NewScript(0))

	require.Equal(t, battle.SideP, rec.Winner)
	require.Equal(t, battle.SideP, rec.Turns[0].Side, "faster fighter acts first")
	assert.LessOrEqual(t, len(rec.Turns), 10, "expected a short battle")
	for _, turn := range rec.Turns {
		if turn.Side != battle.SideP {
			continue
		}
		assert.Equal(t, battle.ActionPunch, turn.Action)
		assert.Equal(t, 16, turn.Damage, "punch damage is floor(20*0.8)")
	}
}

func TestSimulate_FirstMoverRule(t *testing.T) {
	cases := []struct {
		name       string
		pSpd, nSpd int
		want       battle.Side
	}{
		{"player faster", 10, 5, battle.SideP},
		{"opponent faster", 5, 10, battle.SideN},
		{"tie favors player", 7, 7, battle.SideP},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Simulate(
				snap("p", 5, 5, tc.pSpd, 100, nil, nil),
				snap("n", 5, 5, tc.nSpd, 100, nil, nil),
				NewScript(0),
			)
			assert.Equal(t, tc.want, rec.Turns[0].Side)
		})
	}
}

func TestSimulate_CeilingExhaustionFavorsOpponent(t *testing.T) {
	// 0.99 always selects the last pool entry (punch) and always misses
	// the 0.75 base hit roll, so neither side ever lands damage.
	rec := Simulate(
		snap("p", 20, 0, 10, 100, nil, nil),
		snap("n", 20, 0, 5, 100, nil, nil),
		NewScript(0.99),
	)
	require.Len(t, rec.Turns, MaxTurns)
	assert.Equal(t, battle.SideN, rec.Winner)
	for _, turn := range rec.Turns {
		assert.False(t, turn.Hit)
		assert.Zero(t, turn.Damage)
	}
}

func TestSimulate_DeterministicReplay(t *testing.T) {
	player := snap("p", 18, 9, 8, 140, []string{"w3", "w23", "w17"}, []string{"s5", "s9", "s12", "s17"})
	opponent := snap("n", 15, 7, 6, 120, []string{"w5", "w13"}, []string{"s6", "s10", "s19"})

	a := Simulate(player, opponent, NewSeededRNG(42))
	b := Simulate(player, opponent, NewSeededRNG(42))

	require.Equal(t, a.Winner, b.Winner)
	if !reflect.DeepEqual(a.Turns, b.Turns) {
		t.Fatalf("identical seeds must produce identical turn sequences")
	}
}

func TestSimulate_BaseStatSkillRaisesDamage(t *testing.T) {
	// s5 grants +2 str, observable through punch damage: floor(22*0.8)=17.
	rec := Simulate(
		snap("p", 20, 0, 10, 300, nil, []string{"s5"}),
		snap("n", 0, 0, 5, 100, nil, nil),
		NewScript(0),
	)
	require.Equal(t, battle.SideP, rec.Turns[0].Side)
	assert.Equal(t, 17, rec.Turns[0].Damage)
}

func TestSimulate_DeathfaceClampsOncePerBattle(t *testing.T) {
	// Attacker punches for floor(63*0.8)=50 raw; defender sits at 10 hp
	// with the deathface passive. The first lethal hit clamps to hp-1=9,
	// the second is allowed through.
	rec := Simulate(
		snap("p", 63, 0, 10, 300, nil, nil),
		snap("n", 0, 0, 5, 10, nil, []string{"s16"}),
		NewScript(0),
	)
	require.Equal(t, battle.SideP, rec.Winner)

	var playerHits []int
	for _, turn := range rec.Turns {
		if turn.Side == battle.SideP && turn.Hit {
			playerHits = append(playerHits, turn.Damage)
		}
	}
	require.Len(t, playerHits, 2)
	assert.Equal(t, 9, playerHits[0], "lethal hit clamps to hp-1")
	assert.Equal(t, 50, playerHits[1], "clamp must not trigger twice")
}

func TestSimulate_GlueStickyTimeline(t *testing.T) {
	// A glue hit sets sticky=3 on the defender: its next two turns are
	// lost, the third resumes normal action selection.
	rec := Simulate(
		snap("p", 0, 0, 10, 100, []string{"w23"}, nil),
		snap("n", 0, 0, 5, 100, nil, nil),
		NewScript(0),
	)
	require.GreaterOrEqual(t, len(rec.Turns), 6)
	require.Equal(t, battle.ActionWeapon, rec.Turns[0].Action)
	require.Equal(t, "w23", rec.Turns[0].ActionID)
	require.True(t, rec.Turns[0].Hit)
	assert.Equal(t, 3, rec.Turns[0].Change.Sticky, "the applied payload is recorded on the turn")

	assert.Equal(t, battle.SideN, rec.Turns[1].Side)
	assert.Equal(t, battle.ActionNone, rec.Turns[1].Action, "first stuck turn")
	assert.Equal(t, battle.ActionNone, rec.Turns[3].Action, "second stuck turn")
	assert.Equal(t, battle.ActionPunch, rec.Turns[5].Action, "timer expired, action resumes")
}

func TestSimulate_SmokeBombCloaksEvenOnMiss(t *testing.T) {
	// Script: pick w21, damage roll, missed hit roll (0.9 > 0.75); then a
	// missed opponent punch; then a landed player punch with no crit. The
	// smoke bomb's afterimage is self-directed, so it survives the miss and
	// boosts the follow-up punch: floor(floor(10*0.8)*1.2) = 9.
	rec := Simulate(
		snap("p", 10, 0, 10, 100, []string{"w21"}, nil),
		snap("n", 0, 0, 5, 100, nil, nil),
		NewScript(0, 0, 0.9, 0, 0.9, 0, 0, 0),
	)

	first := rec.Turns[0]
	require.Equal(t, battle.ActionWeapon, first.Action)
	require.Equal(t, "w21", first.ActionID)
	require.False(t, first.Hit)
	assert.Equal(t, 2, first.Change.SelfAfterimage, "self-buffs land on use, not on hit")
	assert.Equal(t, first.Change.SelfOnly(), first.Change, "no defender-directed payload on a miss")

	require.Equal(t, battle.SideP, rec.Turns[2].Side)
	require.True(t, rec.Turns[2].Hit)
	assert.Equal(t, 9, rec.Turns[2].Damage, "afterimage boosts the next attack")
}

func TestSimulate_SeizeWithNoWeapons(t *testing.T) {
	rec := Simulate(
		snap("p", 10, 0, 10, 100, nil, []string{"s17"}),
		snap("n", 0, 0, 5, 100, nil, nil),
		NewScript(0),
	)
	first := rec.Turns[0]
	require.Equal(t, battle.ActionSkill, first.Action)
	require.Equal(t, "s17", first.ActionID)
	assert.Contains(t, first.Log, "n has no weapon to seize")

	// The single-use skill is consumed: no later player turn re-selects it.
	for _, turn := range rec.Turns[1:] {
		if turn.Side == battle.SideP {
			assert.NotEqual(t, "s17", turn.ActionID)
		}
	}
}

func TestSimulate_InvariantsHoldAcrossSeeds(t *testing.T) {
	player := snap("p", 14, 8, 9, 150, []string{"w1", "w9", "w24"}, []string{"s1", "s9", "s14", "s18"})
	opponent := snap("n", 16, 6, 7, 150, []string{"w4", "w19"}, []string{"s7", "s12", "s16"})

	for seed := int64(0); seed < 25; seed++ {
		rec := Simulate(player, opponent, NewSeededRNG(seed))
		require.LessOrEqual(t, rec.TurnCount, MaxTurns)
		require.Contains(t, []battle.Side{battle.SideP, battle.SideN}, rec.Winner)
		for _, turn := range rec.Turns {
			require.GreaterOrEqual(t, turn.Damage, 0)
			if !turn.Hit {
				require.Zero(t, turn.Damage)
			}
		}
	}
}

// Plain-form test kept alongside the scenario tests: a stronger fighter
// beats a weaker one and the record reflects it.
func TestSimulate_StrongerFighterWins(t *testing.T) {
	rec := Simulate(
		snap("p", 30, 10, 10, 200, nil, nil),
		snap("n", 2, 1, 1, 40, nil, nil),
		NewSeededRNG(7),
	)
	if rec.Winner != battle.SideP {
		t.Fatalf("expected player to win, got %q", rec.Winner)
	}
	if rec.TurnCount != len(rec.Turns) {
		t.Fatalf("turn count mismatch: %d vs %d", rec.TurnCount, len(rec.Turns))
	}
}
