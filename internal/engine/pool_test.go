package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
)

func TestBuildActionPool_Composition(t *testing.T) {
	f := fighter(10, 5, []string{"w1", "w5"}, []string{"s1", "s9", "s17"})

	pool := buildActionPool(f)

	// s1 is BASE_STAT and never selectable; s9/s17 each weigh 30, the two
	// weapons 50 and the punch 20.
	require.Len(t, pool, 5)
	total := 0.0
	for _, e := range pool {
		total += e.weight
	}
	assert.InDelta(t, 30+30+50+50+20, total, 1e-9)
	assert.Equal(t, battle.ActionPunch, pool[len(pool)-1].kind, "punch is always last")
}

func TestBuildActionPool_DisarmedExcludesWeapons(t *testing.T) {
	f := fighter(10, 5, []string{"w1", "w5"}, nil)
	f.Status.Disarmed = 2

	pool := buildActionPool(f)

	require.Len(t, pool, 1)
	assert.Equal(t, battle.ActionPunch, pool[0].kind)
}

func TestBuildActionPool_UsedSpecialExcluded(t *testing.T) {
	f := fighter(10, 5, nil, []string{"s17", "s9"})
	f.Status.UsedSkills["s17"] = true

	pool := buildActionPool(f)

	require.Len(t, pool, 2)
	assert.Equal(t, "s9", pool[0].id)
}

func TestPickAction_CumulativeSampling(t *testing.T) {
	f := fighter(10, 5, []string{"w1"}, []string{"s9"})
	pool := buildActionPool(f) // s9(30), w1(50), punch(20)

	assert.Equal(t, "s9", pickAction(pool, NewScript(0)).id)
	// 0.5*100=50 falls into the weapon band (30..80).
	assert.Equal(t, "w1", pickAction(pool, NewScript(0.5)).id)
	// 0.9*100=90 falls into the punch band.
	assert.Equal(t, battle.ActionPunch, pickAction(pool, NewScript(0.9)).kind)
}

func TestApplyBaseStatBonuses(t *testing.T) {
	f := fighter(10, 10, nil, []string{"s1", "s4", "s5"})
	ApplyBaseStatBonuses(f)

	assert.Equal(t, 17, f.Str, "+5 from s1, +2 from s5")
	assert.Equal(t, 12, f.Agi)
	assert.Equal(t, 7, f.Spd)
	assert.Equal(t, 120, f.MaxHP, "+20 from s4")
	assert.Equal(t, 120, f.HP)
}
