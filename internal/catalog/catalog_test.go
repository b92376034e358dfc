package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShape(t *testing.T) {
	ws := Weapons()
	sks := Skills()
	assert.Len(t, ws, 24)
	assert.Len(t, sks, 20)

	seen := map[string]bool{}
	for _, w := range ws {
		assert.False(t, seen[w.ID], "duplicate weapon id %s", w.ID)
		seen[w.ID] = true
		assert.LessOrEqual(t, w.MinDamage, w.MaxDamage, "%s range inverted", w.ID)
		assert.Contains(t, []WeaponClass{ClassLarge, ClassMedium, ClassSmall, ClassThrow}, w.Class)
	}
	for _, s := range sks {
		assert.False(t, seen[s.ID], "duplicate skill id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestFindUnknownReturnsNil(t *testing.T) {
	assert.Nil(t, FindWeapon("w99"))
	assert.Nil(t, FindSkill("s99"))
	assert.Nil(t, FindWeapon(""))
}

func TestSkillSelectability(t *testing.T) {
	require.NotNil(t, FindSkill("s9"))
	assert.True(t, FindSkill("s9").Selectable())
	assert.False(t, FindSkill("s9").SingleUse())

	assert.True(t, FindSkill("s17").Selectable())
	assert.True(t, FindSkill("s17").SingleUse())

	assert.False(t, FindSkill("s5").Selectable(), "base-stat skills never enter the pool")
	assert.False(t, FindSkill("s16").Selectable(), "passives never enter the pool")
}

func TestApplyDamageOverride(t *testing.T) {
	orig := FindWeapon("w14")
	require.NotNil(t, orig)
	min, max := orig.MinDamage, orig.MaxDamage
	defer ApplyDamageOverride("w14", min, max)

	require.True(t, ApplyDamageOverride("w14", 1, 2))
	assert.Equal(t, 1, FindWeapon("w14").MinDamage)
	assert.Equal(t, 2, FindWeapon("w14").MaxDamage)

	assert.False(t, ApplyDamageOverride("w99", 1, 2))
}
