// Package catalog holds the static weapon and skill catalogs. The engine
// performs find-by-id lookups against these tables; unknown ids return nil
// and degrade to no-op actions in the resolver. Damage ranges may be tuned
// at startup via the server config (ApplyDamageOverride).
package catalog

// WeaponClass groups weapons for class-wide passive multipliers.
type WeaponClass string

const (
	ClassLarge  WeaponClass = "LARGE"
	ClassMedium WeaponClass = "MEDIUM"
	ClassSmall  WeaponClass = "SMALL"
	ClassThrow  WeaponClass = "THROW"
)

// Weapon is one static catalog entry. The id doubles as the action-module
// tag: the engine's per-id effect table is keyed by it.
type Weapon struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Class     WeaponClass `json:"class"`
	MinDamage int         `json:"min_damage"`
	MaxDamage int         `json:"max_damage"`
}

// SkillCategory controls when a skill applies.
type SkillCategory string

const (
	// CategoryBaseStat skills fold flat bonuses into working stats once at
	// battle start.
	CategoryBaseStat SkillCategory = "BASE_STAT"
	// CategoryPassive skills are always-on modifiers checked during the
	// hit/damage pipeline.
	CategoryPassive SkillCategory = "PASSIVE"
	// CategoryActive skills are selectable actions, reusable every turn.
	CategoryActive SkillCategory = "ACTIVE"
	// CategorySpecial skills are selectable actions consumed after one use
	// (hit or miss).
	CategorySpecial SkillCategory = "SPECIAL"
)

// Skill is one static catalog entry. MinLevel gates which skills the
// loadout assemblers (profile creation, opponent generator) may hand out;
// the engine itself does not enforce it.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	MinLevel int           `json:"min_level"`
}

var weapons = []Weapon{
	{ID: "w1", Name: "wooden stick", Class: ClassLarge, MinDamage: 8, MaxDamage: 14},
	{ID: "w2", Name: "iron rod", Class: ClassLarge, MinDamage: 10, MaxDamage: 18},
	{ID: "w3", Name: "great hammer", Class: ClassLarge, MinDamage: 14, MaxDamage: 24},
	{ID: "w4", Name: "battle axe", Class: ClassLarge, MinDamage: 16, MaxDamage: 26},
	{ID: "w5", Name: "long sword", Class: ClassMedium, MinDamage: 10, MaxDamage: 16},
	{ID: "w6", Name: "machete", Class: ClassMedium, MinDamage: 9, MaxDamage: 15},
	{ID: "w7", Name: "nunchaku", Class: ClassMedium, MinDamage: 8, MaxDamage: 14},
	{ID: "w8", Name: "spiked club", Class: ClassMedium, MinDamage: 11, MaxDamage: 17},
	{ID: "w9", Name: "dagger", Class: ClassSmall, MinDamage: 6, MaxDamage: 10},
	{ID: "w10", Name: "fruit knife", Class: ClassSmall, MinDamage: 5, MaxDamage: 9},
	{ID: "w11", Name: "broken bottle", Class: ClassSmall, MinDamage: 4, MaxDamage: 8},
	{ID: "w12", Name: "brick", Class: ClassSmall, MinDamage: 6, MaxDamage: 12},
	{ID: "w13", Name: "throwing knife", Class: ClassThrow, MinDamage: 7, MaxDamage: 12},
	{ID: "w14", Name: "stone", Class: ClassThrow, MinDamage: 4, MaxDamage: 9},
	{ID: "w15", Name: "dart", Class: ClassThrow, MinDamage: 5, MaxDamage: 10},
	{ID: "w16", Name: "shuriken", Class: ClassThrow, MinDamage: 6, MaxDamage: 11},
	{ID: "w17", Name: "cactus", Class: ClassThrow, MinDamage: 5, MaxDamage: 9},
	{ID: "w18", Name: "pepper spray", Class: ClassSmall, MinDamage: 2, MaxDamage: 5},
	{ID: "w19", Name: "rope", Class: ClassThrow, MinDamage: 3, MaxDamage: 6},
	{ID: "w20", Name: "chain", Class: ClassMedium, MinDamage: 8, MaxDamage: 13},
	{ID: "w21", Name: "smoke bomb", Class: ClassThrow, MinDamage: 1, MaxDamage: 3},
	{ID: "w22", Name: "firecracker", Class: ClassThrow, MinDamage: 8, MaxDamage: 15},
	{ID: "w23", Name: "glue", Class: ClassThrow, MinDamage: 2, MaxDamage: 4},
	{ID: "w24", Name: "poison vial", Class: ClassThrow, MinDamage: 3, MaxDamage: 6},
}

var skills = []Skill{
	{ID: "s1", Name: "iron fist", Category: CategoryBaseStat, MinLevel: 1},
	{ID: "s2", Name: "light step", Category: CategoryBaseStat, MinLevel: 1},
	{ID: "s3", Name: "swift wind", Category: CategoryBaseStat, MinLevel: 1},
	{ID: "s4", Name: "vitality", Category: CategoryBaseStat, MinLevel: 2},
	{ID: "s5", Name: "balanced growth", Category: CategoryBaseStat, MinLevel: 3},
	{ID: "s6", Name: "tough skin", Category: CategoryPassive, MinLevel: 2},
	{ID: "s7", Name: "evasion", Category: CategoryPassive, MinLevel: 2},
	{ID: "s8", Name: "vampiric touch", Category: CategoryPassive, MinLevel: 5},
	{ID: "s9", Name: "scratch", Category: CategoryActive, MinLevel: 1},
	{ID: "s10", Name: "heavy blow", Category: CategoryActive, MinLevel: 2},
	{ID: "s11", Name: "sure strike", Category: CategoryActive, MinLevel: 3},
	{ID: "s12", Name: "stun palm", Category: CategoryActive, MinLevel: 4},
	{ID: "s13", Name: "afterimage", Category: CategoryActive, MinLevel: 4},
	{ID: "s14", Name: "iron wall", Category: CategorySpecial, MinLevel: 5},
	{ID: "s15", Name: "drain", Category: CategoryActive, MinLevel: 5},
	{ID: "s16", Name: "deathface", Category: CategoryPassive, MinLevel: 6},
	{ID: "s17", Name: "seize", Category: CategorySpecial, MinLevel: 6},
	{ID: "s18", Name: "three-throw barrage", Category: CategorySpecial, MinLevel: 4},
	{ID: "s19", Name: "recovery", Category: CategorySpecial, MinLevel: 3},
	{ID: "s20", Name: "heavy mastery", Category: CategoryPassive, MinLevel: 3},
}

// Selectable reports whether the skill enters the per-turn action pool.
func (s *Skill) Selectable() bool {
	return s.Category == CategoryActive || s.Category == CategorySpecial
}

// SingleUse reports whether the skill is consumed after one use.
func (s *Skill) SingleUse() bool { return s.Category == CategorySpecial }

// FindWeapon returns the catalog entry for id, or nil when unknown.
func FindWeapon(id string) *Weapon {
	for i := range weapons {
		if weapons[i].ID == id {
			return &weapons[i]
		}
	}
	return nil
}

// FindSkill returns the catalog entry for id, or nil when unknown.
func FindSkill(id string) *Skill {
	for i := range skills {
		if skills[i].ID == id {
			return &skills[i]
		}
	}
	return nil
}

// Weapons returns a copy of the weapon catalog.
func Weapons() []Weapon {
	return append([]Weapon(nil), weapons...)
}

// Skills returns a copy of the skill catalog.
func Skills() []Skill {
	return append([]Skill(nil), skills...)
}

// ApplyDamageOverride tunes a weapon's damage range from configuration.
// Returns false when the id is unknown; range validation is the config
// loader's job.
func ApplyDamageOverride(id string, min, max int) bool {
	for i := range weapons {
		if weapons[i].ID == id {
			weapons[i].MinDamage = min
			weapons[i].MaxDamage = max
			return true
		}
	}
	return false
}
