package battle

// Side identifies one of the two parties of a battle: the player (`P`) or
// the NPC/opponent (`N`).
type Side string

const (
	SideP Side = "P"
	SideN Side = "N"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideP {
		return SideN
	}
	return SideP
}

// ActionType describes the kind of action a fighter resolved on its turn.
// ActionNone is used for turns where the fighter could not act (stuck,
// stunned or defeated by lingering damage before acting).
type ActionType string

const (
	ActionNone   ActionType = ""
	ActionSkill  ActionType = "SKILL"
	ActionWeapon ActionType = "WEAPON"
	ActionPunch  ActionType = "PUNCH"
)

// Snapshot is the immutable stat/inventory capture of a fighter at battle
// start. It is assembled by the profile layer (or the opponent generator)
// and never mutated by the engine; working state is copied into a Fighter.
type Snapshot struct {
	Name     string            `json:"name"`
	Level    int               `json:"level"`
	HP       int               `json:"hp"`
	MaxHP    int               `json:"max_hp"`
	Str      int               `json:"str"`
	Agi      int               `json:"agi"`
	Spd      int               `json:"spd"`
	Weapons  []string          `json:"weapons"`
	Skills   []string          `json:"skills"`
	Dressing map[string]string `json:"dressing,omitempty"`
}

// Normalized returns a copy of the snapshot with missing or malformed
// numeric fields defaulted to safe values. A zero or negative max hp
// becomes 1 and an out-of-range current hp is reset to max hp, so a
// half-filled snapshot can never corrupt the termination guarantee.
func (s Snapshot) Normalized() Snapshot {
	out := s
	if out.Level < 1 {
		out.Level = 1
	}
	if out.Str < 0 {
		out.Str = 0
	}
	if out.Agi < 0 {
		out.Agi = 0
	}
	if out.Spd < 0 {
		out.Spd = 0
	}
	if out.MaxHP <= 0 {
		out.MaxHP = 1
	}
	if out.HP <= 0 || out.HP > out.MaxHP {
		out.HP = out.MaxHP
	}
	out.Weapons = make([]string, len(s.Weapons))
	copy(out.Weapons, s.Weapons)
	out.Skills = make([]string, len(s.Skills))
	copy(out.Skills, s.Skills)
	return out
}

// Fighter is the mutable, battle-scoped working state derived from a
// Snapshot. The weapon list IS mutated during a battle (consumption and
// seizure); the originating snapshot is left untouched.
type Fighter struct {
	Name    string
	Level   int
	HP      int
	MaxHP   int
	Str     int
	Agi     int
	Spd     int
	Weapons []string
	Skills  []string
	Status  Status
}

// NewFighter builds battle-local working state from a snapshot.
func NewFighter(s Snapshot) *Fighter {
	n := s.Normalized()
	return &Fighter{
		Name:    n.Name,
		Level:   n.Level,
		HP:      n.HP,
		MaxHP:   n.MaxHP,
		Str:     n.Str,
		Agi:     n.Agi,
		Spd:     n.Spd,
		Weapons: n.Weapons,
		Skills:  n.Skills,
		Status:  NewStatus(),
	}
}

// HasSkill reports whether the fighter owns the given skill id.
func (f *Fighter) HasSkill(id string) bool {
	for _, s := range f.Skills {
		if s == id {
			return true
		}
	}
	return false
}

// RemoveWeapon removes the first occurrence of the weapon id from the
// fighter's battle-local list and reports whether it was present.
func (f *Fighter) RemoveWeapon(id string) bool {
	for i, w := range f.Weapons {
		if w == id {
			f.Weapons = append(f.Weapons[:i], f.Weapons[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyDamage subtracts damage from hp, flooring at zero.
func (f *Fighter) ApplyDamage(dmg int) {
	if dmg <= 0 {
		return
	}
	f.HP -= dmg
	if f.HP < 0 {
		f.HP = 0
	}
}

// Heal adds hp, clamped to the fighter's max.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := f.HP
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
	return f.HP - before
}

// StatusChange is the side-effect payload computed by the action resolver.
// It is applied by the turn loop after the hit roll: defender-directed
// timers and dots only land on a hit, self-directed buffs go to the
// attacker instead.
type StatusChange struct {
	Disarmed int   `json:"disarmed,omitempty"`
	Sticky   int   `json:"sticky,omitempty"`
	Stunned  int   `json:"stunned,omitempty"`
	Dots     []Dot `json:"dots,omitempty"`

	SelfAfterimage int `json:"self_afterimage,omitempty"`
	SelfInvincible int `json:"self_invincible,omitempty"`

	// SeizeWeapons empties the defender's entire weapon list on a hit.
	// Seized weapons are voided, not transferred to the attacker.
	SeizeWeapons bool `json:"seize_weapons,omitempty"`
}

// Empty reports whether the payload carries no effect at all.
func (c StatusChange) Empty() bool {
	return c.Disarmed == 0 && c.Sticky == 0 && c.Stunned == 0 &&
		len(c.Dots) == 0 && c.SelfAfterimage == 0 && c.SelfInvincible == 0 &&
		!c.SeizeWeapons
}

// SelfOnly reduces the payload to its self-directed buffs, the part that
// survives a missed attack.
func (c StatusChange) SelfOnly() StatusChange {
	return StatusChange{
		SelfAfterimage: c.SelfAfterimage,
		SelfInvincible: c.SelfInvincible,
	}
}

// Turn records one resolved action of the battle. Change carries the
// status payload that was actually applied: the full payload on a hit,
// only the self-directed part on a miss. Replay consumers drive their
// state machines from it instead of parsing the log lines.
type Turn struct {
	Side     Side         `json:"side"`
	Action   ActionType   `json:"action"`
	ActionID string       `json:"action_id,omitempty"`
	Hit      bool         `json:"hit"`
	Crit     bool         `json:"crit,omitempty"`
	Damage   int          `json:"damage"`
	Heal     int          `json:"heal,omitempty"`
	Change   StatusChange `json:"status_change"`
	Log      []string     `json:"log"`
}
