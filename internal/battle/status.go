package battle

// Dot is a damage-over-time entry tracked on a fighter: a stable source id
// (e.g. "cactus"), damage applied per tick and the number of ticks left.
type Dot struct {
	Source    string `json:"source"`
	PerTick   int    `json:"per_tick"`
	Remaining int    `json:"remaining"`
}

// Status is the transient per-battle condition block of a fighter. Timers
// are non-negative turn counters decremented once per own turn; a fighter
// with sticky or stunned above zero after the decrement loses its action.
type Status struct {
	Disarmed   int
	Sticky     int
	Stunned    int
	Afterimage int
	Invincible int

	Dots []Dot

	// UsedSkills tracks single-use skills consumed this battle.
	UsedSkills map[string]bool
	// Triggered tracks one-shot passive markers (e.g. the deathface
	// clamp), kept separate from skill usage on purpose.
	Triggered map[string]bool
}

// NewStatus returns a zeroed status block.
func NewStatus() Status {
	return Status{
		UsedSkills: make(map[string]bool),
		Triggered:  make(map[string]bool),
	}
}

// TickDots sums the per-tick damage of all active dot entries. It does not
// age the entries; aging happens in DecrementTimers so a freshly applied
// dot still ticks its full duration.
func (s *Status) TickDots() int {
	total := 0
	for _, d := range s.Dots {
		total += d.PerTick
	}
	return total
}

// DecrementTimers ages every status timer by one turn, flooring at zero,
// and prunes dot entries whose remaining duration reaches zero.
func (s *Status) DecrementTimers() {
	dec := func(v int) int {
		if v > 0 {
			return v - 1
		}
		return 0
	}
	s.Disarmed = dec(s.Disarmed)
	s.Sticky = dec(s.Sticky)
	s.Stunned = dec(s.Stunned)
	s.Afterimage = dec(s.Afterimage)
	s.Invincible = dec(s.Invincible)

	kept := s.Dots[:0]
	for _, d := range s.Dots {
		d.Remaining--
		if d.Remaining > 0 {
			kept = append(kept, d)
		}
	}
	s.Dots = kept
}

// ActionBlocked reports whether the fighter loses its action this turn.
func (s *Status) ActionBlocked() bool {
	return s.Sticky > 0 || s.Stunned > 0
}

// AddDot appends a dot entry. Entries are never deduplicated: applying the
// same source twice yields two coexisting entries that tick independently.
func (s *Status) AddDot(d Dot) {
	if d.PerTick <= 0 || d.Remaining <= 0 {
		return
	}
	s.Dots = append(s.Dots, d)
}

// Apply merges a resolver payload into fighter state: defender-directed
// timers refresh only upward (a shorter re-application never shortens an
// existing timer) and dots are appended.
func (f *Fighter) Apply(c StatusChange) {
	if c.Disarmed > f.Status.Disarmed {
		f.Status.Disarmed = c.Disarmed
	}
	if c.Sticky > f.Status.Sticky {
		f.Status.Sticky = c.Sticky
	}
	if c.Stunned > f.Status.Stunned {
		f.Status.Stunned = c.Stunned
	}
	for _, d := range c.Dots {
		f.Status.AddDot(d)
	}
	if c.SeizeWeapons {
		f.Weapons = f.Weapons[:0]
	}
}

// ApplySelf merges the self-directed part of a resolver payload into the
// attacker's own state.
func (f *Fighter) ApplySelf(c StatusChange) {
	if c.SelfAfterimage > f.Status.Afterimage {
		f.Status.Afterimage = c.SelfAfterimage
	}
	if c.SelfInvincible > f.Status.Invincible {
		f.Status.Invincible = c.SelfInvincible
	}
}
