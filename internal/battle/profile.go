package battle

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Profile stores a player's persistent character and aggregate stats.
// Weapons are reset from this record at the start of every battle: the
// engine only ever mutates its battle-local copy, so weapon consumption
// never persists back here.
type Profile struct {
	gorm.Model
	PlayerUUID string `json:"player_uuid" gorm:"uniqueIndex"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Exp        int    `json:"exp"`
	Gold       int    `json:"gold"`

	MaxHP int `json:"max_hp"`
	Str   int `json:"str"`
	Agi   int `json:"agi"`
	Spd   int `json:"spd"`

	Weapons  []string          `json:"weapons" gorm:"-"`
	Skills   []string          `json:"skills" gorm:"-"`
	Dressing map[string]string `json:"dressing" gorm:"-"`

	WeaponsJSON  []byte `json:"-" gorm:"column:weapons_json;type:blob"`
	SkillsJSON   []byte `json:"-" gorm:"column:skills_json;type:blob"`
	DressingJSON []byte `json:"-" gorm:"column:dressing_json;type:blob"`

	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	BattlesPlayed int `json:"battles_played"`
}

func (Profile) TableName() string { return "player_profiles" }

// BeforeSave serializes the inventory lists into their blob columns.
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	b, err := json.Marshal(p.Weapons)
	if err != nil {
		return err
	}
	p.WeaponsJSON = b
	if b, err = json.Marshal(p.Skills); err != nil {
		return err
	}
	p.SkillsJSON = b
	if b, err = json.Marshal(p.Dressing); err != nil {
		return err
	}
	p.DressingJSON = b
	return nil
}

// AfterFind restores the in-memory inventory lists.
func (p *Profile) AfterFind(tx *gorm.DB) error {
	if len(p.WeaponsJSON) > 0 {
		if err := json.Unmarshal(p.WeaponsJSON, &p.Weapons); err != nil {
			return err
		}
	}
	if len(p.SkillsJSON) > 0 {
		if err := json.Unmarshal(p.SkillsJSON, &p.Skills); err != nil {
			return err
		}
	}
	if len(p.DressingJSON) > 0 {
		if err := json.Unmarshal(p.DressingJSON, &p.Dressing); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot derives the immutable battle input for this profile.
func (p *Profile) Snapshot() Snapshot {
	return Snapshot{
		Name:     p.Name,
		Level:    p.Level,
		HP:       p.MaxHP,
		MaxHP:    p.MaxHP,
		Str:      p.Str,
		Agi:      p.Agi,
		Spd:      p.Spd,
		Weapons:  append([]string(nil), p.Weapons...),
		Skills:   append([]string(nil), p.Skills...),
		Dressing: p.Dressing,
	}.Normalized()
}
