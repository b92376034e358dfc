package battle

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Record is the immutable result of a simulated battle: the two pre-battle
// snapshots, the ordered turn sequence and the winning side. The engine
// fills the battle fields; the service layer annotates rewards and the
// public uuid before persisting.
type Record struct {
	gorm.Model
	BattleUUID string `json:"battle_uuid" gorm:"uniqueIndex"`
	PlayerUUID string `json:"player_uuid" gorm:"index"`
	Winner     Side   `json:"winner"`
	TurnCount  int    `json:"turn_count"`

	// Post-battle reward annotation, written by the service layer (the
	// engine itself never touches these).
	RewardGold int `json:"reward_gold"`
	RewardExp  int `json:"reward_exp"`

	// In-memory views of the blob columns below. Mark them with `gorm:"-"`
	// so GORM ignores them for schema purposes while keeping them available
	// in JSON responses.
	Player   Snapshot `json:"player" gorm:"-"`
	Opponent Snapshot `json:"opponent" gorm:"-"`
	Turns    []Turn   `json:"turns" gorm:"-"`

	PlayerJSON   []byte `json:"-" gorm:"column:player_json;type:blob"`
	OpponentJSON []byte `json:"-" gorm:"column:opponent_json;type:blob"`
	TurnsJSON    []byte `json:"-" gorm:"column:turns_json;type:blob"`
}

func (Record) TableName() string { return "battle_records" }

// BeforeSave serializes the snapshot and turn payloads into their blob
// columns so the record round-trips through the database intact.
func (r *Record) BeforeSave(tx *gorm.DB) error {
	b, err := json.Marshal(r.Player)
	if err != nil {
		return err
	}
	r.PlayerJSON = b
	if b, err = json.Marshal(r.Opponent); err != nil {
		return err
	}
	r.OpponentJSON = b
	if b, err = json.Marshal(r.Turns); err != nil {
		return err
	}
	r.TurnsJSON = b
	return nil
}

// AfterFind restores the in-memory views from the blob columns.
func (r *Record) AfterFind(tx *gorm.DB) error {
	if len(r.PlayerJSON) > 0 {
		if err := json.Unmarshal(r.PlayerJSON, &r.Player); err != nil {
			return err
		}
	}
	if len(r.OpponentJSON) > 0 {
		if err := json.Unmarshal(r.OpponentJSON, &r.Opponent); err != nil {
			return err
		}
	}
	if len(r.TurnsJSON) > 0 {
		if err := json.Unmarshal(r.TurnsJSON, &r.Turns); err != nil {
			return err
		}
	}
	return nil
}
