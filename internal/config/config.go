package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	Rewards *struct {
		GoldBase   int `json:"gold_base"`
		GoldPerLvl int `json:"gold_per_level"`
		ExpBase    int `json:"exp_base"`
		ExpPerLvl  int `json:"exp_per_level"`
		LoserGold  int `json:"loser_gold"`
		LoserExp   int `json:"loser_exp"`
	} `json:"rewards"`
	// Optional per-weapon damage tuning. IDs must exist in the built-in
	// catalog; ranges must be non-negative and ordered.
	WeaponOverrides []struct {
		ID        string `json:"id"`
		MinDamage int    `json:"min_damage"`
		MaxDamage int    `json:"max_damage"`
	} `json:"weapon_overrides"`
}

// RewardTuning controls post-battle gold/exp computation.
type RewardTuning struct {
	GoldBase   int
	GoldPerLvl int
	ExpBase    int
	ExpPerLvl  int
	LoserGold  int
	LoserExp   int
}

// LoadedConfig contains the validated server configuration. Weapon
// overrides have already been applied to the catalog when LoadConfig
// returns.
type LoadedConfig struct {
	ServerAddress string
	DatabasePath  string
	Rewards       RewardTuning
}

// DefaultRewards is used when the config file omits the rewards block.
var DefaultRewards = RewardTuning{
	GoldBase:   10,
	GoldPerLvl: 5,
	ExpBase:    20,
	ExpPerLvl:  10,
	LoserGold:  2,
	LoserExp:   5,
}

// LoadConfig reads the configuration file at path, validates it and
// applies any weapon damage overrides to the catalog.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(rc.WeaponOverrides))
	for _, o := range rc.WeaponOverrides {
		if o.ID == "" {
			return nil, fmt.Errorf("config file %s: weapon override missing 'id'", path)
		}
		if _, dup := seen[o.ID]; dup {
			return nil, fmt.Errorf("config file %s: duplicate weapon override '%s'", path, o.ID)
		}
		seen[o.ID] = struct{}{}
		if o.MinDamage < 0 || o.MaxDamage < o.MinDamage {
			return nil, fmt.Errorf("config file %s: weapon override '%s' has invalid range [%d,%d]", path, o.ID, o.MinDamage, o.MaxDamage)
		}
		if !catalog.ApplyDamageOverride(o.ID, o.MinDamage, o.MaxDamage) {
			return nil, fmt.Errorf("config file %s: weapon override '%s' does not match a catalog id", path, o.ID)
		}
	}

	out := &LoadedConfig{
		ServerAddress: ":8080",
		DatabasePath:  "data/qfight.db",
		Rewards:       DefaultRewards,
	}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		out.DatabasePath = rc.Database.Path
	}
	if rc.Rewards != nil {
		out.Rewards = RewardTuning{
			GoldBase:   rc.Rewards.GoldBase,
			GoldPerLvl: rc.Rewards.GoldPerLvl,
			ExpBase:    rc.Rewards.ExpBase,
			ExpPerLvl:  rc.Rewards.ExpPerLvl,
			LoserGold:  rc.Rewards.LoserGold,
			LoserExp:   rc.Rewards.LoserExp,
		}
	}
	return out, nil
}
