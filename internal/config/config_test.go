package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qfight_config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "data/qfight.db", cfg.DatabasePath)
	assert.Equal(t, DefaultRewards, cfg.Rewards)
}

func TestLoadConfig_WeaponOverride(t *testing.T) {
	orig := catalog.FindWeapon("w10")
	require.NotNil(t, orig)
	min, max := orig.MinDamage, orig.MaxDamage
	defer catalog.ApplyDamageOverride("w10", min, max)

	cfg, err := LoadConfig(writeConfig(t, `{
		"server": {"address": ":9999"},
		"weapon_overrides": [{"id": "w10", "min_damage": 1, "max_damage": 2}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, 1, catalog.FindWeapon("w10").MinDamage)
	assert.Equal(t, 2, catalog.FindWeapon("w10").MaxDamage)
}

func TestLoadConfig_RejectsBadOverrides(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"weapon_overrides": [{"id": "w99", "min_damage": 1, "max_damage": 2}]}`))
	assert.Error(t, err, "unknown catalog id")

	_, err = LoadConfig(writeConfig(t, `{"weapon_overrides": [{"id": "w10", "min_damage": 5, "max_damage": 2}]}`))
	assert.Error(t, err, "inverted range")

	_, err = LoadConfig(writeConfig(t, `{"weapon_overrides": [
		{"id": "w10", "min_damage": 1, "max_damage": 2},
		{"id": "w10", "min_damage": 1, "max_damage": 2}
	]}`))
	assert.Error(t, err, "duplicate override")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
