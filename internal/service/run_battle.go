package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/config"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/engine"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")
)

// BattleRepo is the narrow persistence surface RunBattle needs.
type BattleRepo interface {
	GetProfileByUUID(uuid string) (*battle.Profile, error)
	UpdateProfile(p *battle.Profile) error
	CreateRecord(r *battle.Record) error
}

// RunBattle simulates one battle for the given player against a generated
// opponent, annotates the record with rewards, folds the outcome into the
// profile and persists both. The rng is injected so callers (and tests)
// control determinism; production passes engine.NewSystemRNG().
func RunBattle(repo BattleRepo, playerUUID string, rewards config.RewardTuning, rng engine.RNG) (*battle.Record, error) {
	profile, err := repo.GetProfileByUUID(playerUUID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	opponent := GenerateOpponent(profile.Level, rng)
	rec := engine.Simulate(profile.Snapshot(), opponent, rng)
	rec.BattleUUID = uuid.NewString()
	rec.PlayerUUID = playerUUID

	gold, exp := ComputeRewards(rec.Winner, opponent.Level, rewards)
	rec.RewardGold = gold
	rec.RewardExp = exp

	applyOutcome(profile, rec)

	if err := repo.CreateRecord(rec); err != nil {
		return nil, err
	}
	if err := repo.UpdateProfile(profile); err != nil {
		return nil, err
	}
	return rec, nil
}

// applyOutcome folds a finished battle into the persistent profile. Weapon
// consumption inside the battle is intentionally NOT carried over: the
// engine only ever mutated its battle-local copy.
func applyOutcome(p *battle.Profile, rec *battle.Record) {
	p.BattlesPlayed++
	if rec.Winner == battle.SideP {
		p.Wins++
	} else {
		p.Losses++
	}
	p.Gold += rec.RewardGold
	p.Exp += rec.RewardExp
	for p.Exp >= p.Level*100 {
		p.Exp -= p.Level * 100
		p.Level++
		// modest stat growth per level
		p.MaxHP += 10
		p.Str += 2
		p.Agi++
		p.Spd++
	}
}
