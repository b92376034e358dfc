package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/letmeNo1/jabobo-fight-sub000/internal/battle"
	"github.com/letmeNo1/jabobo-fight-sub000/internal/catalog"
)

var ErrInvalidProfileName = errors.New("profile name must be 1-24 characters")

// ProfileRepo is the narrow persistence surface profile creation needs.
type ProfileRepo interface {
	GetProfileByUUID(uuid string) (*battle.Profile, error)
	CreateProfile(p *battle.Profile) error
}

// CreateProfile registers a fresh level-1 character with the starter
// loadout and returns it. Requested skills outside the level gate or the
// catalog are dropped, not rejected.
func CreateProfile(repo ProfileRepo, name string, skills []string) (*battle.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > 24 {
		return nil, ErrInvalidProfileName
	}

	kept := make([]string, 0, len(skills))
	for _, id := range skills {
		sk := catalog.FindSkill(id)
		if sk == nil || sk.MinLevel > 1 {
			continue
		}
		kept = append(kept, id)
	}

	p := &battle.Profile{
		PlayerUUID: uuid.NewString(),
		Name:       name,
		Level:      1,
		Gold:       20,
		MaxHP:      100,
		Str:        10,
		Agi:        8,
		Spd:        8,
		Weapons:    []string{"w10", "w14"},
		Skills:     kept,
		Dressing:   map[string]string{"head": "default", "body": "default", "weapon": "default"},
	}
	if err := repo.CreateProfile(p); err != nil {
		return nil, err
	}
	return p, nil
}
